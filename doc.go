// Package qrcraft is a styled QR code rendering engine. It turns a payload
// string and a style configuration into a fully painted raster image:
// ten module styles, customizable eye patterns, center and border logos,
// captioned decorative frames, and safe-area clamping that keeps logo
// cutouts within what the error-correction level can absorb.
//
// The root package re-exports the common entry points; the full API lives in
// the core and pkg trees.
//
// # Package Organization
//
//   - Core: the rendering engine itself
//   - Utilities: standalone packages usable outside the renderer
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/qrcraft/core/renderer
//	go doc -all github.com/dmitrymomot/qrcraft/core/styles
//
// # Core Packages
//
//	github.com/dmitrymomot/qrcraft/core/matrix    - QR module matrix, encoder boundary, region classification
//	github.com/dmitrymomot/qrcraft/core/safearea  - logo cutout sizing, clamping, and occlusion tests
//	github.com/dmitrymomot/qrcraft/core/styles    - the ten module/eye drawing strategies
//	github.com/dmitrymomot/qrcraft/core/border    - decorative frame, caption, and secondary logo
//	github.com/dmitrymomot/qrcraft/core/renderer  - the synchronous render pass and the debounced pipeline
//	github.com/dmitrymomot/qrcraft/core/config    - type-safe environment variable loading
//
// # Utility Packages
//
//	github.com/dmitrymomot/qrcraft/pkg/async      - generic Future utilities
//	github.com/dmitrymomot/qrcraft/pkg/contrast   - WCAG contrast ratio advisories
//	github.com/dmitrymomot/qrcraft/pkg/export     - PNG and data-URI encoding of rendered surfaces
//	github.com/dmitrymomot/qrcraft/pkg/imageres   - asynchronous logo reference resolution
//	github.com/dmitrymomot/qrcraft/pkg/payload    - payload string builders (wifi, vcard, sms, mail, payment)
//
// # Quick Start
//
//	cfg := qrcraft.DefaultConfig()
//	cfg.Payload = "https://example.com"
//	cfg.Style = styles.VariantRounded
//
//	result, err := qrcraft.Render(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	png.Encode(out, result.Image)
package qrcraft
