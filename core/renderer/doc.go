// Package renderer turns a payload and a style configuration into a fully
// painted QR image.
//
// Render is one synchronous pass over the surface: clear, border band,
// per-cell style dispatch with logo occlusion, the three eye patterns, the
// center logo, and finally the border caption and secondary logo. A pass
// never suspends mid-draw and always overwrites the whole surface, so
// repeated renders of the same configuration are pixel-identical (for
// deterministic styles) and no failure path leaves a half-drawn image:
//
//	cfg := renderer.DefaultConfig()
//	cfg.Payload = "https://example.com"
//	result, err := renderer.Render(cfg)
//	if err != nil {
//		// result still holds a cleared surface safe to display
//	}
//	png.Encode(w, result.Image)
//
// Pipeline layers interactive behavior on top: rapid configuration changes
// coalesce through trailing-edge debouncing, logo references resolve
// asynchronously, and a resolution that finishes after a newer configuration
// arrived is discarded instead of drawn. Exactly one render pass owns the
// surface at a time.
package renderer
