// Package imageres resolves logo references into decoded rasters without
// blocking the render path.
//
// A reference can be an http(s) URL, a data: URI, a file: URL, or a plain
// filesystem path. Resolve returns a Future immediately; the fetch, decode,
// and size normalization happen on a background goroutine:
//
//	resolver := imageres.NewResolver(
//		imageres.WithTimeout(5*time.Second),
//		imageres.WithMaxBytes(4<<20),
//	)
//	future := resolver.Resolve(ctx, "https://example.com/logo.png")
//	// ... keep rendering without the logo ...
//	res, err := future.Await()
//	if err == nil && !res.Absent() {
//		cfg.Logo = res.Image
//	}
//
// A failed fetch or decode is not an error: the Future resolves to an Absent
// Resolution carrying the cause, and the caller renders without a logo. Only
// context cancellation surfaces as a Future error. The empty reference
// resolves synchronously to Absent, so callers never special-case "no logo
// configured".
//
// Supported raster formats: PNG, JPEG, GIF, BMP, TIFF, and WebP.
package imageres
