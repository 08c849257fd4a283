// Package export encodes rendered QR surfaces for delivery: raw PNG bytes
// for file downloads and base64 data URIs for direct HTML embedding.
//
// The renderer itself stops at a painted image.RGBA; this package is the
// downstream step that turns it into transferable bytes.
//
// Generate raw PNG bytes:
//
//	result, err := qrcraft.Render(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pngBytes, err := export.PNG(result.Image)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("qrcode.png", pngBytes, 0644)
//
// Or embed directly in a template:
//
//	uri, err := export.DataURI(result.Image)
//	// <img src="{{ uri }}" alt="{{ result.Description }}">
package export
