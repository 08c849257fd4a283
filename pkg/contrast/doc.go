// Package contrast implements WCAG 2.0 contrast calculations for sRGB colors.
//
// The package is advisory: the rendering pipeline never blocks on a low
// contrast ratio, but a caller (typically a form UI) can warn the user before
// an unscannable image is produced.
//
// # Usage
//
//	ratio := contrast.Ratio("#000000", "#ffffff") // 21
//	if contrast.IsLow("#777777", "#888888") {
//		log.Println("foreground and background are too close to scan reliably")
//	}
//
// Malformed color input (wrong length, empty string, bad hex digits) yields a
// zero ratio rather than an error, so advisory checks degrade gracefully.
package contrast
