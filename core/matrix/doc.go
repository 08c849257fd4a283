// Package matrix wraps the QR module matrix: an immutable square grid of
// booleans plus the fixed finder-pattern geometry every scanner relies on.
//
// The matrix itself is produced by a standard encoder (skip2/go-qrcode); this
// package is the boundary to it. Encoding failure, typically a payload too
// long for the requested error-correction level, surfaces as ErrEncode so
// the renderer can produce a cleared surface instead of a partial image.
//
// # Usage
//
//	m, err := matrix.Encode("https://example.com", matrix.LevelMedium)
//	if err != nil {
//		// payload too long, nothing to draw
//	}
//
//	for row := 0; row < m.Size(); row++ {
//		for col := 0; col < m.Size(); col++ {
//			if matrix.Classify(row, col, m.Size()) == matrix.RegionEye {
//				continue // finder patterns are drawn separately
//			}
//			_ = m.At(row, col)
//		}
//	}
package matrix
