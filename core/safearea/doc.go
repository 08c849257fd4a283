// Package safearea computes how much of a QR matrix may be hidden behind an
// embedded logo without exceeding the code's error-correction capacity.
//
// Each error-correction level tolerates a different share of occluded
// modules. Given a requested logo size and padding, Compute converts both to
// module units and, when the combined cutout would exceed the safe limit,
// scales both down by the same factor so the cutout exactly meets it. The
// request is never rejected; an over-sized logo is silently clamped so the
// rendered code always stays scannable.
//
// # Usage
//
//	res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
//		LogoRatio: 0.35,
//		Padding:   4,
//		Shape:     safearea.ShapeCircle,
//	})
//
//	for row := 0; row < 29; row++ {
//		for col := 0; col < 29; col++ {
//			if res.Occludes(row, col, 29) {
//				continue // module suppressed to make room for the logo
//			}
//		}
//	}
package safearea
