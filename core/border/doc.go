// Package border composes the decorative frame drawn around a QR code.
//
// A Composer owns everything outside the matrix area: the colored band, an
// optional line pattern inside the band, an optional single-line caption, and
// an optional secondary logo. The band is painted before the matrix and the
// caption and logo after it, so the renderer calls the Composer twice per
// pass:
//
//	comp, err := border.NewComposer(border.Config{
//		WidthRatio: 0.08,
//		Color:      color.Black,
//		Line:       border.LineDashed,
//		Caption:    "scan me",
//	})
//	if err != nil {
//		return err
//	}
//	comp.DrawBand(gc, side, background)
//	// ... draw the matrix into the region inset by comp.Inset(side) ...
//	if err := comp.DrawOverlay(gc, side, background); err != nil {
//		return err
//	}
//
// The zero Config disables the frame entirely: Inset returns 0 and both draw
// calls are no-ops, so the renderer never branches on whether a border was
// requested.
package border
