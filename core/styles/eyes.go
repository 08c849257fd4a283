package styles

// pupilShape selects the solid center of a finder pattern. The pupil is not
// necessarily the same primitive as the style's data module: decorative
// pupils stay within the 3x3-module center so detection is unaffected.
type pupilShape int

const (
	pupilSquare pupilShape = iota
	pupilCircle
	pupilHexagon
	pupilDiamond
	pupilStar
	pupilHeart
)

// eyeGeometry parameterizes the shared frame/hole/pupil construction.
type eyeGeometry struct {
	rounded bool
	pupil   pupilShape
}

// drawEyeFrame paints one finder pattern in three layers: a 7-module frame in
// the eye color, a 5-module hole cut back to the background, and a 3-module
// pupil. Layer order matters; the hole must erase whatever the frame drew.
func drawEyeFrame(dc *Context, eye Eye, geo eyeGeometry) {
	r := eye.Rect
	m := r.W / 7

	dc.GC.Push()
	defer dc.GC.Pop()

	// frame
	dc.GC.SetColor(dc.Eye)
	if geo.rounded {
		dc.GC.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 1.2*m)
	} else {
		dc.GC.DrawRectangle(r.X, r.Y, r.W, r.H)
	}
	dc.GC.Fill()

	// hole
	dc.GC.SetColor(dc.Background)
	if geo.rounded {
		dc.GC.DrawRoundedRectangle(r.X+m, r.Y+m, 5*m, 5*m, 0.9*m)
	} else {
		dc.GC.DrawRectangle(r.X+m, r.Y+m, 5*m, 5*m)
	}
	dc.GC.Fill()

	// pupil
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	dc.GC.SetColor(dc.Eye)
	switch geo.pupil {
	case pupilCircle:
		dc.GC.DrawCircle(cx, cy, 1.5*m)
	case pupilHexagon:
		tracePolygon(dc.GC, 6, cx, cy, 1.65*m, 0)
	case pupilDiamond:
		tracePolygon(dc.GC, 4, cx, cy, 1.9*m, 0)
	case pupilStar:
		traceStar(dc.GC, 8, cx, cy, 1.9*m, 0.9*m)
	case pupilHeart:
		traceHeart(dc.GC, cx, cy, 3.2*m)
	default:
		if geo.rounded {
			dc.GC.DrawRoundedRectangle(cx-1.5*m, cy-1.5*m, 3*m, 3*m, 0.5*m)
		} else {
			dc.GC.DrawRectangle(cx-1.5*m, cy-1.5*m, 3*m, 3*m)
		}
	}
	dc.GC.Fill()
}
