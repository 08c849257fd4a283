package styles

import (
	"math"

	"github.com/fogleman/gg"
)

// Path helpers shared by the decorative drawers. Every helper only builds a
// path; the caller owns color and fill.

// tracePolygon builds a regular n-gon centered at (cx, cy) with circumradius
// r, rotated so that rotation=0 yields a pointy-top orientation.
func tracePolygon(gc *gg.Context, n int, cx, cy, r, rotation float64) {
	gc.NewSubPath()
	for i := 0; i < n; i++ {
		a := rotation + float64(i)/float64(n)*2*math.Pi - math.Pi/2
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.ClosePath()
}

// traceStar builds a star with the given number of spikes, alternating
// between the outer and inner radii.
func traceStar(gc *gg.Context, spikes int, cx, cy, outer, inner float64) {
	gc.NewSubPath()
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)/float64(spikes*2)*2*math.Pi - math.Pi/2
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.ClosePath()
}

// traceHeart builds a heart of edge size s centered at (cx, cy): two cubic
// lobes meeting at a top dip, tapering to a bottom point.
func traceHeart(gc *gg.Context, cx, cy, s float64) {
	half := s / 2
	top := cy - 0.30*s
	bottom := cy + half

	gc.NewSubPath()
	gc.MoveTo(cx, top)
	// left lobe
	gc.CubicTo(cx-0.55*s, cy-0.75*s, cx-half-0.10*s, cy+0.05*s, cx, bottom)
	// right lobe
	gc.CubicTo(cx+half+0.10*s, cy+0.05*s, cx+0.55*s, cy-0.75*s, cx, top)
	gc.ClosePath()
}
