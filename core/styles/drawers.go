package styles

import "math"

// squareDrawer is the flat default: full-cell rectangles. It is also the
// fallback for unknown variants, so it must stay dependency-free and total.
type squareDrawer struct{}

func (squareDrawer) NeedsNeighbors() bool { return false }

func (squareDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (squareDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{})
}

// roundedDrawer fills the cell with a rounded square. Corner radius stays
// below half the module so adjacent cells still visually connect.
type roundedDrawer struct{}

func (roundedDrawer) NeedsNeighbors() bool { return false }

func (roundedDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 0.32*r.W)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (roundedDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true})
}

// dotDrawer draws an isolated circle per module. The radius leaves a small
// gap between neighbours; scanners tolerate it because the module centers
// stay dark.
type dotDrawer struct{}

func (dotDrawer) NeedsNeighbors() bool { return false }

func (dotDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.DrawCircle(r.X+r.W/2, r.Y+r.H/2, 0.44*r.W)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (dotDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true, pupil: pupilCircle})
}

// fluidDrawer draws a full-radius circle and bridges toward every active
// neighbour with a half-cell rectangle, producing a continuous ink blob.
type fluidDrawer struct{}

func (fluidDrawer) NeedsNeighbors() bool { return true }

func (fluidDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	cx := r.X + r.W/2
	cy := r.Y + r.H/2

	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.DrawCircle(cx, cy, r.W/2)
	dc.GC.Fill()

	n := cell.Neighbors
	if n.Up {
		dc.GC.DrawRectangle(r.X, r.Y, r.W, r.H/2)
		dc.GC.Fill()
	}
	if n.Down {
		dc.GC.DrawRectangle(r.X, cy, r.W, r.H/2)
		dc.GC.Fill()
	}
	if n.Left {
		dc.GC.DrawRectangle(r.X, r.Y, r.W/2, r.H)
		dc.GC.Fill()
	}
	if n.Right {
		dc.GC.DrawRectangle(cx, r.Y, r.W/2, r.H)
		dc.GC.Fill()
	}
	dc.GC.Pop()
}

func (fluidDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true, pupil: pupilCircle})
}

// circuitDrawer draws a compact node per module and thin traces toward
// active neighbours, evoking PCB routing.
type circuitDrawer struct{}

func (circuitDrawer) NeedsNeighbors() bool { return true }

func (circuitDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	node := 0.56 * r.W
	trace := 0.20 * r.W

	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.DrawRectangle(cx-node/2, cy-node/2, node, node)
	dc.GC.Fill()

	n := cell.Neighbors
	if n.Up {
		dc.GC.DrawRectangle(cx-trace/2, r.Y, trace, r.H/2)
		dc.GC.Fill()
	}
	if n.Down {
		dc.GC.DrawRectangle(cx-trace/2, cy, trace, r.H/2)
		dc.GC.Fill()
	}
	if n.Left {
		dc.GC.DrawRectangle(r.X, cy-trace/2, r.W/2, trace)
		dc.GC.Fill()
	}
	if n.Right {
		dc.GC.DrawRectangle(cx, cy-trace/2, r.W/2, trace)
		dc.GC.Fill()
	}
	dc.GC.Pop()
}

func (circuitDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{pupil: pupilCircle})
}

// hiveDrawer tessellates regular hexagons. The circumradius slightly exceeds
// the inscribed value so columns close ranks instead of leaving slivers.
type hiveDrawer struct{}

func (hiveDrawer) NeedsNeighbors() bool { return false }

func (hiveDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	tracePolygon(dc.GC, 6, r.X+r.W/2, r.Y+r.H/2, 0.55*r.W, 0)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (hiveDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true, pupil: pupilHexagon})
}

// kineticDrawer rotates each module square by 45 degrees around its center.
type kineticDrawer struct{}

func (kineticDrawer) NeedsNeighbors() bool { return false }

func (kineticDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	side := 0.78 * r.W

	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.RotateAbout(math.Pi/4, cx, cy)
	dc.GC.DrawRectangle(cx-side/2, cy-side/2, side, side)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (kineticDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{pupil: pupilDiamond})
}

// starburstDrawer draws an eight-point star per module.
type starburstDrawer struct{}

func (starburstDrawer) NeedsNeighbors() bool { return false }

func (starburstDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	traceStar(dc.GC, 8, r.X+r.W/2, r.Y+r.H/2, 0.62*r.W, 0.30*r.W)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (starburstDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true, pupil: pupilStar})
}

// heartDrawer draws a heart per module.
type heartDrawer struct{}

func (heartDrawer) NeedsNeighbors() bool { return false }

func (heartDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	traceHeart(dc.GC, r.X+r.W/2, r.Y+r.H/2, 0.92*r.W)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (heartDrawer) DrawEye(dc *Context, eye Eye) {
	drawEyeFrame(dc, eye, eyeGeometry{rounded: true, pupil: pupilHeart})
}

// grungeDrawer offsets, scales, and tilts each square by a small random
// amount for a hand-drawn look. Without a Rand source it degrades to plain
// squares, which keeps default renders reproducible.
type grungeDrawer struct{}

func (grungeDrawer) NeedsNeighbors() bool { return false }

func (grungeDrawer) DrawModule(dc *Context, cell Cell) {
	r := cell.Rect
	cx := r.X + r.W/2 + dc.jitter(0.24*r.W)
	cy := r.Y + r.H/2 + dc.jitter(0.24*r.H)
	side := r.W * (0.86 + dc.jitter(0.24))
	tilt := dc.jitter(0.22)

	dc.GC.Push()
	dc.GC.SetColor(dc.Foreground)
	dc.GC.RotateAbout(tilt, cx, cy)
	dc.GC.DrawRectangle(cx-side/2, cy-side/2, side, side)
	dc.GC.Fill()
	dc.GC.Pop()
}

func (grungeDrawer) DrawEye(dc *Context, eye Eye) {
	// Jittered eyes confuse finder detection, so grunge keeps them plain.
	drawEyeFrame(dc, eye, eyeGeometry{pupil: pupilCircle})
}
