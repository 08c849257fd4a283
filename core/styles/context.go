package styles

import (
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/dmitrymomot/qrcraft/core/matrix"
)

// Rect is a pixel-space rectangle handed to a drawer.
type Rect struct {
	X, Y, W, H float64
}

// Context is the immutable draw context passed into every style function.
// Drawers may mutate the canvas but must scope any state change with
// Push/Pop; the Context value itself is shared across all cells of a pass.
type Context struct {
	// GC is the rendering surface.
	GC *gg.Context
	// Foreground paints data modules.
	Foreground color.Color
	// Background is used to cut holes (eye rings, padding shapes).
	Background color.Color
	// Eye paints the three finder patterns.
	Eye color.Color
	// Module is the edge length of one module in pixels.
	Module float64
	// Rand feeds jittered variants. A nil Rand makes those variants draw
	// without jitter, which keeps renders reproducible by default.
	Rand *rand.Rand
}

// jitter returns a random offset in [-spread/2, spread/2], or 0 without a
// Rand source.
func (dc *Context) jitter(spread float64) float64 {
	if dc.Rand == nil {
		return 0
	}
	return (dc.Rand.Float64() - 0.5) * spread
}

// Cell is one drawable data module.
type Cell struct {
	Rect Rect
	// Neighbors reflect the drawable state of the four axis neighbours,
	// computed with the same classification and occlusion rules as the cell,
	// so connectors never reach toward suppressed modules.
	Neighbors matrix.Neighbors
}

// Corner identifies which of the three finder patterns an Eye describes.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
)

// Eye is one 7x7-module finder region in pixel space.
type Eye struct {
	Rect   Rect
	Corner Corner
}

// Drawer renders data modules and eye regions for one style variant.
type Drawer interface {
	// DrawModule paints a single active data module.
	DrawModule(dc *Context, cell Cell)
	// DrawEye paints one finder pattern: frame, background ring, pupil.
	DrawEye(dc *Context, eye Eye)
	// NeedsNeighbors reports whether DrawModule uses Cell.Neighbors, letting
	// the renderer skip the neighbour computation for styles that ignore it.
	NeedsNeighbors() bool
}
