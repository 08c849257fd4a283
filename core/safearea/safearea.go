package safearea

import (
	"math"

	"github.com/dmitrymomot/qrcraft/core/matrix"
)

// Shape selects the geometry of the suppressed region around the logo.
type Shape int

const (
	// ShapeNone suppresses exactly the logo footprint with zero added margin.
	ShapeNone Shape = iota
	// ShapeCircle suppresses a disc around the matrix center.
	ShapeCircle
	// ShapeSquare suppresses an axis-aligned square around the matrix center.
	ShapeSquare
)

// MaxRatio returns the maximum fraction of the matrix side length that the
// logo cutout may span at a given error-correction level. Unknown levels get
// the most conservative limit.
func MaxRatio(level matrix.Level) float64 {
	switch level {
	case matrix.LevelLow:
		return 0.22
	case matrix.LevelMedium:
		return 0.35
	case matrix.LevelQuartile:
		return 0.45
	case matrix.LevelHigh:
		return 0.50
	default:
		return 0.22
	}
}

// Request describes the caller's desired logo cutout before clamping.
type Request struct {
	// LogoRatio is the logo edge length as a fraction of the matrix side.
	LogoRatio float64
	// Padding is the clear margin around the logo, in module units per side.
	Padding float64
	// Shape of the suppressed region.
	Shape Shape
}

// Result is the effective, clamped cutout in module units. Recomputed for
// every render; never cached across configuration changes.
type Result struct {
	LogoModules    float64
	PaddingModules float64
	Shape          Shape
	// Scale is the factor applied to the request; 1 when no clamping occurred.
	Scale float64
}

// CutoutModules is the effective diameter of the suppressed region.
func (r Result) CutoutModules() float64 {
	return r.LogoModules + 2*r.PaddingModules
}

// Compute converts the request into module units and uniformly scales logo
// and padding down when their combined cutout exceeds size*MaxRatio(level).
// Already-safe requests pass through unchanged, so Compute is idempotent.
func Compute(size int, level matrix.Level, req Request) Result {
	logo := req.LogoRatio * float64(size)
	padding := req.Padding
	if req.Shape == ShapeNone {
		padding = 0
	}
	if logo < 0 {
		logo = 0
	}
	if padding < 0 {
		padding = 0
	}

	res := Result{
		LogoModules:    logo,
		PaddingModules: padding,
		Shape:          req.Shape,
		Scale:          1,
	}

	limit := float64(size) * MaxRatio(level)
	cutout := res.CutoutModules()
	if cutout <= limit || cutout == 0 {
		return res
	}

	scale := limit / cutout
	res.LogoModules *= scale
	res.PaddingModules *= scale
	res.Scale = scale
	return res
}

// Occludes reports whether the module at (row, col) falls inside the
// effective cutout, measured in a frame centered on the matrix middle.
// Circular padding uses the Euclidean distance; square padding (and the
// no-padding case) uses the Chebyshev distance.
func (r Result) Occludes(row, col, size int) bool {
	if r.LogoModules <= 0 {
		return false
	}

	center := float64(size) / 2
	dx := float64(col) + 0.5 - center
	dy := float64(row) + 0.5 - center
	half := r.CutoutModules() / 2

	if r.Shape == ShapeCircle {
		return dx*dx+dy*dy <= half*half
	}
	return math.Max(math.Abs(dx), math.Abs(dy)) <= half
}
