package safearea_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrcraft/core/matrix"
	"github.com/dmitrymomot/qrcraft/core/safearea"
)

func TestMaxRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.22, safearea.MaxRatio(matrix.LevelLow))
	assert.Equal(t, 0.35, safearea.MaxRatio(matrix.LevelMedium))
	assert.Equal(t, 0.45, safearea.MaxRatio(matrix.LevelQuartile))
	assert.Equal(t, 0.50, safearea.MaxRatio(matrix.LevelHigh))
	assert.Equal(t, 0.22, safearea.MaxRatio(matrix.Level(0)), "unknown level gets the conservative limit")
}

func TestCompute_ClampBound(t *testing.T) {
	t.Parallel()

	levels := []matrix.Level{matrix.LevelLow, matrix.LevelMedium, matrix.LevelQuartile, matrix.LevelHigh}
	sizes := []int{21, 29, 45, 77}
	ratios := []float64{0.1, 0.25, 0.35, 0.6, 1.0}
	paddings := []float64{0, 1, 2, 4, 8}

	for _, level := range levels {
		for _, size := range sizes {
			for _, ratio := range ratios {
				for _, padding := range paddings {
					res := safearea.Compute(size, level, safearea.Request{
						LogoRatio: ratio,
						Padding:   padding,
						Shape:     safearea.ShapeCircle,
					})
					limit := float64(size) * safearea.MaxRatio(level)
					assert.LessOrEqual(t, res.CutoutModules(), limit+1e-9,
						"level=%s size=%d ratio=%.2f padding=%.1f", level, size, ratio, padding)
				}
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	// Already-safe request passes through unchanged.
	res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
		LogoRatio: 0.2,
		Padding:   1,
		Shape:     safearea.ShapeCircle,
	})
	assert.Equal(t, 1.0, res.Scale)
	assert.InDelta(t, 0.2*29, res.LogoModules, 1e-9)
	assert.InDelta(t, 1.0, res.PaddingModules, 1e-9)

	// Clamping an already-clamped size returns it unchanged.
	clamped := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
		LogoRatio: clampedRatio(res, 29),
		Padding:   res.PaddingModules,
		Shape:     res.Shape,
	})
	assert.InDelta(t, res.CutoutModules(), clamped.CutoutModules(), 1e-9)
}

func clampedRatio(r safearea.Result, size int) float64 {
	return r.LogoModules / float64(size)
}

func TestCompute_Scenario29x29(t *testing.T) {
	t.Parallel()

	// Highest redundancy, over-sized request: ratio 0.35 logo + 4 modules of
	// padding on a 29x29 matrix must clamp to at most 0.51 of the side.
	res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
		LogoRatio: 0.35,
		Padding:   4,
		Shape:     safearea.ShapeCircle,
	})

	ratio := res.CutoutModules() / 29
	assert.LessOrEqual(t, ratio, 0.51)
	assert.Less(t, res.Scale, 1.0, "the request exceeds the limit, so it must scale down")

	// Logo and padding shrink by the same factor.
	assert.InDelta(t, res.LogoModules/(0.35*29), res.PaddingModules/4, 1e-9)
}

func TestOccludes(t *testing.T) {
	t.Parallel()

	t.Run("circle uses euclidean distance", func(t *testing.T) {
		t.Parallel()
		res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
			LogoRatio: 0.3, Shape: safearea.ShapeCircle,
		})
		center := 14
		assert.True(t, res.Occludes(center, center, 29))
		// A diagonal cell at the square's corner distance falls outside the disc.
		half := res.CutoutModules() / 2
		diag := center + int(half) // on-axis still inside, diagonal beyond radius
		assert.True(t, res.Occludes(center, diag-1, 29))
		assert.False(t, res.Occludes(diag, diag, 29))
	})

	t.Run("square uses chebyshev distance", func(t *testing.T) {
		t.Parallel()
		res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
			LogoRatio: 0.3, Shape: safearea.ShapeSquare, Padding: 1,
		})
		center := 14
		assert.True(t, res.Occludes(center, center, 29))
		reach := int(res.CutoutModules()/2) - 1
		assert.True(t, res.Occludes(center-reach, center-reach, 29),
			"square cutout covers the full corner")
	})

	t.Run("no padding still suppresses the logo footprint", func(t *testing.T) {
		t.Parallel()
		res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{
			LogoRatio: 0.3, Padding: 4, Shape: safearea.ShapeNone,
		})
		assert.Zero(t, res.PaddingModules, "requested padding is ignored without a padding shape")
		assert.True(t, res.Occludes(14, 14, 29))
	})

	t.Run("no logo occludes nothing", func(t *testing.T) {
		t.Parallel()
		res := safearea.Compute(29, matrix.LevelHigh, safearea.Request{})
		for r := 0; r < 29; r++ {
			for c := 0; c < 29; c++ {
				assert.False(t, res.Occludes(r, c, 29))
			}
		}
	})
}
