package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/dmitrymomot/qrcraft/core/border"
	"github.com/dmitrymomot/qrcraft/core/matrix"
	"github.com/dmitrymomot/qrcraft/core/safearea"
	"github.com/dmitrymomot/qrcraft/core/styles"
)

// Result is one fully painted surface plus its accessible description.
type Result struct {
	Image *image.RGBA
	// Description is a short text alternative of the form
	// "barcode for <kind> — scan to view content" or "... — empty".
	Description string
}

// Render executes one synchronous pass and returns the painted surface.
//
// On encoder failure the returned error is non-nil but the Result still
// carries a cleared surface, so callers can always display Result.Image
// without checking for a half-drawn state.
func Render(cfg Config) (*Result, error) {
	if cfg.Size <= 0 || cfg.PixelRatio <= 0 {
		return nil, fmt.Errorf("%w: size %d, pixel ratio %g", ErrInvalidConfig, cfg.Size, cfg.PixelRatio)
	}

	side := int(math.Round(float64(cfg.Size) * cfg.PixelRatio))
	fg, bg, eyeColor := cfg.palette()

	gc := gg.NewContext(side, side)
	clearSurface(gc, bg)

	result := &Result{Description: describe(cfg)}

	if cfg.Payload == "" {
		result.Image = surface(gc)
		return result, nil
	}

	m, err := matrix.Encode(cfg.Payload, cfg.Level)
	if err != nil {
		result.Image = surface(gc)
		return result, fmt.Errorf("render: %w", err)
	}

	comp, err := border.NewComposer(cfg.Border)
	if err != nil {
		result.Image = surface(gc)
		return result, fmt.Errorf("render: %w", err)
	}
	comp.DrawBand(gc, side, bg)

	inset := comp.Inset(side)
	region := float64(side - 2*inset)
	quiet := cfg.QuietZone
	if quiet < 0 {
		quiet = 0
	}
	modulePx := region / float64(m.Size()+2*quiet)
	origin := float64(inset) + (region-modulePx*float64(m.Size()))/2

	var area safearea.Result
	if cfg.Logo != nil {
		area = safearea.Compute(m.Size(), cfg.Level, safearea.Request{
			LogoRatio: cfg.LogoRatio,
			Padding:   cfg.LogoPadding,
			Shape:     cfg.LogoShape,
		})
	}

	dc := &styles.Context{
		GC:         gc,
		Foreground: fg,
		Background: bg,
		Eye:        eyeColor,
		Module:     modulePx,
		Rand:       jitterSource(cfg.Seed),
	}
	drawer := styles.Lookup(cfg.Style)
	needsNeighbors := drawer.NeedsNeighbors()

	drawable := func(row, col int) bool {
		return m.At(row, col) &&
			matrix.Classify(row, col, m.Size()) == matrix.RegionData &&
			!area.Occludes(row, col, m.Size())
	}

	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !drawable(row, col) {
				continue
			}
			cell := styles.Cell{
				Rect: styles.Rect{
					X: origin + float64(col)*modulePx,
					Y: origin + float64(row)*modulePx,
					W: modulePx,
					H: modulePx,
				},
			}
			if needsNeighbors {
				cell.Neighbors = matrix.NeighborsOf(row, col, drawable)
			}
			drawer.DrawModule(dc, cell)
		}
	}

	// Eyes go last so no data-module pass can clip them.
	eyeSpan := 7 * modulePx
	far := origin + float64(m.Size()-7)*modulePx
	for _, eye := range []styles.Eye{
		{Rect: styles.Rect{X: origin, Y: origin, W: eyeSpan, H: eyeSpan}, Corner: styles.CornerTopLeft},
		{Rect: styles.Rect{X: far, Y: origin, W: eyeSpan, H: eyeSpan}, Corner: styles.CornerTopRight},
		{Rect: styles.Rect{X: origin, Y: far, W: eyeSpan, H: eyeSpan}, Corner: styles.CornerBottomLeft},
	} {
		drawer.DrawEye(dc, eye)
	}

	if cfg.Logo != nil && area.LogoModules > 0 {
		compositeLogo(gc, cfg.Logo, area, bg, origin, modulePx, float64(m.Size()))
	}

	if err := comp.DrawOverlay(gc, side, bg); err != nil {
		clearSurface(gc, bg)
		result.Image = surface(gc)
		return result, fmt.Errorf("render: %w", err)
	}

	result.Image = surface(gc)
	return result, nil
}

// compositeLogo clears the padding shape and draws the logo centered on the
// matrix, both sized by the clamped safe-area result.
func compositeLogo(gc *gg.Context, logo image.Image, area safearea.Result, bg color.Color, origin, modulePx, size float64) {
	cx := origin + size/2*modulePx
	cy := cx
	cutoutPx := area.CutoutModules() * modulePx

	gc.Push()
	defer gc.Pop()

	gc.SetColor(bg)
	switch area.Shape {
	case safearea.ShapeCircle:
		gc.DrawCircle(cx, cy, cutoutPx/2)
		gc.Fill()
	case safearea.ShapeSquare:
		gc.DrawRectangle(cx-cutoutPx/2, cy-cutoutPx/2, cutoutPx, cutoutPx)
		gc.Fill()
	}

	logoPx := uint(area.LogoModules * modulePx)
	if logoPx == 0 {
		return
	}
	scaled := resize.Thumbnail(logoPx, logoPx, logo, resize.Lanczos3)
	gc.DrawImageAnchored(scaled, int(cx), int(cy), 0.5, 0.5)
}

func describe(cfg Config) string {
	kind := cfg.ContentKind
	if kind == "" {
		kind = "text"
	}
	state := "scan to view content"
	if cfg.Payload == "" {
		state = "empty"
	}
	return fmt.Sprintf("barcode for %s — %s", kind, state)
}

func clearSurface(gc *gg.Context, bg color.Color) {
	gc.SetColor(bg)
	gc.Clear()
}

func surface(gc *gg.Context) *image.RGBA {
	return gc.Image().(*image.RGBA)
}

// jitterSource seeds the RNG for randomized styles. A fixed seed makes the
// render reproducible; zero falls back to the clock.
func jitterSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
