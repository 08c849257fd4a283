package border

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// maxWidthRatio caps the band at a fifth of the side so the matrix always
// keeps enough pixels to stay scannable.
const maxWidthRatio = 0.20

// LineStyle selects the decorative pattern drawn inside the band. The
// pattern is stroked in the surface background color so it reads as a cut
// through the band rather than extra ink.
type LineStyle string

const (
	// LineSolid leaves the band as a plain filled frame.
	LineSolid LineStyle = "solid"
	// LineDashed strokes a dashed rectangle along the band centerline.
	LineDashed LineStyle = "dashed"
	// LineDotted strokes a round-capped dotted rectangle along the band
	// centerline.
	LineDotted LineStyle = "dotted"
	// LineDouble strokes two thin parallel rectangles inside the band.
	LineDouble LineStyle = "double"
)

// CaptionAnchor places the caption inside the band.
type CaptionAnchor int

const (
	CaptionBottom CaptionAnchor = iota
	CaptionTop
)

// LogoAnchor places the secondary logo inside the bottom band.
type LogoAnchor int

const (
	LogoBottomCenter LogoAnchor = iota
	LogoBottomRight
)

// Config describes the frame. The zero value disables it.
type Config struct {
	// WidthRatio is the band width as a fraction of the surface side.
	// Values are clamped to [0, 0.20]; zero disables the frame.
	WidthRatio float64
	// Color fills the band.
	Color color.Color
	// Line is the decorative pattern inside the band.
	Line LineStyle
	// Caption is an optional single line of text drawn inside the band.
	Caption       string
	CaptionAnchor CaptionAnchor
	// CaptionColor inks the caption. Nil uses the surface background color,
	// which reads as text cut out of the band.
	CaptionColor color.Color
	// Logo is an optional secondary raster drawn inside the bottom band,
	// independent of the caption.
	Logo       image.Image
	LogoAnchor LogoAnchor
}

// Composer draws one configured frame. It is safe for concurrent use; all
// mutable state lives on the canvas passed into the draw calls.
type Composer struct {
	cfg  Config
	font *opentype.Font
}

// NewComposer validates the configuration and prepares the caption typeface.
// The typeface is parsed eagerly even when no caption is set, so a face
// failure surfaces at construction instead of mid-render.
func NewComposer(cfg Config) (*Composer, error) {
	if cfg.WidthRatio < 0 {
		cfg.WidthRatio = 0
	}
	if cfg.WidthRatio > maxWidthRatio {
		cfg.WidthRatio = maxWidthRatio
	}
	if cfg.Color == nil {
		cfg.Color = color.Black
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFace, err)
	}
	return &Composer{cfg: cfg, font: fnt}, nil
}

// Enabled reports whether the frame occupies any pixels.
func (c *Composer) Enabled() bool { return c.cfg.WidthRatio > 0 }

// Inset returns the band width in pixels for a square surface of the given
// side. The matrix must be drawn inside the region inset by this amount on
// every edge.
func (c *Composer) Inset(side int) int {
	if !c.Enabled() {
		return 0
	}
	px := int(c.cfg.WidthRatio * float64(side))
	if px < 2 {
		px = 2
	}
	return px
}

// DrawBand paints the frame band and its line pattern, then refills the
// inner region with the background color so the matrix starts from a clean
// surface. No-op when the frame is disabled.
func (c *Composer) DrawBand(gc *gg.Context, side int, background color.Color) {
	band := c.Inset(side)
	if band == 0 {
		return
	}
	s := float64(side)
	b := float64(band)

	gc.Push()
	defer gc.Pop()

	gc.SetColor(c.cfg.Color)
	gc.DrawRectangle(0, 0, s, s)
	gc.Fill()

	gc.SetColor(background)
	switch c.cfg.Line {
	case LineDashed:
		gc.SetLineWidth(0.14 * b)
		gc.SetDash(0.9*b, 0.6*b)
		gc.DrawRectangle(b/2, b/2, s-b, s-b)
		gc.Stroke()
		gc.SetDash()
	case LineDotted:
		gc.SetLineWidth(0.18 * b)
		gc.SetLineCapRound()
		gc.SetDash(0.01*b, 0.55*b)
		gc.DrawRectangle(b/2, b/2, s-b, s-b)
		gc.Stroke()
		gc.SetDash()
	case LineDouble:
		gc.SetLineWidth(0.08 * b)
		gc.DrawRectangle(0.30*b, 0.30*b, s-0.60*b, s-0.60*b)
		gc.Stroke()
		gc.DrawRectangle(0.70*b, 0.70*b, s-1.40*b, s-1.40*b)
		gc.Stroke()
	}

	// inner refill
	gc.SetColor(background)
	gc.DrawRectangle(b, b, s-2*b, s-2*b)
	gc.Fill()
}

// DrawOverlay paints the caption and the secondary logo on top of the band.
// It runs after the matrix so neither element is painted over. No-op when
// the frame is disabled.
func (c *Composer) DrawOverlay(gc *gg.Context, side int, background color.Color) error {
	band := c.Inset(side)
	if band == 0 {
		return nil
	}
	s := float64(side)
	b := float64(band)

	gc.Push()
	defer gc.Pop()

	if c.cfg.Caption != "" {
		face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
			Size:    0.52 * b,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFontFace, err)
		}
		defer face.Close()

		ink := c.cfg.CaptionColor
		if ink == nil {
			ink = background
		}
		gc.SetFontFace(face)
		gc.SetColor(ink)
		y := s - b/2
		if c.cfg.CaptionAnchor == CaptionTop {
			y = b / 2
		}
		gc.DrawStringAnchored(c.cfg.Caption, s/2, y, 0.5, 0.35)
	}

	if c.cfg.Logo != nil {
		target := uint(0.8 * b)
		if target == 0 {
			target = 1
		}
		logo := resize.Thumbnail(target, target, c.cfg.Logo, resize.Lanczos3)
		x := side / 2
		if c.cfg.LogoAnchor == LogoBottomRight {
			x = side - band/2 - logo.Bounds().Dx()/2
		}
		gc.DrawImageAnchored(logo, x, side-band/2, 0.5, 0.5)
	}
	return nil
}
