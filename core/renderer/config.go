package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dmitrymomot/qrcraft/core/border"
	"github.com/dmitrymomot/qrcraft/core/matrix"
	"github.com/dmitrymomot/qrcraft/core/safearea"
	"github.com/dmitrymomot/qrcraft/core/styles"
	"github.com/dmitrymomot/qrcraft/pkg/contrast"
)

// Config fully describes one render pass. Construct it from DefaultConfig
// and override fields; a zero Config is rejected by Render.
type Config struct {
	// Payload is the content to encode. Empty renders the empty state: a
	// cleared surface with no matrix.
	Payload string
	// ContentKind labels the payload in the accessible description, for
	// example "wifi network" or "link".
	ContentKind string

	// Level is the error-correction level.
	Level matrix.Level
	// Style selects the module drawer; unknown values fall back to square.
	Style styles.Variant

	// Size is the logical side length in pixels.
	Size int
	// PixelRatio scales Size to physical pixels for dense displays.
	PixelRatio float64
	// QuietZone is the clear margin around the matrix, in modules.
	QuietZone int

	// Foreground, Background, and EyeColor are sRGB hex strings. Malformed
	// values fall back to black ink on white so a stale stored palette still
	// renders. EyeColor empty means "same as foreground".
	Foreground string
	Background string
	EyeColor   string

	// Logo is the resolved center raster. Nil means no logo: the matrix is
	// never occluded for a logo that failed to resolve.
	Logo image.Image
	// LogoRatio is the logo edge as a fraction of the matrix side.
	LogoRatio float64
	// LogoPadding is the clear margin around the logo, in modules per side.
	LogoPadding float64
	// LogoShape is the geometry of the cleared region behind the logo.
	LogoShape safearea.Shape

	// Border configures the decorative frame; the zero value disables it.
	Border border.Config

	// Seed fixes the jitter source for randomized styles, making renders
	// reproducible. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the baseline configuration: 1024 px, square style,
// black on white, medium error correction, a four-module quiet zone, no
// logo, and no border.
func DefaultConfig() Config {
	return Config{
		ContentKind: "text",
		Level:       matrix.LevelMedium,
		Style:       styles.VariantSquare,
		Size:        1024,
		PixelRatio:  1,
		QuietZone:   4,
		Foreground:  "#000000",
		Background:  "#ffffff",
		LogoRatio:   0.2,
		LogoPadding: 1,
		LogoShape:   safearea.ShapeCircle,
	}
}

// ContrastWarnings returns advisory messages for color pairs below the
// recommended contrast ratio. Warnings never block rendering; they exist so
// a caller can flag an unscannable palette before the image is produced.
func (c Config) ContrastWarnings() []string {
	var warnings []string
	if contrast.IsLow(c.Foreground, c.Background) {
		warnings = append(warnings, fmt.Sprintf(
			"foreground %s on background %s is below the %.1f:1 contrast ratio",
			c.Foreground, c.Background, contrast.MinRecommendedRatio))
	}
	if c.EyeColor != "" && contrast.IsLow(c.EyeColor, c.Background) {
		warnings = append(warnings, fmt.Sprintf(
			"eye color %s on background %s is below the %.1f:1 contrast ratio",
			c.EyeColor, c.Background, contrast.MinRecommendedRatio))
	}
	if c.Border.WidthRatio > 0 && c.Border.Caption != "" {
		caption := hexOf(c.Border.CaptionColor, c.Background)
		band := hexOf(c.Border.Color, "#000000")
		if contrast.IsLow(caption, band) {
			warnings = append(warnings, fmt.Sprintf(
				"caption color %s on border %s is below the %.1f:1 contrast ratio",
				caption, band, contrast.MinRecommendedRatio))
		}
	}
	return warnings
}

// hexOf formats a drawable color as an sRGB hex string for the contrast
// check. Nil falls back to the given default, matching the draw-time
// behavior of the corresponding field.
func hexOf(c color.Color, fallback string) string {
	if c == nil {
		return fallback
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// palette resolves the configured hex strings into drawable colors.
// Malformed values degrade to the default black-on-white pair.
func (c Config) palette() (fg, bg, eye color.Color) {
	fg = parseHexColor(c.Foreground, color.Black)
	bg = parseHexColor(c.Background, color.White)
	if c.EyeColor == "" {
		eye = fg
	} else {
		eye = parseHexColor(c.EyeColor, fg)
	}
	return fg, bg, eye
}

func parseHexColor(hex string, fallback color.Color) color.Color {
	if hex == "" {
		return fallback
	}
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return parsed
}
