package contrast

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MinRecommendedRatio is the advisory threshold below which two colors are
// considered too close for reliable scanning. Matches the WCAG AA requirement
// for normal text.
const MinRecommendedRatio = 4.5

// Luminance returns the WCAG 2.0 relative luminance of an sRGB hex color such
// as "#1e293b". The second return value reports whether the input parsed.
func Luminance(hex string) (float64, bool) {
	c, ok := parseHex(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), true
}

// Ratio returns the WCAG contrast ratio between two hex colors. The result is
// always >= 1 for valid input, and 0 when either color is malformed.
func Ratio(a, b string) float64 {
	la, ok := Luminance(a)
	if !ok {
		return 0
	}
	lb, ok := Luminance(b)
	if !ok {
		return 0
	}

	lighter, darker := la, lb
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLow reports whether the contrast between two colors falls below the
// advisory threshold. Malformed input counts as low contrast, since a zero
// ratio can never satisfy the threshold.
func IsLow(a, b string) bool {
	return Ratio(a, b) < MinRecommendedRatio
}

// linearize converts a gamma-compressed sRGB channel in [0, 1] to its linear
// value using the WCAG 2.0 transfer curve.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// parseHex accepts "#rrggbb", "rrggbb", and the shorthand "#rgb" forms.
func parseHex(hex string) (colorful.Color, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return colorful.Color{}, false
	}

	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
