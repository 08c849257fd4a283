package contrast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcraft/pkg/contrast"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	t.Run("black on white is maximal", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 21.0, contrast.Ratio("#000000", "#ffffff"), 0.01)
	})

	t.Run("order independent", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t,
			contrast.Ratio("#0f172a", "#f8fafc"),
			contrast.Ratio("#f8fafc", "#0f172a"),
			1e-9,
		)
	})

	t.Run("identical colors yield 1", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 1.0, contrast.Ratio("#4f46e5", "#4f46e5"), 1e-9)
	})

	t.Run("known pair", func(t *testing.T) {
		t.Parallel()
		// slate-900 on slate-50, a pairing the original palette relies on
		ratio := contrast.Ratio("#0f172a", "#f8fafc")
		assert.Greater(t, ratio, 15.0)
		assert.Less(t, ratio, 21.0)
	})
}

func TestRatio_MalformedInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
	}{
		{"empty foreground", "", "#ffffff"},
		{"empty background", "#000000", ""},
		{"wrong length", "#ffff", "#000000"},
		{"not hex digits", "#zzzzzz", "#000000"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Zero(t, contrast.Ratio(tc.a, tc.b))
		})
	}
}

func TestLuminance(t *testing.T) {
	t.Parallel()

	white, ok := contrast.Luminance("#ffffff")
	require.True(t, ok)
	assert.InDelta(t, 1.0, white, 1e-9)

	black, ok := contrast.Luminance("#000000")
	require.True(t, ok)
	assert.Zero(t, black)

	// shorthand expands to the long form
	long, ok := contrast.Luminance("#ff0000")
	require.True(t, ok)
	short, ok := contrast.Luminance("#f00")
	require.True(t, ok)
	assert.InDelta(t, long, short, 1e-9)

	_, ok = contrast.Luminance("nope")
	assert.False(t, ok)
}

func TestIsLow(t *testing.T) {
	t.Parallel()

	assert.False(t, contrast.IsLow("#000000", "#ffffff"))
	assert.True(t, contrast.IsLow("#777777", "#888888"))
	assert.True(t, contrast.IsLow("", "#ffffff"), "malformed input counts as low contrast")
}
