package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrcraft/core/matrix"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	sizes := []int{21, 25, 29, 33, 45, 57, 177}

	t.Run("three corners are symmetric", func(t *testing.T) {
		t.Parallel()
		for _, size := range sizes {
			for r := 0; r < 7; r++ {
				for c := 0; c < 7; c++ {
					assert.Equal(t, matrix.RegionEye, matrix.Classify(r, c, size),
						"top-left size=%d (%d,%d)", size, r, c)
					assert.Equal(t, matrix.RegionEye, matrix.Classify(r, size-1-c, size),
						"top-right size=%d (%d,%d)", size, r, size-1-c)
					assert.Equal(t, matrix.RegionEye, matrix.Classify(size-1-r, c, size),
						"bottom-left size=%d (%d,%d)", size, size-1-r, c)
				}
			}
		}
	})

	t.Run("everything outside the corners is data", func(t *testing.T) {
		t.Parallel()
		for _, size := range sizes {
			eyeCount := 0
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					if matrix.Classify(r, c, size) == matrix.RegionEye {
						eyeCount++
						continue
					}
					inCorner := (r < 7 && c < 7) || (r < 7 && c >= size-7) || (r >= size-7 && c < 7)
					assert.False(t, inCorner, "size=%d (%d,%d) misclassified as data", size, r, c)
				}
			}
			assert.Equal(t, 3*49, eyeCount, "size=%d", size)
		}
	})

	t.Run("bottom-right corner is data", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, matrix.RegionData, matrix.Classify(20, 20, 21))
	})
}

func TestNeighborsOf(t *testing.T) {
	t.Parallel()

	drawable := func(row, col int) bool {
		// single active column at col==3
		return col == 3
	}

	n := matrix.NeighborsOf(5, 3, drawable)
	assert.True(t, n.Up)
	assert.True(t, n.Down)
	assert.False(t, n.Left)
	assert.False(t, n.Right)

	n = matrix.NeighborsOf(5, 2, drawable)
	assert.False(t, n.Up)
	assert.False(t, n.Down)
	assert.False(t, n.Left)
	assert.True(t, n.Right)
}
