package matrix

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Level is one of the four ordered QR error-correction tiers. Higher levels
// add redundancy, which tolerates more occlusion (logo cutouts, damage) at
// the cost of data density.
type Level int

// Error-correction levels in increasing redundancy order.
const (
	LevelLow      Level = iota + 1 // ~7% recoverable
	LevelMedium                    // ~15% recoverable
	LevelQuartile                  // ~25% recoverable
	LevelHigh                      // ~30% recoverable
)

// Valid reports whether the level is one of the four defined tiers.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "L"
	case LevelMedium:
		return "M"
	case LevelQuartile:
		return "Q"
	case LevelHigh:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// recovery maps a Level to the encoder's recovery constant.
func (l Level) recovery() (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelLow:
		return qrcode.Low, nil
	case LevelMedium:
		return qrcode.Medium, nil
	case LevelQuartile:
		return qrcode.High, nil
	case LevelHigh:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
}

// Matrix is an immutable square grid of QR modules. The zero value is empty;
// use New or Encode to obtain a usable matrix.
type Matrix struct {
	size  int
	cells []bool
}

// New builds a Matrix from a row-major boolean grid. The grid must be square
// with odd side length of at least 21 (QR version 1).
func New(cells [][]bool) (Matrix, error) {
	size := len(cells)
	if size < 21 || size%2 == 0 {
		return Matrix{}, fmt.Errorf("%w: got %d rows", ErrInvalidMatrix, size)
	}

	flat := make([]bool, 0, size*size)
	for i, row := range cells {
		if len(row) != size {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns", ErrInvalidMatrix, i, len(row))
		}
		flat = append(flat, row...)
	}
	return Matrix{size: size, cells: flat}, nil
}

// Encode produces the module matrix for a payload at the given
// error-correction level. The returned matrix excludes the quiet zone; margin
// handling belongs to the rendering layer.
func Encode(payload string, level Level) (Matrix, error) {
	recovery, err := level.recovery()
	if err != nil {
		return Matrix{}, err
	}

	code, err := qrcode.New(payload, recovery)
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	code.DisableBorder = true

	return New(code.Bitmap())
}

// Size returns the side length in modules. Zero for the zero value.
func (m Matrix) Size() int {
	return m.size
}

// At reports whether the module at (row, col) is set. Out-of-range
// coordinates are off, so callers can probe neighbours without bounds checks.
func (m Matrix) At(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.cells[row*m.size+col]
}
