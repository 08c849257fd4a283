package border

import "errors"

var (
	// ErrFontFace is returned when the embedded caption typeface cannot be
	// parsed or sized.
	ErrFontFace = errors.New("border: caption font face unavailable")
)
