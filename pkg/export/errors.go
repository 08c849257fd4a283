package export

import "errors"

var (
	// ErrNilImage is returned when there is no surface to encode.
	ErrNilImage = errors.New("export: nil image")
)
