package renderer

import "errors"

var (
	// ErrInvalidConfig is returned when the configuration cannot produce a
	// surface at all, for example a non-positive size after defaulting.
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
)
