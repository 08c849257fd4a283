package matrix

import "errors"

// Package-level error definitions for matrix construction.
var (
	ErrEncode        = errors.New("payload cannot be encoded at the requested error-correction level")
	ErrInvalidMatrix = errors.New("matrix must be square with odd size >= 21")
	ErrInvalidLevel  = errors.New("unknown error-correction level")
)
