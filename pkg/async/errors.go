package async

import "errors"

// Package-level error definitions for asynchronous operations.
var (
	ErrTimeout   = errors.New("async operation timed out")
	ErrNoFutures = errors.New("no futures provided")
)
