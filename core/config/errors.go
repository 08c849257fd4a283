package config

import "errors"

var (
	// ErrInvalidTarget is returned when Load receives anything other than a
	// non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("config: target must be a non-nil struct pointer")

	// ErrParse is returned when the environment cannot be parsed into the
	// target struct, for example a missing required variable.
	ErrParse = errors.New("config: parse environment")
)
