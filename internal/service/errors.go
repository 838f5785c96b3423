package service

import (
	"errors"
)

var (
	// ErrNotJSON is returned when a request body is absent or is not a JSON
	// object.
	ErrNotJSON = errors.New("Not a JSON")

	ErrMissingField = errors.New("missing required field")
)

// MissingFieldError names the first required field a body lacks.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing " + e.Field
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
