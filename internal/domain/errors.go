package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("version conflict")
	ErrUnknownKind    = errors.New("unknown kind")
)

// InvalidFieldError reports a body value whose JSON type does not match the
// field it targets.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	if e.Field == "" {
		return "Invalid field"
	}
	return "Invalid " + e.Field
}
