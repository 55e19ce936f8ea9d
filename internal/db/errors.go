package db

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to status codes.
var (
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for uniqueness and state conflicts (duplicate
	// slug, initializing a page that already has blocks).
	ErrConflict = errors.New("conflict")
)

// ValidationError is a caller error with enough detail for a field-level
// message. It unwraps to nothing; check with AsValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation reports whether err is (or wraps) a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
