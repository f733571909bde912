package types

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every MissingFieldError through errors.Is
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports a required field that was absent when a value
// object was built
type MissingFieldError struct {
	// Type is the value object being built (e.g. "animal")
	Type string
	// Field is the snake_case name of the missing field
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s is required", e.Type, e.Field)
}

// Is makes errors.Is(err, ErrMissingField) succeed for any MissingFieldError
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missing(typ, field string) error {
	return &MissingFieldError{Type: typ, Field: field}
}
