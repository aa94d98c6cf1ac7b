package errutil

import (
	"fmt"
	"strings"
)

const ValidationErrorPrefix = "validation error: "

// Maybe wraps err with msg, or returns nil if err is nil.
func Maybe(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Validation marks err as a validation failure. Returns nil if err is nil.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(ValidationErrorPrefix+"%w", err)
}

// IsValidationError returns true if err, possibly wrapped by Maybe, was
// produced by Validation.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), ValidationErrorPrefix)
}
