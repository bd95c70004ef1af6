package review

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a review item does not exist
	ErrNotFound = errors.New("review item not found")

	// ErrBlocked is returned when a suggestion is on the blocklist
	ErrBlocked = errors.New("suggestion is blocklisted")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
