// Package errors provides the error taxonomy for create-module.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information.
// It always renders as a single line so the CLI can print it verbatim.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString(". ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
// cause should be ErrValidation or one of the errors wrapping it.
func NewValidationError(cause error, message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// NewPreconditionError creates a precondition error with details.
func NewPreconditionError(cause error, message, location, hint string) error {
	return &DetailError{
		Type:     "precondition failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    cause,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
