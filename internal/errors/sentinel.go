package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file, template, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition indicates the working environment is not usable.
	ErrPrecondition = errors.New("precondition failed")
)

// Domain errors. Each wraps one of the sentinels above so callers can match
// either the specific condition or its category.
var (
	// ErrInvalidName indicates an empty or whitespace-only name.
	ErrInvalidName = fmt.Errorf("invalid name: %w", ErrValidation)

	// ErrInvalidCharacter indicates a name outside the allowed character set.
	ErrInvalidCharacter = fmt.Errorf("invalid character in name: %w", ErrValidation)

	// ErrNotHostProject indicates the project root is not a NestJS application.
	ErrNotHostProject = fmt.Errorf("not a NestJS project: %w", ErrPrecondition)

	// ErrNoContainerDir indicates none of the module container directories exist.
	ErrNoContainerDir = fmt.Errorf("no module container directory: %w", ErrPrecondition)
)
