package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is missing or not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidAnswer is returned when an answer is neither "know" nor "dont_know".
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrInvalidStatus is returned when a progress status is not one of new, learning, known.
	ErrInvalidStatus = errors.New("invalid progress status")

	// ErrInvalidRole is returned when a user role is not recognized.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single invalid field. It wraps a sentinel so
// callers can match the category with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
