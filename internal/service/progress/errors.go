package progress

import (
	"errors"
	"fmt"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/store"
)

// Common error types for the progress engine
var (
	// ErrDeckCompleted indicates there is nothing left to study in the deck.
	// It is a terminal state, not a failure.
	ErrDeckCompleted = errors.New("deck completed: every card is known")

	// ErrInvalidAnswer indicates an answer other than "know" or "dont_know".
	ErrInvalidAnswer = domain.ErrInvalidAnswer

	// ErrCardNotFound indicates that the card does not exist.
	ErrCardNotFound = store.ErrCardNotFound
)

// ServiceError wraps errors from the progress engine with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "next_card", "record_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}

// NewNextCardError returns a new ServiceError for the next_card operation.
func NewNextCardError(message string, err error) *ServiceError {
	return newServiceError("next_card", message, err)
}

// NewRecordAnswerError returns a new ServiceError for the record_answer operation.
func NewRecordAnswerError(message string, err error) *ServiceError {
	return newServiceError("record_answer", message, err)
}

// NewDeckProgressError returns a new ServiceError for the deck_progress operation.
func NewDeckProgressError(message string, err error) *ServiceError {
	return newServiceError("deck_progress", message, err)
}

// NewUserStatsError returns a new ServiceError for the user_stats operation.
func NewUserStatsError(message string, err error) *ServiceError {
	return newServiceError("user_stats", message, err)
}

// NewResetError returns a new ServiceError for the reset_deck_progress operation.
func NewResetError(message string, err error) *ServiceError {
	return newServiceError("reset_deck_progress", message, err)
}
