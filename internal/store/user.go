package store

import (
	"context"

	"github.com/slotocki/flashcards/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, compared
	// case-insensitively.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
