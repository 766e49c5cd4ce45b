package store

import (
	"context"

	"github.com/slotocki/flashcards/internal/domain"
)

// DeckStore provides read access to decks.
type DeckStore interface {
	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Deck, error)
}

// ClassStore provides the class facts needed for access decisions.
type ClassStore interface {
	// GetByID retrieves a class by its unique ID.
	// Returns ErrClassNotFound if the class does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Class, error)

	// IsMember reports whether the user is enrolled in the class.
	IsMember(ctx context.Context, classID, userID int64) (bool, error)
}
