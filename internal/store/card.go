package store

import (
	"context"

	"github.com/slotocki/flashcards/internal/domain"
)

// CardStore is the read-only card source used by the study engine.
type CardStore interface {
	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Card, error)

	// ListByDeck returns every card of a deck ordered by ID.
	// An unknown or empty deck yields an empty slice.
	ListByDeck(ctx context.Context, deckID int64) ([]*domain.Card, error)
}
