package domain

import (
	"errors"
	"strings"
	"time"
)

// Card-specific validation errors
var (
	// ErrCardDeckIDEmpty is returned when a card does not reference a deck.
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card has no front text.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card has no back text.
	ErrCardBackEmpty = errors.New("card back cannot be empty")
)

// Card is a front/back learning unit that belongs to exactly one Deck.
// Cards are read-only from the study engine's perspective; they are created by
// the deck owner and removed together with their deck.
type Card struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	ImagePath *string   `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.DeckID <= 0 {
		return ErrCardDeckIDEmpty
	}
	if strings.TrimSpace(c.Front) == "" {
		return ErrCardFrontEmpty
	}
	if strings.TrimSpace(c.Back) == "" {
		return ErrCardBackEmpty
	}
	return nil
}
