// Package progress implements the study progress engine: choosing the next
// card of a deck for a learner, applying answers to their mastery state and
// rolling that state up into deck and user summaries.
//
// The engine performs no authorization; callers check deck access first.
package progress

//go:generate mockgen -source=service.go -destination=../../mocks/progress/mock_service.go -package=mock_progress

import (
	"context"

	"github.com/slotocki/flashcards/internal/domain"
)

// StudyCard is the card served to a learner together with their progress on it.
type StudyCard struct {
	Card     *domain.Card           `json:"card"`
	Progress *domain.ProgressRecord `json:"progress"`
}

// Service is the study progress engine.
type Service interface {
	// NextCard picks the next card of the deck for the user and ensures a
	// progress record exists for it. It never changes streaks, so repeated
	// calls without answers return the same card.
	//
	// Returns:
	//   - (*StudyCard, nil): the chosen card and its progress record
	//   - (nil, ErrDeckCompleted): every card of the deck is known, or the deck is empty
	//   - (nil, error): storage failures wrapped in a ServiceError
	NextCard(ctx context.Context, userID, deckID int64) (*StudyCard, error)

	// RecordAnswer applies a "know" / "dont_know" answer to the user's record
	// for the card, creating the record if needed, and returns the new state.
	// The read-modify-write runs in one transaction with the row locked.
	//
	// Returns:
	//   - (nil, ErrInvalidAnswer): answer is not "know" or "dont_know"; nothing is stored
	//   - (nil, ErrCardNotFound): the card does not exist
	//   - (nil, error): storage failures wrapped in a ServiceError
	RecordAnswer(ctx context.Context, userID, cardID int64, answer string) (*domain.ProgressRecord, error)

	// DeckProgress summarizes the user's progress over every card of the deck.
	DeckProgress(ctx context.Context, userID, deckID int64) (*domain.DeckProgressSummary, error)

	// UserStats summarizes every progress record of the user.
	UserStats(ctx context.Context, userID int64) (*domain.UserStats, error)

	// ProgressByDecks summarizes the user's progress for each deck of the
	// classes they are enrolled in.
	ProgressByDecks(ctx context.Context, userID int64) ([]domain.DeckProgressRow, error)

	// ResetDeckProgress deletes every progress record of the user for the
	// deck's cards. Afterwards the deck behaves as for a fresh learner.
	ResetDeckProgress(ctx context.Context, userID, deckID int64) error
}
