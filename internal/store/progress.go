package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/domain/study"
)

// ProgressStore defines the interface for per-user, per-card progress
// persistence and the aggregate queries derived from it.
type ProgressStore interface {
	// GetOrCreate returns the record for (userID, cardID), inserting a fresh
	// "new" record first if none exists. Concurrent callers for the same key
	// observe the same single record.
	// Returns ErrCardNotFound or ErrUserNotFound if either side is missing.
	GetOrCreate(ctx context.Context, userID, cardID int64, now time.Time) (*domain.ProgressRecord, error)

	// GetForUpdate retrieves a record with a row-level lock using SELECT FOR UPDATE.
	// This must be used within a transaction (see WithTx).
	// Returns ErrProgressNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, userID, cardID int64) (*domain.ProgressRecord, error)

	// Update persists status, streaks and last review time of an existing record.
	// Returns ErrProgressNotFound if the record does not exist.
	// Returns ErrInvalidEntity if the record fails domain validation.
	Update(ctx context.Context, rec *domain.ProgressRecord) error

	// DeleteForDeck removes every record of the user for the cards of the deck
	// and returns how many were removed.
	DeleteForDeck(ctx context.Context, userID, deckID int64) (int64, error)

	// ListDeckCandidates returns one candidate per card of the deck, carrying
	// the user's status and last review time. Cards without a record are
	// reported as new and never reviewed.
	ListDeckCandidates(ctx context.Context, userID, deckID int64) ([]study.Candidate, error)

	// CountDeckProgress aggregates the user's progress over the deck's cards.
	CountDeckProgress(ctx context.Context, userID, deckID int64) (*domain.DeckProgressSummary, error)

	// UserStats aggregates every record the user has.
	UserStats(ctx context.Context, userID int64) (*domain.UserStats, error)

	// ProgressByDecks aggregates the user's progress for each deck of every
	// class the user is enrolled in, ordered by class name then deck title.
	ProgressByDecks(ctx context.Context, userID int64) ([]domain.DeckProgressRow, error)

	// WithTx returns a ProgressStore that runs its queries on tx.
	WithTx(tx *sql.Tx) ProgressStore
}
