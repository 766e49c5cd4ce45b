package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

const cardColumns = `id, deck_id, front, back, image_path, created_at`

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.Int64("card_id", id))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.Int64("card_id", id))
		return nil, store.NewStoreError("card", "get", "failed to get card", MapError(err))
	}

	return card, nil
}

// ListByDeck implements store.CardStore.ListByDeck
func (s *PostgresCardStore) ListByDeck(ctx context.Context, deckID int64) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE deck_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, deckID)
	if err != nil {
		log.Error("failed to list cards",
			slog.String("error", err.Error()),
			slog.Int64("deck_id", deckID))
		return nil, store.NewStoreError("card", "list", "failed to list cards", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cards := make([]*domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, store.NewStoreError("card", "list", "failed to scan card", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("card", "list", "failed to iterate cards", err)
	}

	return cards, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card      domain.Card
		imagePath sql.NullString
	)
	if err := row.Scan(
		&card.ID,
		&card.DeckID,
		&card.Front,
		&card.Back,
		&imagePath,
		&card.CreatedAt,
	); err != nil {
		return nil, err
	}
	if imagePath.Valid {
		card.ImagePath = &imagePath.String
	}
	return &card, nil
}
