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

// PostgresDeckStore implements store.DeckStore.
type PostgresDeckStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeckStore creates a new PostgreSQL implementation of the DeckStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresDeckStore(db store.DBTX, logger *slog.Logger) *PostgresDeckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDeckStore{
		db:     db,
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

var _ store.DeckStore = (*PostgresDeckStore)(nil)

// GetByID implements store.DeckStore.GetByID
func (s *PostgresDeckStore) GetByID(ctx context.Context, id int64) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, class_id, title, description, level, is_public, created_at
		FROM decks
		WHERE id = $1
	`

	var (
		deck        domain.Deck
		description sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&deck.ID,
		&deck.ClassID,
		&deck.Title,
		&description,
		&deck.Level,
		&deck.IsPublic,
		&deck.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("deck not found", slog.Int64("deck_id", id))
			return nil, store.ErrDeckNotFound
		}
		log.Error("failed to get deck by ID",
			slog.String("error", err.Error()),
			slog.Int64("deck_id", id))
		return nil, store.NewStoreError("deck", "get", "failed to get deck", MapError(err))
	}
	if description.Valid {
		deck.Description = &description.String
	}

	return &deck, nil
}

// PostgresClassStore implements store.ClassStore.
type PostgresClassStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClassStore creates a new PostgreSQL implementation of the ClassStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresClassStore(db store.DBTX, logger *slog.Logger) *PostgresClassStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClassStore{
		db:     db,
		logger: logger.With(slog.String("component", "class_store")),
	}
}

var _ store.ClassStore = (*PostgresClassStore)(nil)

// GetByID implements store.ClassStore.GetByID
func (s *PostgresClassStore) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var class domain.Class
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, teacher_id FROM classes WHERE id = $1`, id,
	).Scan(&class.ID, &class.Name, &class.TeacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClassNotFound
		}
		log.Error("failed to get class by ID",
			slog.String("error", err.Error()),
			slog.Int64("class_id", id))
		return nil, store.NewStoreError("class", "get", "failed to get class", MapError(err))
	}

	return &class, nil
}

// IsMember implements store.ClassStore.IsMember
func (s *PostgresClassStore) IsMember(ctx context.Context, classID, userID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var member bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM class_members WHERE class_id = $1 AND user_id = $2)`,
		classID, userID,
	).Scan(&member)
	if err != nil {
		log.Error("failed to check class membership",
			slog.String("error", err.Error()),
			slog.Int64("class_id", classID),
			slog.Int64("user_id", userID))
		return false, store.NewStoreError("class", "is_member", "failed to check membership", MapError(err))
	}

	return member, nil
}
