package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/domain/study"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/store"
)

// Foreign key constraint names on the progress table.
const (
	progressUserFKey = "progress_user_fkey"
	progressCardFKey = "progress_card_fkey"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// WithTx implements store.ProgressStore.WithTx
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

const progressColumns = `user_id, card_id, status, correct_streak, wrong_streak, last_reviewed_at, created_at`

// GetOrCreate implements store.ProgressStore.GetOrCreate
// The insert is a no-op when the record already exists, so concurrent first
// access by the same user converges on one row.
func (s *PostgresProgressStore) GetOrCreate(
	ctx context.Context,
	userID, cardID int64,
	now time.Time,
) (*domain.ProgressRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	insert := `
		INSERT INTO progress (user_id, card_id, status, correct_streak, wrong_streak, created_at)
		VALUES ($1, $2, $3, 0, 0, $4)
		ON CONFLICT (user_id, card_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, insert, userID, cardID, string(domain.StatusNew), now.UTC()); err != nil {
		if IsForeignKeyViolation(err) {
			switch ViolatedConstraint(err) {
			case progressCardFKey:
				return nil, store.ErrCardNotFound
			case progressUserFKey:
				return nil, store.ErrUserNotFound
			}
		}
		log.Error("failed to create progress record",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		return nil, store.NewStoreError("progress", "create", "failed to create progress record", MapError(err))
	}

	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = $1 AND card_id = $2`
	return s.getOne(ctx, "get", query, userID, cardID)
}

// GetForUpdate implements store.ProgressStore.GetForUpdate
func (s *PostgresProgressStore) GetForUpdate(ctx context.Context, userID, cardID int64) (*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = $1 AND card_id = $2 FOR UPDATE`
	return s.getOne(ctx, "get_for_update", query, userID, cardID)
}

func (s *PostgresProgressStore) getOne(
	ctx context.Context,
	op, query string,
	userID, cardID int64,
) (*domain.ProgressRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		rec          domain.ProgressRecord
		status       string
		lastReviewed sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, userID, cardID).Scan(
		&rec.UserID,
		&rec.CardID,
		&status,
		&rec.CorrectStreak,
		&rec.WrongStreak,
		&lastReviewed,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("progress record not found",
				slog.Int64("user_id", userID),
				slog.Int64("card_id", cardID))
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get progress record",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		return nil, store.NewStoreError("progress", op, "failed to get progress record", MapError(err))
	}

	rec.Status = domain.ProgressStatus(status)
	if lastReviewed.Valid {
		t := lastReviewed.Time.UTC()
		rec.LastReviewedAt = &t
	}
	return &rec, nil
}

// Update implements store.ProgressStore.Update
func (s *PostgresProgressStore) Update(ctx context.Context, rec *domain.ProgressRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rec.Validate(); err != nil {
		log.Warn("progress validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", rec.UserID),
			slog.Int64("card_id", rec.CardID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE progress
		SET status = $1, correct_streak = $2, wrong_streak = $3, last_reviewed_at = $4
		WHERE user_id = $5 AND card_id = $6
	`

	var lastReviewed sql.NullTime
	if rec.LastReviewedAt != nil {
		lastReviewed = sql.NullTime{Time: rec.LastReviewedAt.UTC(), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query,
		string(rec.Status),
		rec.CorrectStreak,
		rec.WrongStreak,
		lastReviewed,
		rec.UserID,
		rec.CardID,
	)
	if err != nil {
		log.Error("failed to update progress record",
			slog.String("error", err.Error()),
			slog.Int64("user_id", rec.UserID),
			slog.Int64("card_id", rec.CardID))
		return store.NewStoreError("progress", "update", "failed to update progress record", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrProgressNotFound); err != nil {
		return err
	}

	log.Debug("progress record updated",
		slog.Int64("user_id", rec.UserID),
		slog.Int64("card_id", rec.CardID),
		slog.String("status", string(rec.Status)),
		slog.Int("correct_streak", rec.CorrectStreak))
	return nil
}

// DeleteForDeck implements store.ProgressStore.DeleteForDeck
func (s *PostgresProgressStore) DeleteForDeck(ctx context.Context, userID, deckID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM progress p
		USING cards c
		WHERE p.card_id = c.id AND c.deck_id = $1 AND p.user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, deckID, userID)
	if err != nil {
		log.Error("failed to delete deck progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return 0, store.NewStoreError("progress", "delete", "failed to delete deck progress", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("progress", "delete", "failed to get rows affected", err)
	}

	log.Info("deck progress deleted",
		slog.Int64("user_id", userID),
		slog.Int64("deck_id", deckID),
		slog.Int64("records", n))
	return n, nil
}

// ListDeckCandidates implements store.ProgressStore.ListDeckCandidates
func (s *PostgresProgressStore) ListDeckCandidates(
	ctx context.Context,
	userID, deckID int64,
) ([]study.Candidate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, COALESCE(p.status, 'new'), p.last_reviewed_at
		FROM cards c
		LEFT JOIN progress p ON p.card_id = c.id AND p.user_id = $1
		WHERE c.deck_id = $2
		ORDER BY c.id
	`
	rows, err := s.db.QueryContext(ctx, query, userID, deckID)
	if err != nil {
		log.Error("failed to list deck candidates",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return nil, store.NewStoreError("progress", "list_candidates", "failed to list deck candidates", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	candidates := make([]study.Candidate, 0)
	for rows.Next() {
		var (
			c            study.Candidate
			status       string
			lastReviewed sql.NullTime
		)
		if err := rows.Scan(&c.CardID, &status, &lastReviewed); err != nil {
			return nil, store.NewStoreError("progress", "list_candidates", "failed to scan candidate", err)
		}
		c.Status = domain.ProgressStatus(status)
		if lastReviewed.Valid {
			t := lastReviewed.Time.UTC()
			c.LastReviewedAt = &t
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("progress", "list_candidates", "failed to iterate candidates", err)
	}

	return candidates, nil
}

// CountDeckProgress implements store.ProgressStore.CountDeckProgress
func (s *PostgresProgressStore) CountDeckProgress(
	ctx context.Context,
	userID, deckID int64,
) (*domain.DeckProgressSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(c.id),
			COUNT(*) FILTER (WHERE p.status = 'known'),
			COUNT(*) FILTER (WHERE p.status = 'learning'),
			COUNT(*) FILTER (WHERE p.status IS NULL OR p.status = 'new')
		FROM cards c
		LEFT JOIN progress p ON p.card_id = c.id AND p.user_id = $1
		WHERE c.deck_id = $2
	`
	var total, known, learning, fresh int
	if err := s.db.QueryRowContext(ctx, query, userID, deckID).Scan(&total, &known, &learning, &fresh); err != nil {
		log.Error("failed to count deck progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return nil, store.NewStoreError("progress", "count_deck", "failed to count deck progress", MapError(err))
	}

	return domain.NewDeckProgressSummary(deckID, total, known, learning, fresh), nil
}

// UserStats implements store.ProgressStore.UserStats
func (s *PostgresProgressStore) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(DISTINCT card_id),
			COUNT(*) FILTER (WHERE status = 'known'),
			COUNT(*) FILTER (WHERE status = 'learning')
		FROM progress
		WHERE user_id = $1
	`
	var stats domain.UserStats
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalStudied,
		&stats.TotalKnown,
		&stats.TotalLearning,
	); err != nil {
		log.Error("failed to compute user stats",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, store.NewStoreError("progress", "user_stats", "failed to compute user stats", MapError(err))
	}

	return &stats, nil
}

// ProgressByDecks implements store.ProgressStore.ProgressByDecks
func (s *PostgresProgressStore) ProgressByDecks(ctx context.Context, userID int64) ([]domain.DeckProgressRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			d.id,
			d.title,
			cl.name,
			COUNT(c.id),
			COUNT(p.id) FILTER (WHERE p.status = 'known'),
			COUNT(p.id) FILTER (WHERE p.status = 'learning')
		FROM class_members cm
		JOIN classes cl ON cl.id = cm.class_id
		JOIN decks d ON d.class_id = cl.id
		LEFT JOIN cards c ON c.deck_id = d.id
		LEFT JOIN progress p ON p.card_id = c.id AND p.user_id = $1
		WHERE cm.user_id = $1
		GROUP BY d.id, d.title, cl.name
		ORDER BY cl.name, d.title, d.id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list progress by decks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, store.NewStoreError("progress", "by_decks", "failed to list progress by decks", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	result := make([]domain.DeckProgressRow, 0)
	for rows.Next() {
		var row domain.DeckProgressRow
		if err := rows.Scan(
			&row.DeckID,
			&row.DeckTitle,
			&row.ClassName,
			&row.TotalCards,
			&row.KnownCards,
			&row.LearningCards,
		); err != nil {
			return nil, store.NewStoreError("progress", "by_decks", "failed to scan row", err)
		}
		row.ProgressPercent = domain.ProgressPercent(row.KnownCards, row.TotalCards)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("progress", "by_decks", "failed to iterate rows", err)
	}

	return result, nil
}
