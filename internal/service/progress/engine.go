package progress

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/domain/study"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*Engine)(nil)

// Engine implements Service on top of a card source and a progress store.
type Engine struct {
	cards      store.CardStore
	progress   store.ProgressStore
	rules      study.Service
	transactor store.Transactor
	now        func() time.Time
	logger     *slog.Logger
}

// NewEngine creates a new progress engine.
func NewEngine(
	cards store.CardStore,
	progress store.ProgressStore,
	rules study.Service,
	transactor store.Transactor,
	logger *slog.Logger,
) *Engine {
	return newEngine(cards, progress, rules, transactor, logger, func() time.Time {
		return time.Now().UTC()
	})
}

func newEngine(
	cards store.CardStore,
	progress store.ProgressStore,
	rules study.Service,
	transactor store.Transactor,
	logger *slog.Logger,
	now func() time.Time,
) *Engine {
	if cards == nil {
		panic("cards cannot be nil")
	}
	if progress == nil {
		panic("progress cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	if transactor == nil {
		panic("transactor cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		cards:      cards,
		progress:   progress,
		rules:      rules,
		transactor: transactor,
		now:        now,
		logger:     logger.With(slog.String("component", "progress_engine")),
	}
}

// NextCard implements Service.NextCard.
func (e *Engine) NextCard(ctx context.Context, userID, deckID int64) (*StudyCard, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	candidates, err := e.progress.ListDeckCandidates(ctx, userID, deckID)
	if err != nil {
		log.Error("failed to list deck candidates",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return nil, NewNextCardError("failed to list deck cards", err)
	}

	chosen, ok := study.SelectNext(candidates)
	if !ok {
		log.Debug("deck completed",
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID),
			slog.Int("cards", len(candidates)))
		return nil, ErrDeckCompleted
	}

	card, err := e.cards.GetByID(ctx, chosen.CardID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			// Deleted between listing and loading.
			return nil, ErrCardNotFound
		}
		return nil, NewNextCardError("failed to load card", err)
	}

	rec, err := e.progress.GetOrCreate(ctx, userID, card.ID, e.now())
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		log.Error("failed to get or create progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", card.ID))
		return nil, NewNextCardError("failed to initialize progress", err)
	}

	log.Debug("selected next card",
		slog.Int64("user_id", userID),
		slog.Int64("deck_id", deckID),
		slog.Int64("card_id", card.ID),
		slog.String("status", string(rec.Status)))
	return &StudyCard{Card: card, Progress: rec}, nil
}

// RecordAnswer implements Service.RecordAnswer.
func (e *Engine) RecordAnswer(
	ctx context.Context,
	userID, cardID int64,
	rawAnswer string,
) (*domain.ProgressRecord, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	answer, err := domain.ParseAnswer(rawAnswer)
	if err != nil {
		log.Debug("invalid answer",
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID),
			slog.String("answer", rawAnswer))
		return nil, ErrInvalidAnswer
	}

	if _, err := e.cards.GetByID(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, NewRecordAnswerError("failed to load card", err)
	}

	now := e.now()
	var updated *domain.ProgressRecord
	err = e.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		progress := e.progress.WithTx(tx)

		if _, err := progress.GetOrCreate(ctx, userID, cardID, now); err != nil {
			return err
		}

		current, err := progress.GetForUpdate(ctx, userID, cardID)
		if err != nil {
			return err
		}

		next, err := e.rules.ApplyAnswer(current, answer, now)
		if err != nil {
			return err
		}

		if err := progress.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		log.Error("failed to record answer",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		return nil, NewRecordAnswerError("failed to persist answer", err)
	}

	log.Debug("recorded answer",
		slog.Int64("user_id", userID),
		slog.Int64("card_id", cardID),
		slog.String("answer", string(answer)),
		slog.String("status", string(updated.Status)),
		slog.Int("correct_streak", updated.CorrectStreak),
		slog.Int("wrong_streak", updated.WrongStreak))
	return updated, nil
}

// DeckProgress implements Service.DeckProgress.
func (e *Engine) DeckProgress(
	ctx context.Context,
	userID, deckID int64,
) (*domain.DeckProgressSummary, error) {
	summary, err := e.progress.CountDeckProgress(ctx, userID, deckID)
	if err != nil {
		logger.FromContextOrDefault(ctx, e.logger).Error("failed to count deck progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return nil, NewDeckProgressError("failed to count deck progress", err)
	}
	return summary, nil
}

// UserStats implements Service.UserStats.
func (e *Engine) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	stats, err := e.progress.UserStats(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, e.logger).Error("failed to load user stats",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, NewUserStatsError("failed to load user stats", err)
	}
	return stats, nil
}

// ProgressByDecks implements Service.ProgressByDecks.
func (e *Engine) ProgressByDecks(ctx context.Context, userID int64) ([]domain.DeckProgressRow, error) {
	rows, err := e.progress.ProgressByDecks(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, e.logger).Error("failed to load progress by deck",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, NewUserStatsError("failed to load progress by deck", err)
	}
	return rows, nil
}

// ResetDeckProgress implements Service.ResetDeckProgress.
func (e *Engine) ResetDeckProgress(ctx context.Context, userID, deckID int64) error {
	log := logger.FromContextOrDefault(ctx, e.logger)

	removed, err := e.progress.DeleteForDeck(ctx, userID, deckID)
	if err != nil {
		log.Error("failed to reset deck progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("deck_id", deckID))
		return NewResetError("failed to delete progress", err)
	}

	log.Info("deck progress reset",
		slog.Int64("user_id", userID),
		slog.Int64("deck_id", deckID),
		slog.Int64("removed", removed))
	return nil
}
