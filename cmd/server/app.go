package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/slotocki/flashcards/internal/config"
	"github.com/slotocki/flashcards/internal/domain/study"
	"github.com/slotocki/flashcards/internal/platform/cache"
	"github.com/slotocki/flashcards/internal/platform/postgres"
	"github.com/slotocki/flashcards/internal/service/access"
	"github.com/slotocki/flashcards/internal/service/auth"
	"github.com/slotocki/flashcards/internal/service/progress"
	"github.com/slotocki/flashcards/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore     store.UserStore
	deckStore     store.DeckStore
	classStore    store.ClassStore
	cardStore     store.CardStore
	progressStore store.ProgressStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authorizer       access.Authorizer
	progressService  progress.Service
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.deckStore = postgres.NewPostgresDeckStore(db, logger)
	app.classStore = postgres.NewPostgresClassStore(db, logger)
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)

	cardCache, err := cache.NewCardCache(postgres.NewPostgresCardStore(db, logger), cfg.Study.CardCacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card cache: %w", err)
	}
	app.cardStore = cardCache

	rules := study.NewServiceWithParams(study.NewParams(study.ParamsConfig{
		KnownStreakThreshold: cfg.Study.KnownStreakThreshold,
	}))
	logger.Info("study rules configured", "known_streak_threshold", rules.KnownStreakThreshold())

	app.authorizer = access.NewPolicy(app.deckStore, app.classStore, app.cardStore, logger)
	app.progressService = progress.NewEngine(
		app.cardStore,
		app.progressStore,
		rules,
		store.NewDBTransactor(db),
		logger,
	)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
