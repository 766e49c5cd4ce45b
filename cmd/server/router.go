package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/slotocki/flashcards/internal/api"
	apiMiddleware "github.com/slotocki/flashcards/internal/api/middleware"
	"github.com/slotocki/flashcards/internal/api/shared"
)

// pinger is the part of *sql.DB the health check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier, app.logger)
	studyHandler := api.NewStudyHandler(app.progressService, app.authorizer, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	api.RegisterAuthRoutes(r, authHandler)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		api.RegisterStudyRoutes(r, studyHandler)
	})

	r.Get("/health", healthHandler(app.db))

	return newCORS(app.config.Server.CORSAllowedOrigins).Handler(r)
}

// newCORS builds the CORS policy. An empty origin list allows any origin
// without credentials.
func newCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept", "Origin"},
		AllowCredentials: len(allowedOrigins) > 0,
		MaxAge:           86400,
	})
}

// healthHandler reports 200 when the database answers a ping and 503 otherwise.
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
