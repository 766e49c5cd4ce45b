package middleware

import (
	"log/slog"
	"net/http"

	"github.com/slotocki/flashcards/internal/api/shared"
	"github.com/slotocki/flashcards/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context along with a
// request-scoped logger carrying it. Apply it early so every later handler
// logs with the same trace ID that error responses return to the client.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
