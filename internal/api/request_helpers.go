package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/slotocki/flashcards/internal/api/shared"
	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/platform/logger"
)

// parseID parses a positive integer identifier.
func parseID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, domain.NewValidationError(name, "is required", domain.ErrValidation)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	return parseID(paramName, chi.URLParam(r, paramName))
}

// getQueryID extracts a positive integer ID from the query string.
func getQueryID(r *http.Request, paramName string) (int64, error) {
	return parseID(paramName, r.URL.Query().Get(paramName))
}

// requirePrincipal returns the authenticated principal or writes a 401.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Warn("principal not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return domain.Principal{}, false
	}
	return principal, true
}

// handlePrincipalAndID is a composite helper that extracts the principal and
// an ID read by extract. It writes an error response if either fails.
func handlePrincipalAndID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	extract func(*http.Request, string) (int64, error),
) (domain.Principal, int64, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return domain.Principal{}, 0, false
	}

	id, err := extract(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Debug("invalid "+paramName, slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return domain.Principal{}, 0, false
	}
	return principal, id, true
}
