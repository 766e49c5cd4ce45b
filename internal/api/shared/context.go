// Package shared holds request context helpers and response writers used by
// both the api handlers and the middleware.
package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/slotocki/flashcards/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// PrincipalContextKey is the context key for the authenticated principal
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, p)
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalContextKey).(domain.Principal)
	if !ok || p.UserID <= 0 {
		return domain.Principal{}, false
	}
	return p, true
}
