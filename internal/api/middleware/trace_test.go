package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slotocki/flashcards/internal/api/shared"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		log := logger.FromContext(r.Context())
		log.Info("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, traceID)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, traceID, entry["trace_id"])
	}
}
