package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/slotocki/flashcards/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("deckId", "17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, raw := range []string{"0", "-3", "abc", "1.5", "99999999999999999999"} {
		_, err := parseID("deckId", raw)
		assert.ErrorIs(t, err, domain.ErrInvalidID, raw)
	}

	_, err = parseID("deckId", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetPathAndQueryID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/study/next?deckId=5", nil)
	id, err := getQueryID(req, "deckId")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deckId", "9")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	id, err = getPathID(req, "deckId")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestRequirePrincipal_Missing(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	_, ok := requirePrincipal(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
