package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	RespondWithJSON(rec, req, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "Invalid deck ID")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid deck ID", body.Error)
	assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
}

func TestRespondWithErrorAndLog_HidesDetails(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/progress/answer", nil)
	rec := httptest.NewRecorder()

	err := errors.New("pq: connection to postgres://app:secret@db failed")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Failed to record answer", err,
		WithElevatedLogLevel())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Contains(t, rec.Body.String(), "Failed to record answer")
}
