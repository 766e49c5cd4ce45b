package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/slotocki/flashcards/internal/api/shared"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/redact"
	"github.com/slotocki/flashcards/internal/service/access"
	"github.com/slotocki/flashcards/internal/service/progress"
)

// Messages returned to learners.
const (
	msgDeckCompleted  = "No cards left to study in this deck"
	msgAnswerKnow     = "Great! Answer saved."
	msgAnswerDontKnow = "No worries, try again!"
	msgProgressReset  = "Progress has been reset"
)

// StudyHandler serves the study and progress endpoints.
type StudyHandler struct {
	progress progress.Service
	access   access.Authorizer
	logger   *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(
	progressService progress.Service,
	authorizer access.Authorizer,
	logger *slog.Logger,
) *StudyHandler {
	if progressService == nil {
		panic("progressService cannot be nil")
	}
	if authorizer == nil {
		panic("authorizer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StudyHandler{
		progress: progressService,
		access:   authorizer,
		logger:   logger.With(slog.String("component", "study_handler")),
	}
}

// NextCard handles GET /api/study/next?deckId=N.
func (h *StudyHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, deckID, ok := handlePrincipalAndID(w, r, "deckId", getQueryID)
	if !ok {
		return
	}

	deck, err := h.access.AuthorizeDeck(r.Context(), principal, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load deck")
		return
	}

	next, err := h.progress.NextCard(r.Context(), principal.UserID, deckID)
	if errors.Is(err, progress.ErrDeckCompleted) {
		log.Debug("deck completed", slog.Int64("deck_id", deckID))
		shared.RespondWithJSON(w, r, http.StatusOK, NextCardResponse{
			Completed: true,
			DeckTitle: deck.Title,
			Message:   msgDeckCompleted,
		})
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get next card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NextCardResponse{
		Card:      next.Card,
		Progress:  next.Progress,
		DeckTitle: deck.Title,
	})
}

// RecordAnswer handles POST /api/progress/answer.
func (h *StudyHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if _, err := h.access.AuthorizeCard(r.Context(), principal, req.CardID); err != nil {
		HandleAPIError(w, r, err, "Failed to load card")
		return
	}

	rec, err := h.progress.RecordAnswer(r.Context(), principal.UserID, req.CardID, req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record answer")
		return
	}

	message := msgAnswerDontKnow
	if req.Answer == "know" {
		message = msgAnswerKnow
	}
	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{Message: message, Progress: rec})
}

// DeckProgress handles GET /api/progress/deck/{deckId}.
func (h *StudyHandler) DeckProgress(w http.ResponseWriter, r *http.Request) {
	principal, deckID, ok := handlePrincipalAndID(w, r, "deckId", getPathID)
	if !ok {
		return
	}

	deck, err := h.access.AuthorizeDeck(r.Context(), principal, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load deck")
		return
	}

	summary, err := h.progress.DeckProgress(r.Context(), principal.UserID, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load deck progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeckProgressResponse{
		DeckTitle:           deck.Title,
		DeckProgressSummary: summary,
	})
}

// Stats handles GET /api/progress/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	overall, err := h.progress.UserStats(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load statistics")
		return
	}

	byDeck, err := h.progress.ProgressByDecks(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load statistics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{Overall: overall, ByDeck: byDeck})
}

// ResetDeckProgress handles POST /api/progress/reset/{deckId}.
func (h *StudyHandler) ResetDeckProgress(w http.ResponseWriter, r *http.Request) {
	principal, deckID, ok := handlePrincipalAndID(w, r, "deckId", getPathID)
	if !ok {
		return
	}

	if _, err := h.access.AuthorizeDeck(r.Context(), principal, deckID); err != nil {
		HandleAPIError(w, r, err, "Failed to load deck")
		return
	}

	if err := h.progress.ResetDeckProgress(r.Context(), principal.UserID, deckID); err != nil {
		HandleAPIError(w, r, err, "Failed to reset progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: msgProgressReset})
}
