package api

import "github.com/slotocki/flashcards/internal/domain"

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`

	// Role is the user's role, which decides which decks they may study
	Role domain.Role `json:"role"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// AnswerRequest defines the payload for recording an answer.
type AnswerRequest struct {
	CardID int64  `json:"card_id" validate:"required,gt=0"`
	Answer string `json:"answer"  validate:"required,oneof=know dont_know"`
}

// NextCardResponse is returned by the next-card endpoint. When the deck is
// completed Card is null, Completed is true and Message explains why.
type NextCardResponse struct {
	Card      *domain.Card           `json:"card"`
	Progress  *domain.ProgressRecord `json:"progress,omitempty"`
	DeckTitle string                 `json:"deck_title,omitempty"`
	Completed bool                   `json:"completed,omitempty"`
	Message   string                 `json:"message,omitempty"`
}

// AnswerResponse is returned after an answer has been recorded.
type AnswerResponse struct {
	Message  string                 `json:"message"`
	Progress *domain.ProgressRecord `json:"progress"`
}

// DeckProgressResponse is the learner's rollup for one deck.
type DeckProgressResponse struct {
	DeckTitle string `json:"deck_title"`
	*domain.DeckProgressSummary
}

// StatsResponse combines the learner's overall counts with the per-deck breakdown.
type StatsResponse struct {
	Overall *domain.UserStats        `json:"overall"`
	ByDeck  []domain.DeckProgressRow `json:"by_deck"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
