package auth

import (
	"context"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the principal.
	GenerateToken(ctx context.Context, principal domain.Principal) (string, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the principal.
	// Refresh tokens have a longer lifetime and are used to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, principal domain.Principal) (string, error)

	// ValidateRefreshToken validates a refresh token and extracts its claims.
	// Returns ErrExpiredRefreshToken, ErrInvalidRefreshToken or ErrWrongTokenType on failure.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// AccessTokenLifetime reports how long a freshly issued access token is valid.
	AccessTokenLifetime() time.Duration
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Role is the user's role at the time the token was issued.
	Role domain.Role `json:"role,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Principal returns the identity the token was issued for.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{UserID: c.UserID, Role: c.Role}
}
