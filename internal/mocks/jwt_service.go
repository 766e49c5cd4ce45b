package mocks

import (
	"context"
	"time"

	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, principal domain.Principal) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// GenerateRefreshTokenFn allows test cases to mock the GenerateRefreshToken behavior
	GenerateRefreshTokenFn func(ctx context.Context, principal domain.Principal) (string, error)

	// ValidateRefreshTokenFn allows test cases to mock the ValidateRefreshToken behavior
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token        string
	RefreshToken string
	Err          error
	ValidateErr  error
	Claims       *auth.Claims
	Lifetime     time.Duration
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, principal domain.Principal) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, principal)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// GenerateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, principal domain.Principal) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, principal)
	}
	return m.RefreshToken, m.Err
}

// ValidateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// AccessTokenLifetime implements the auth.JWTService interface
func (m *MockJWTService) AccessTokenLifetime() time.Duration {
	if m.Lifetime == 0 {
		return time.Hour
	}
	return m.Lifetime
}
