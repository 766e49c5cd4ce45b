package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/slotocki/flashcards/internal/api/shared"
	"github.com/slotocki/flashcards/internal/domain"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/redact"
	"github.com/slotocki/flashcards/internal/service/auth"
	"github.com/slotocki/flashcards/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	timeFunc         func() time.Time
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if jwtService == nil {
		panic("jwtService cannot be nil")
	}
	if passwordVerifier == nil {
		panic("passwordVerifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		timeFunc:         time.Now,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("password mismatch", slog.Int64("user_id", user.ID))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	principal := domain.Principal{UserID: user.ID, Role: user.Role}
	access, refresh, expiresAt, ok := h.issueTokens(w, r, principal)
	if !ok {
		return
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:       user.ID,
		Role:         user.Role,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
}

// RefreshToken handles POST /api/auth/refresh. The user is reloaded so a
// changed role or a deleted account takes effect on the next refresh.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RefreshTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		log.Debug("refresh token rejected", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, auth.ErrInvalidRefreshToken, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	access, refresh, expiresAt, ok := h.issueTokens(w, r, domain.Principal{UserID: user.ID, Role: user.Role})
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
}

// issueTokens generates an access/refresh pair and writes a 500 on failure.
func (h *AuthHandler) issueTokens(
	w http.ResponseWriter,
	r *http.Request,
	principal domain.Principal,
) (string, string, string, bool) {
	access, err := h.jwtService.GenerateToken(r.Context(), principal)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return "", "", "", false
	}

	refresh, err := h.jwtService.GenerateRefreshToken(r.Context(), principal)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate refresh token", err)
		return "", "", "", false
	}

	expiresAt := h.timeFunc().Add(h.jwtService.AccessTokenLifetime()).UTC().Format(time.RFC3339)
	return access, refresh, expiresAt, true
}
