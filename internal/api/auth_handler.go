package api

import (
	"log/slog"
	"net/http"

	"github.com/ejolly/lingolog/internal/api/shared"
	"github.com/ejolly/lingolog/internal/config"
	"github.com/ejolly/lingolog/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
// This is a single-user system: there is no registration, only a password
// login against the configured owner credential.
type AuthHandler struct {
	authCfg          config.AuthConfig
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	authCfg config.AuthConfig,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		authCfg:          authCfg,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.passwordVerifier.Compare(h.authCfg.PasswordHash, req.Password); err != nil {
		// Repeated failures are an operational signal on a single-user box
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid credentials",
			auth.ErrInvalidCredentials, shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{Token: token})
}
