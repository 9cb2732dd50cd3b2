package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/auth/http/dto"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	"github.com/allisson/notes/internal/httputil"
	customValidation "github.com/allisson/notes/internal/validation"
)

// AuthHandler handles HTTP requests for sign-up, login and logout.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// SignUpHandler registers a new identity.
// POST /api/v1/user/create - No authentication required.
// Returns 201 Created with the identity, 409 Conflict for a taken username.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req dto.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	identity, err := h.authUseCase.SignUp(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIdentityToResponse(identity))
}

// LoginHandler verifies credentials and issues a token.
// POST /api/v1/refresh-jwt - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, 401 Unauthorized for bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}

// LogoutHandler clears the caller's stored token.
// POST /api/v1/user/logout - Requires authentication.
// Returns 204 No Content.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingCredential, h.logger)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), claims.SubjectID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
