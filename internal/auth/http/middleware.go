package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	"github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
)

// AuthenticationMiddleware guards protected routes with a Bearer token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the token from the Authorization header (literal "Bearer " prefix, case-sensitive)
// 2. Verifies it via authUseCase.Authenticate()
// 3. Stores the verified claims in the request context for GetClaims()
//
// Error handling:
//   - Missing header, other scheme or casing, or empty token → 403 "missing or malformed credential"
//   - Bad signature, malformed or expired token → 403 "invalid or expired token"
//   - Storage failures during the optional stored-token check → 500
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(authUseCase, logger))
//	router.GET("/protected", func(c *gin.Context) {
//	    claims, _ := GetClaims(c.Request.Context())
//	    // claims.SubjectID identifies the caller
//	})
func AuthenticationMiddleware(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrMissingCredential, logger)
			c.Abort()
			return
		}

		claims, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			if errors.Is(err, errors.ErrForbidden) || errors.Is(err, errors.ErrUnauthorized) {
				err = authDomain.ErrInvalidToken
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.Int64("subject_id", claims.SubjectID))

		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
// The scheme must match exactly; "bearer" and "BEARER" are rejected.
func bearerToken(header string) (string, bool) {
	const bearerPrefix = "Bearer "
	rest, found := strings.CutPrefix(header, bearerPrefix)
	if !found {
		return "", false
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}
	return token, true
}
