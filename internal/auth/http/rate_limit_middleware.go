package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/httputil"
)

// RateLimitMiddleware enforces per-identity rate limiting on authenticated requests.
//
// MUST be used after AuthenticationMiddleware (requires verified claims in context).
// Uses token bucket algorithm via golang.org/x/time/rate; each identity gets an
// independent limiter keyed by its subject ID. The cleanup goroutine stops when
// ctx is cancelled.
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[int64](ctx, rps, burst, 5*time.Minute)

	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no verified claims in context")
			httputil.HandleErrorGin(c, authDomain.ErrMissingCredential, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(claims.SubjectID)
		if !limiter.Allow() {
			seconds := retryAfter(limiter)

			logger.Debug("rate limit exceeded",
				slog.Int64("subject_id", claims.SubjectID),
				slog.Int("retry_after", seconds))

			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many requests. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
