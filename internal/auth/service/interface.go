// Package service provides the token service that issues and verifies signed
// bearer tokens, and resolution of the process-wide signing secret.
package service

import (
	"time"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// TokenService issues and verifies signed, expiring bearer tokens.
// Implementations are immutable after construction and safe for concurrent use.
type TokenService interface {
	// Issue creates a token for subjectID that expires after the configured TTL.
	Issue(subjectID int64) (token string, expiresAt time.Time, err error)

	// Verify checks the signature, structure and expiry of token. Every failure is
	// reported as ErrInvalidToken.
	Verify(token string) (*authDomain.Claims, error)
}
