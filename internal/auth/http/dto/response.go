package dto

import (
	"time"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// IdentityResponse represents a registered identity in API responses.
// The password hash and stored token are never included.
type IdentityResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// MapIdentityToResponse converts a domain identity to an API response.
func MapIdentityToResponse(identity *identityDomain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		CreatedAt: identity.CreatedAt,
	}
}

// LoginResponse contains an issued token.
type LoginResponse struct {
	Token     string    `json:"token"` //nolint:gosec // returned to its owner
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapLoginOutputToResponse converts a login result to an API response.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		TokenType: output.TokenType,
		ExpiresAt: output.ExpiresAt,
	}
}
