// Package usecase implements sign-up, login, logout and per-request
// authentication on top of the credential store and the token service.
package usecase

import (
	"context"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// AuthUseCase defines the authentication flows exposed over HTTP.
type AuthUseCase interface {
	// SignUp registers a new identity. Returns ErrIdentityAlreadyExists for a taken username.
	SignUp(ctx context.Context, input *authDomain.SignUpInput) (*identityDomain.Identity, error)

	// Login verifies the credentials, issues a token and records it as the identity's
	// live token, replacing any previous one. Returns ErrInvalidCredentials for an
	// unknown username or wrong password and ErrIdentityInactive for a deactivated identity.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate verifies a presented token and returns its claims.
	// Returns ErrInvalidToken on any verification failure.
	Authenticate(ctx context.Context, token string) (*authDomain.Claims, error)

	// Logout clears the identity's stored token. Tokens already handed out stay
	// valid until they expire unless the stored-token check is enabled.
	Logout(ctx context.Context, identityID int64) error
}
