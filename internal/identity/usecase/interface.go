// Package usecase defines the credential store: registration, password
// verification and the stored live-token pointer of each identity.
package usecase

import (
	"context"

	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// IdentityRepository defines persistence operations for identities.
// Implementations must support transaction-aware operations via context propagation.
type IdentityRepository interface {
	// Create stores a new identity and sets its ID. Returns ErrIdentityAlreadyExists
	// when the username is taken.
	Create(ctx context.Context, identity *identityDomain.Identity) error

	// GetByID retrieves an identity by ID. Returns ErrIdentityNotFound if not found.
	GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error)

	// GetByUsername retrieves an identity by username. Returns ErrIdentityNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*identityDomain.Identity, error)

	// UpdateToken overwrites the stored token; nil clears it.
	UpdateToken(ctx context.Context, id int64, token *string) error
}

// CredentialUseCase manages identities and their credentials.
type CredentialUseCase interface {
	// Create registers a new identity, storing only a salted hash of rawPassword.
	// Returns ErrIdentityAlreadyExists if the username is already registered;
	// nothing is persisted in that case.
	Create(ctx context.Context, username, rawPassword string) (*identityDomain.Identity, error)

	// Verify checks a username/password pair. Unknown usernames and wrong passwords
	// both return ErrInvalidCredentials.
	Verify(ctx context.Context, username, rawPassword string) (*identityDomain.Identity, error)

	// SetToken stores token as the identity's live token, replacing any previous one.
	SetToken(ctx context.Context, identityID int64, token string) error

	// ClearToken removes the identity's stored token.
	ClearToken(ctx context.Context, identityID int64) error

	// Get retrieves an identity by ID. Returns ErrIdentityNotFound if not found.
	Get(ctx context.Context, identityID int64) (*identityDomain.Identity, error)
}
