package usecase

import (
	"context"
	"time"

	"github.com/allisson/notes/internal/database"
	"github.com/allisson/notes/internal/errors"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
	identityService "github.com/allisson/notes/internal/identity/service"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	txManager       database.TxManager
	identityRepo    IdentityRepository
	passwordService identityService.PasswordService
}

// Create hashes the password and persists a new active identity inside a transaction.
func (c *credentialUseCase) Create(
	ctx context.Context,
	username, rawPassword string,
) (*identityDomain.Identity, error) {
	hashed, err := c.passwordService.HashPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	identity := &identityDomain.Identity{
		Username:  username,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = c.txManager.WithTx(ctx, func(ctx context.Context) error {
		return c.identityRepo.Create(ctx, identity)
	})
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// Verify looks up the identity and compares the password against the stored hash.
// An unknown username still pays for one hash comparison.
func (c *credentialUseCase) Verify(
	ctx context.Context,
	username, rawPassword string,
) (*identityDomain.Identity, error) {
	identity, err := c.identityRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, identityDomain.ErrIdentityNotFound) {
			c.passwordService.CompareDummy(rawPassword)
			return nil, identityDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !c.passwordService.ComparePassword(rawPassword, identity.Password) {
		return nil, identityDomain.ErrInvalidCredentials
	}

	return identity, nil
}

// SetToken replaces the stored token. Concurrent calls are serialized by the
// database; the last committed write wins.
func (c *credentialUseCase) SetToken(ctx context.Context, identityID int64, token string) error {
	return c.updateToken(ctx, identityID, &token)
}

// ClearToken removes the stored token.
func (c *credentialUseCase) ClearToken(ctx context.Context, identityID int64) error {
	return c.updateToken(ctx, identityID, nil)
}

func (c *credentialUseCase) updateToken(ctx context.Context, identityID int64, token *string) error {
	return c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := c.identityRepo.GetByID(ctx, identityID); err != nil {
			return err
		}
		return c.identityRepo.UpdateToken(ctx, identityID, token)
	})
}

// Get retrieves an identity by ID.
func (c *credentialUseCase) Get(ctx context.Context, identityID int64) (*identityDomain.Identity, error) {
	return c.identityRepo.GetByID(ctx, identityID)
}

// NewCredentialUseCase creates a new CredentialUseCase with the provided dependencies.
func NewCredentialUseCase(
	txManager database.TxManager,
	identityRepo IdentityRepository,
	passwordService identityService.PasswordService,
) CredentialUseCase {
	return &credentialUseCase{
		txManager:       txManager,
		identityRepo:    identityRepo,
		passwordService: passwordService,
	}
}
