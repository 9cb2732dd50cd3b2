package usecase

import (
	"context"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authService "github.com/allisson/notes/internal/auth/service"
	"github.com/allisson/notes/internal/errors"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
	identityUseCase "github.com/allisson/notes/internal/identity/usecase"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	credentials        identityUseCase.CredentialUseCase
	tokenService       authService.TokenService
	requireStoredToken bool
}

// SignUp registers a new identity.
func (a *authUseCase) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*identityDomain.Identity, error) {
	return a.credentials.Create(ctx, input.Username, input.Password)
}

// Login verifies credentials, issues a token and stores it.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	identity, err := a.credentials.Verify(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	if !identity.IsActive {
		return nil, identityDomain.ErrIdentityInactive
	}

	token, expiresAt, err := a.tokenService.Issue(identity.ID)
	if err != nil {
		return nil, err
	}

	if err := a.credentials.SetToken(ctx, identity.ID, token); err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     token,
		TokenType: authDomain.TokenType,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate verifies the token. With the stored-token check enabled the token
// must also be the identity's current live token and the identity must be active.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Claims, error) {
	claims, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	if !a.requireStoredToken {
		return claims, nil
	}

	identity, err := a.credentials.Get(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, identityDomain.ErrIdentityNotFound) {
			return nil, authDomain.ErrInvalidToken
		}
		return nil, err
	}

	if !identity.IsActive || !identity.HasToken(token) {
		return nil, authDomain.ErrInvalidToken
	}

	return claims, nil
}

// Logout clears the stored token.
func (a *authUseCase) Logout(ctx context.Context, identityID int64) error {
	return a.credentials.ClearToken(ctx, identityID)
}

// NewAuthUseCase creates a new AuthUseCase. When requireStoredToken is true,
// Authenticate also checks the presented token against the stored one.
func NewAuthUseCase(
	credentials identityUseCase.CredentialUseCase,
	tokenService authService.TokenService,
	requireStoredToken bool,
) AuthUseCase {
	return &authUseCase{
		credentials:        credentials,
		tokenService:       tokenService,
		requireStoredToken: requireStoredToken,
	}
}
