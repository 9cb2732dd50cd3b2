package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// mockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type mockCredentialUseCase struct {
	mock.Mock
}

func (m *mockCredentialUseCase) Create(
	ctx context.Context,
	username, rawPassword string,
) (*identityDomain.Identity, error) {
	args := m.Called(ctx, username, rawPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

func (m *mockCredentialUseCase) Verify(
	ctx context.Context,
	username, rawPassword string,
) (*identityDomain.Identity, error) {
	args := m.Called(ctx, username, rawPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

func (m *mockCredentialUseCase) SetToken(ctx context.Context, identityID int64, token string) error {
	args := m.Called(ctx, identityID, token)
	return args.Error(0)
}

func (m *mockCredentialUseCase) ClearToken(ctx context.Context, identityID int64) error {
	args := m.Called(ctx, identityID)
	return args.Error(0)
}

func (m *mockCredentialUseCase) Get(ctx context.Context, identityID int64) (*identityDomain.Identity, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityDomain.Identity), args.Error(1)
}

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subjectID int64) (string, time.Time, error) {
	args := m.Called(subjectID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(token string) (*authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

func TestAuthUseCase_SignUp(t *testing.T) {
	ctx := context.Background()
	credentials := &mockCredentialUseCase{}
	identity := &identityDomain.Identity{ID: 1, Username: "alice", IsActive: true}

	credentials.On("Create", ctx, "alice", "secret1").Return(identity, nil).Once()

	uc := NewAuthUseCase(credentials, &mockTokenService{}, false)
	result, err := uc.SignUp(ctx, &authDomain.SignUpInput{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, identity, result)
	credentials.AssertExpectations(t)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Unix(1_700_086_400, 0).UTC()
	input := &authDomain.LoginInput{Username: "alice", Password: "secret1"}

	t.Run("Success", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		credentials.On("Verify", ctx, "alice", "secret1").
			Return(&identityDomain.Identity{ID: 1, Username: "alice", IsActive: true}, nil).
			Once()
		tokens.On("Issue", int64(1)).Return("tok", expiresAt, nil).Once()
		credentials.On("SetToken", ctx, int64(1), "tok").Return(nil).Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		output, err := uc.Login(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "tok", output.Token)
		assert.Equal(t, "bearer", output.TokenType)
		assert.Equal(t, expiresAt, output.ExpiresAt)
		credentials.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		credentials.On("Verify", ctx, "alice", "secret1").Return(nil, identityDomain.ErrInvalidCredentials).Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		output, err := uc.Login(ctx, input)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, identityDomain.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("Error_InactiveIdentity", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		credentials.On("Verify", ctx, "alice", "secret1").
			Return(&identityDomain.Identity{ID: 1, Username: "alice", IsActive: false}, nil).
			Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		_, err := uc.Login(ctx, input)

		assert.ErrorIs(t, err, identityDomain.ErrIdentityInactive)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("Error_IssueFails", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		expectedErr := errors.New("sign failure")

		credentials.On("Verify", ctx, "alice", "secret1").
			Return(&identityDomain.Identity{ID: 1, IsActive: true}, nil).
			Once()
		tokens.On("Issue", int64(1)).Return("", time.Time{}, expectedErr).Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		_, err := uc.Login(ctx, input)

		assert.Equal(t, expectedErr, err)
		credentials.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_SetTokenFails", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		expectedErr := errors.New("db down")

		credentials.On("Verify", ctx, "alice", "secret1").
			Return(&identityDomain.Identity{ID: 1, IsActive: true}, nil).
			Once()
		tokens.On("Issue", int64(1)).Return("tok", expiresAt, nil).Once()
		credentials.On("SetToken", ctx, int64(1), "tok").Return(expectedErr).Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		output, err := uc.Login(ctx, input)

		assert.Nil(t, output)
		assert.Equal(t, expectedErr, err)
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	claims := &authDomain.Claims{SubjectID: 1, ExpiresAt: time.Now().Add(time.Hour)}
	token := "tok"

	t.Run("Success_SignatureOnly", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		tokens.On("Verify", token).Return(claims, nil).Once()

		uc := NewAuthUseCase(credentials, tokens, false)
		result, err := uc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, claims, result)
		credentials.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidToken", func(t *testing.T) {
		tokens := &mockTokenService{}
		tokens.On("Verify", token).Return(nil, authDomain.ErrInvalidToken).Once()

		uc := NewAuthUseCase(&mockCredentialUseCase{}, tokens, false)
		result, err := uc.Authenticate(ctx, token)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Success_StoredTokenMatches", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		stored := token

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).
			Return(&identityDomain.Identity{ID: 1, IsActive: true, Token: &stored}, nil).
			Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		result, err := uc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, claims, result)
	})

	t.Run("Error_StoredTokenCleared", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).
			Return(&identityDomain.Identity{ID: 1, IsActive: true}, nil).
			Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		_, err := uc.Authenticate(ctx, token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_StoredTokenReplaced", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		newer := "newer-token"

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).
			Return(&identityDomain.Identity{ID: 1, IsActive: true, Token: &newer}, nil).
			Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		_, err := uc.Authenticate(ctx, token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_IdentityInactive", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		stored := token

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).
			Return(&identityDomain.Identity{ID: 1, IsActive: false, Token: &stored}, nil).
			Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		_, err := uc.Authenticate(ctx, token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_IdentityDeleted", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).Return(nil, identityDomain.ErrIdentityNotFound).Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		_, err := uc.Authenticate(ctx, token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_StorageFailurePropagates", func(t *testing.T) {
		credentials := &mockCredentialUseCase{}
		tokens := &mockTokenService{}
		expectedErr := errors.New("db down")

		tokens.On("Verify", token).Return(claims, nil).Once()
		credentials.On("Get", ctx, int64(1)).Return(nil, expectedErr).Once()

		uc := NewAuthUseCase(credentials, tokens, true)
		_, err := uc.Authenticate(ctx, token)

		assert.Equal(t, expectedErr, err)
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	credentials := &mockCredentialUseCase{}

	credentials.On("ClearToken", ctx, int64(1)).Return(nil).Once()

	uc := NewAuthUseCase(credentials, &mockTokenService{}, false)
	require.NoError(t, uc.Logout(ctx, 1))
	credentials.AssertExpectations(t)
}
