package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/auth/usecase"
	usecaseMocks "github.com/allisson/notes/internal/auth/usecase/mocks"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "auth", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "auth", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("SignUp success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := &authDomain.SignUpInput{Username: "alice", Password: "secret1"}
		identity := &identityDomain.Identity{ID: 1, Username: "alice"}

		mockNext.On("SignUp", ctx, input).Return(identity, nil).Once()
		expectMetrics(mockMetrics, ctx, "signup", "success")

		res, err := uc.SignUp(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, identity, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := &authDomain.LoginInput{Username: "alice", Password: "wrong"}

		mockNext.On("Login", ctx, input).Return(nil, identityDomain.ErrInvalidCredentials).Once()
		expectMetrics(mockMetrics, ctx, "login", "error")

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, identityDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		claims := &authDomain.Claims{SubjectID: 1, ExpiresAt: time.Now().Add(time.Hour)}

		mockNext.On("Authenticate", ctx, "tok").Return(claims, nil).Once()
		expectMetrics(mockMetrics, ctx, "authenticate", "success")

		res, err := uc.Authenticate(ctx, "tok")
		assert.NoError(t, err)
		assert.Equal(t, claims, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Logout error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("error")
		mockNext.On("Logout", ctx, int64(1)).Return(expectedErr).Once()
		expectMetrics(mockMetrics, ctx, "logout", "error")

		err := uc.Logout(ctx, 1)
		assert.Equal(t, expectedErr, err)
		mockMetrics.AssertExpectations(t)
	})
}
