package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
	"github.com/allisson/notes/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *authUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// SignUp records metrics for identity registration.
func (a *authUseCaseWithMetrics) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*identityDomain.Identity, error) {
	start := time.Now()
	identity, err := a.next.SignUp(ctx, input)
	a.record(ctx, "signup", start, err)
	return identity, err
}

// Login records metrics for login attempts.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)
	a.record(ctx, "login", start, err)
	return output, err
}

// Authenticate records metrics for token verification.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*authDomain.Claims, error) {
	start := time.Now()
	claims, err := a.next.Authenticate(ctx, token)
	a.record(ctx, "authenticate", start, err)
	return claims, err
}

// Logout records metrics for logout.
func (a *authUseCaseWithMetrics) Logout(ctx context.Context, identityID int64) error {
	start := time.Now()
	err := a.next.Logout(ctx, identityID)
	a.record(ctx, "logout", start, err)
	return err
}
