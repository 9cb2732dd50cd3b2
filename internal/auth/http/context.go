// Package http provides the authentication gate, rate limiting and the
// sign-up, login and logout handlers.
package http

import (
	"context"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified claims in the context.
// This is called by AuthenticationMiddleware after successful token verification.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified claims from the context.
// Returns (claims, true) if present, or (nil, false) if the request was not authenticated.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok && claims != nil
}
