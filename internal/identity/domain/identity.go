// Package domain defines the identity (registered user) entity and its errors.
package domain

import (
	"time"

	"github.com/allisson/notes/internal/errors"
)

// Identity is a registered user. Password holds an argon2id PHC string and is
// never the raw password. Token is the most recently issued token, nil after logout.
type Identity struct {
	ID        int64
	Username  string
	Password  string
	Token     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasToken reports whether token is the live token stored for the identity.
func (i *Identity) HasToken(token string) bool {
	return i.Token != nil && *i.Token == token
}

// Domain-specific errors for identity operations.
var (
	// ErrIdentityNotFound indicates the requested identity does not exist.
	ErrIdentityNotFound = errors.Wrap(errors.ErrNotFound, "identity not found")

	// ErrIdentityAlreadyExists indicates the username is already registered.
	ErrIdentityAlreadyExists = errors.Wrap(errors.ErrConflict, "username already registered")

	// ErrInvalidCredentials is returned for an unknown username and for a wrong
	// password alike, so callers cannot tell which one happened.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid username or password")

	// ErrIdentityInactive indicates the identity has been deactivated.
	ErrIdentityInactive = errors.Wrap(errors.ErrForbidden, "identity is inactive")
)
