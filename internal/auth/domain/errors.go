package domain

import (
	"github.com/allisson/notes/internal/errors"
)

// Authentication errors.
var (
	// ErrMissingCredential indicates the request carried no usable bearer credential.
	ErrMissingCredential = errors.Wrap(errors.ErrForbidden, "missing or malformed credential")

	// ErrInvalidToken covers bad signatures, malformed tokens and expired tokens alike.
	ErrInvalidToken = errors.Wrap(errors.ErrForbidden, "invalid or expired token")

	// ErrUnsupportedAlgorithm indicates the configured signing algorithm is not an HMAC algorithm.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported signing algorithm")

	// ErrEmptySecret indicates no signing secret was configured.
	ErrEmptySecret = errors.Wrap(errors.ErrInvalidInput, "signing secret must not be empty")
)
