// Package domain defines the authentication domain: token claims, the inputs and
// outputs of sign-up and login, and authentication errors.
package domain

import "time"

// DefaultTokenTTL is the lifetime of an issued token unless configured otherwise.
const DefaultTokenTTL = 24 * time.Hour

// DefaultAlgorithm is the signing algorithm used when none is configured.
const DefaultAlgorithm = "HS256"

// TokenType is reported to clients alongside issued tokens.
const TokenType = "bearer"
