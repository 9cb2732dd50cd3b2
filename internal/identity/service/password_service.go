// Package service provides password hashing for identities.
// Passwords are hashed with Argon2id (salted, deliberately slow) and stored in PHC format.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/notes/internal/errors"
)

// PasswordService hashes and verifies identity passwords.
type PasswordService interface {
	// HashPassword returns the Argon2id PHC string for a raw password.
	HashPassword(rawPassword string) (string, error)

	// ComparePassword reports whether rawPassword matches hashedPassword.
	// Malformed hashes never match.
	ComparePassword(rawPassword string, hashedPassword string) bool

	// CompareDummy runs a comparison against a throwaway hash and always returns false.
	// It is used when the username does not exist so that the lookup costs the
	// same as a wrong password.
	CompareDummy(rawPassword string)
}

// passwordService implements PasswordService using go-pwdhash.
type passwordService struct {
	hasher    *pwdhash.PasswordHasher
	dummyHash string
}

const dummyPassword = "dummy-password-for-unknown-users"

// NewPasswordService creates a PasswordService using the interactive Argon2id policy.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	dummyHash, err := hasher.Hash([]byte(dummyPassword))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash dummy password")
	}
	return &passwordService{hasher: hasher, dummyHash: dummyHash}, nil
}

// HashPassword hashes a raw password using Argon2id with a random salt.
func (s *passwordService) HashPassword(rawPassword string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(rawPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// ComparePassword performs a constant-time comparison between a raw password and its hash.
func (s *passwordService) ComparePassword(rawPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(rawPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// CompareDummy spends one Argon2id verification on a fixed hash.
func (s *passwordService) CompareDummy(rawPassword string) {
	_, _ = s.hasher.Verify([]byte(rawPassword), s.dummyHash)
}
