// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	customValidation "github.com/allisson/notes/internal/validation"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// MaxPasswordLength is the longest password accepted at sign-up.
const MaxPasswordLength = 128

// SignUpRequest contains the credentials for a new identity.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request field, never logged
}

// Validate checks if the sign-up request is valid.
func (r *SignUpRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.PasswordStrength{MinLength: MinPasswordLength, MaxLength: MaxPasswordLength},
		),
	)
}

// ToDomain converts the request into use case input.
func (r *SignUpRequest) ToDomain() *authDomain.SignUpInput {
	return &authDomain.SignUpInput{Username: r.Username, Password: r.Password}
}

// LoginRequest contains the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request field, never logged
}

// Validate checks that both fields are present. Password rules are not applied
// here so that login responses reveal nothing about the password policy.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}

// ToDomain converts the request into use case input.
func (r *LoginRequest) ToDomain() *authDomain.LoginInput {
	return &authDomain.LoginInput{Username: r.Username, Password: r.Password}
}
