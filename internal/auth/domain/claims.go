package domain

import "time"

// Claims is the verified content of a token: who it was issued to and until when
// it is accepted. A token is still valid at the exact instant ExpiresAt.
type Claims struct {
	SubjectID int64
	ExpiresAt time.Time
}

// Expired reports whether the claims are no longer accepted at now.
func (c *Claims) Expired(now time.Time) bool {
	return now.Unix() > c.ExpiresAt.Unix()
}

// SignUpInput contains the credentials for a new identity.
type SignUpInput struct {
	Username string
	Password string
}

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the token issued on a successful login.
type LoginOutput struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}
