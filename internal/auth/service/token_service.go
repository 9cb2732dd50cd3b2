package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	apperrors "github.com/allisson/notes/internal/errors"
)

// tokenClaims is the signed payload: {"subject_id": <int>, "expires_at": <unix seconds>}.
type tokenClaims struct {
	SubjectID int64 `json:"subject_id"`
	ExpiresAt int64 `json:"expires_at"`
}

// The registered-claim getters are required by jwt.Claims. Expiry is checked by
// the service itself so that a token stays valid at the exact second it expires.
func (c *tokenClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}
func (c *tokenClaims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c *tokenClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c *tokenClaims) GetIssuer() (string, error)              { return "", nil }
func (c *tokenClaims) GetSubject() (string, error)             { return "", nil }
func (c *tokenClaims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// TokenServiceOption configures a TokenService.
type TokenServiceOption func(*jwtTokenService)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *jwtTokenService) {
		s.now = now
	}
}

// jwtTokenService implements TokenService with HMAC-signed JWTs.
type jwtTokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret and the named HMAC
// algorithm (HS256, HS384 or HS512). The secret is copied.
func NewTokenService(
	secret []byte,
	algorithm string,
	ttl time.Duration,
	opts ...TokenServiceOption,
) (TokenService, error) {
	if len(secret) == 0 {
		return nil, authDomain.ErrEmptySecret
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, apperrors.Wrapf(authDomain.ErrUnsupportedAlgorithm, "algorithm %q", algorithm)
	}

	if ttl <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token ttl must be positive")
	}

	s := &jwtTokenService{
		secret: append([]byte(nil), secret...),
		method: method,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithStrictDecoding(),
			jwt.WithoutClaimsValidation(),
		),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs {subject_id, expires_at = now + ttl}.
func (s *jwtTokenService) Issue(subjectID int64) (string, time.Time, error) {
	expiresAt := time.Unix(s.now().Add(s.ttl).Unix(), 0).UTC()

	token := jwt.NewWithClaims(s.method, &tokenClaims{
		SubjectID: subjectID,
		ExpiresAt: expiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}
	return signed, expiresAt, nil
}

// Verify parses token, pinning the algorithm and rejecting non-canonical base64,
// then checks the payload shape and expiry.
func (s *jwtTokenService) Verify(token string) (*authDomain.Claims, error) {
	claims := &tokenClaims{}

	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	if claims.SubjectID <= 0 || claims.ExpiresAt <= 0 {
		return nil, authDomain.ErrInvalidToken
	}

	result := &authDomain.Claims{
		SubjectID: claims.SubjectID,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0).UTC(),
	}
	if result.Expired(s.now()) {
		return nil, authDomain.ErrInvalidToken
	}
	return result, nil
}
