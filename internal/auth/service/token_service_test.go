package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

var testSecret = []byte("test-signing-secret")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func newTestTokenService(t *testing.T, clock *fakeClock) TokenService {
	t.Helper()
	service, err := NewTokenService(testSecret, "HS256", authDomain.DefaultTokenTTL, WithClock(clock.Now))
	require.NoError(t, err)
	return service
}

func decodeSegment(t *testing.T, segment string) map[string]any {
	t.Helper()
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestNewTokenService(t *testing.T) {
	t.Run("Success_AllHMACAlgorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			service, err := NewTokenService(testSecret, alg, time.Hour)
			require.NoError(t, err, alg)
			assert.NotNil(t, service)
		}
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		service, err := NewTokenService(nil, "HS256", time.Hour)
		assert.Nil(t, service)
		assert.ErrorIs(t, err, authDomain.ErrEmptySecret)
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		for _, alg := range []string{"none", "RS256", "ES256", "EdDSA", "hs256", ""} {
			service, err := NewTokenService(testSecret, alg, time.Hour)
			assert.Nil(t, service, alg)
			assert.ErrorIs(t, err, authDomain.ErrUnsupportedAlgorithm, alg)
		}
	})

	t.Run("Error_NonPositiveTTL", func(t *testing.T) {
		_, err := NewTokenService(testSecret, "HS256", 0)
		assert.Error(t, err)
	})

	t.Run("Success_SecretIsCopied", func(t *testing.T) {
		secret := []byte("mutable-secret")
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		service, err := NewTokenService(secret, "HS256", time.Hour, WithClock(clock.Now))
		require.NoError(t, err)

		token, _, err := service.Issue(1)
		require.NoError(t, err)

		secret[0] = 'X'
		_, err = service.Verify(token)
		assert.NoError(t, err)
	})
}

func TestTokenService_Issue(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: now}
	service := newTestTokenService(t, clock)

	token, expiresAt, err := service.Issue(7)
	require.NoError(t, err)

	assert.Equal(t, now.Add(24*time.Hour).Unix(), expiresAt.Unix())

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	header := decodeSegment(t, parts[0])
	assert.Equal(t, "HS256", header["alg"])

	payload := decodeSegment(t, parts[1])
	assert.Len(t, payload, 2)
	assert.EqualValues(t, 7, payload["subject_id"])
	assert.EqualValues(t, now.Unix()+86400, payload["expires_at"])
}

func TestTokenService_Verify(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, expiresAt, err := service.Issue(7)
		require.NoError(t, err)

		claims, err := service.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.SubjectID)
		assert.Equal(t, expiresAt, claims.ExpiresAt)
	})

	t.Run("Success_ValidAtExactExpiry", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, expiresAt, err := service.Issue(7)
		require.NoError(t, err)

		clock.Set(expiresAt)
		_, err = service.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("Error_ExpiredOneSecondLater", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, expiresAt, err := service.Issue(7)
		require.NoError(t, err)

		clock.Set(expiresAt.Add(time.Second))
		claims, err := service.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_ValidAfterTwentyThreeHoursExpiredAfterTwentyFive", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, _, err := service.Issue(7)
		require.NoError(t, err)

		clock.Set(now.Add(23 * time.Hour))
		_, err = service.Verify(token)
		assert.NoError(t, err)

		clock.Set(now.Add(25 * time.Hour))
		_, err = service.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_EveryByteFlipFails", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, _, err := service.Issue(7)
		require.NoError(t, err)

		for i := 0; i < len(token); i++ {
			tampered := []byte(token)
			if tampered[i] == 'A' {
				tampered[i] = 'B'
			} else {
				tampered[i] = 'A'
			}
			_, err := service.Verify(string(tampered))
			assert.ErrorIs(t, err, authDomain.ErrInvalidToken, "byte %d", i)
		}
	})

	t.Run("Error_DifferentSecret", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)
		other, err := NewTokenService([]byte("another-secret"), "HS256", time.Hour, WithClock(clock.Now))
		require.NoError(t, err)

		token, _, err := other.Issue(7)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_DifferentAlgorithmSameSecret", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)
		other, err := NewTokenService(testSecret, "HS512", time.Hour, WithClock(clock.Now))
		require.NoError(t, err)

		token, _, err := other.Issue(7)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_NoneAlgorithm", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &tokenClaims{
			SubjectID: 7,
			ExpiresAt: now.Add(time.Hour).Unix(),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingClaims", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user": "alice"}).
			SignedString(testSecret)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MalformedInputNeverPanics", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		inputs := []string{"", ".", "..", "a.b.c", "not-a-token", "eyJhbGciOiJIUzI1NiJ9..", strings.Repeat("x", 4096)}
		for _, input := range inputs {
			assert.NotPanics(t, func() {
				_, err := service.Verify(input)
				assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
			})
		}
	})

	t.Run("Success_ConcurrentUse", func(t *testing.T) {
		clock := &fakeClock{now: now}
		service := newTestTokenService(t, clock)

		var wg sync.WaitGroup
		for i := int64(1); i <= 20; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				token, _, err := service.Issue(id)
				assert.NoError(t, err)
				claims, err := service.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, id, claims.SubjectID)
			}(i)
		}
		wg.Wait()
	})
}
