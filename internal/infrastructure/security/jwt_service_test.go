package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schooldevops/openapi-hub/internal/config"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

func newTestTokenManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(config.JWTConfig{
		Secret:         "test-secret-key-for-signing",
		Issuer:         "openapi-hub-test",
		AccessTokenTTL: ttl,
	})
	require.NoError(t, err)
	return tm
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := newTestTokenManager(t, 30*time.Minute)

	token, err := tm.GenerateAccessToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := newTestTokenManager(t, -time.Minute)

	token, err := tm.GenerateAccessToken("alice@example.com")
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	tm := newTestTokenManager(t, 30*time.Minute)
	token, err := tm.GenerateAccessToken("alice@example.com")
	require.NoError(t, err)

	other, err := NewTokenManager(config.JWTConfig{
		Secret:         "a-completely-different-secret",
		Issuer:         "openapi-hub-test",
		AccessTokenTTL: 30 * time.Minute,
	})
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestTokenManager_GarbageTokenRejected(t *testing.T) {
	tm := newTestTokenManager(t, 30*time.Minute)

	_, err := tm.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestTokenManager_EmptySecretRejected(t *testing.T) {
	_, err := NewTokenManager(config.JWTConfig{Issuer: "x"})
	assert.Error(t, err)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := newTestTokenManager(t, 0)
	assert.Equal(t, 30*time.Minute, tm.TTL())
}
