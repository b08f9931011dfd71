package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/schooldevops/openapi-hub/internal/config"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// TokenManager issues and validates HMAC-signed access tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager from the JWT configuration.
func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be configured")
	}
	ttl := cfg.AccessTokenTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// GenerateAccessToken issues a signed token with the subject and a fixed
// expiry window.
func (tm *TokenManager) GenerateAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		Issuer:    tm.issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature and expiry and returns the
// embedded subject.
func (tm *TokenManager) ValidateAccessToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domainErrors.ErrExpiredToken
		}
		return "", domainErrors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", domainErrors.ErrInvalidToken
	}
	return claims.Subject, nil
}

// TTL returns the configured access token lifetime.
func (tm *TokenManager) TTL() time.Duration { return tm.ttl }
