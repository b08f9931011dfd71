// Package service implements the streetlight BFF business logic.
package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/security"
)

// AuthService authenticates stored users and issues access tokens.
type AuthService struct {
	store  store.Store
	hasher security.PasswordHasher
	tokens *security.TokenManager
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(st store.Store, hasher security.PasswordHasher, tokens *security.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{store: st, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed access token.
// Unknown users and password mismatches are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	user, ok := s.store.GetUser(username)
	if !ok {
		return "", domainErrors.ErrInvalidCredentials
	}

	match, err := s.hasher.CheckPasswordHash(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return "", domainErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("username", username))
	return token, nil
}

// Authenticate validates a bearer token and resolves its subject to a
// stored user.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	subject, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, ok := s.store.GetUser(subject)
	if !ok {
		return nil, domainErrors.ErrInvalidToken
	}
	return user, nil
}
