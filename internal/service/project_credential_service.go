package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
	"github.com/schooldevops/openapi-hub/internal/utils/random"
)

const (
	apiKeyByteLength    = 32
	apiSecretByteLength = 64
)

// ProjectCredentialService implements credential CRUD. Key material is
// generated server-side and only the expiry is mutable after creation.
type ProjectCredentialService struct {
	repo   repository.ProjectCredentialRepository
	logger *zap.Logger
}

// NewProjectCredentialService creates a new ProjectCredentialService.
func NewProjectCredentialService(repo repository.ProjectCredentialRepository, logger *zap.Logger) *ProjectCredentialService {
	return &ProjectCredentialService{repo: repo, logger: logger}
}

// ListCredentials returns all project credentials.
func (s *ProjectCredentialService) ListCredentials(ctx context.Context) ([]*models.ProjectCredential, error) {
	return s.repo.List(ctx)
}

// GetCredential returns the credential with the given ID.
func (s *ProjectCredentialService) GetCredential(ctx context.Context, id int64) (*models.ProjectCredential, error) {
	return s.repo.FindByID(ctx, id)
}

// ListCredentialsByProject returns all credentials issued for a project.
func (s *ProjectCredentialService) ListCredentialsByProject(ctx context.Context, projectID int64) ([]*models.ProjectCredential, error) {
	return s.repo.ListByProjectID(ctx, projectID)
}

// CreateCredential issues a new credential. The key and secret are opaque
// random tokens; any client-supplied values for them are ignored. Expiry
// defaults to 90 days from creation unless the request overrides it.
func (s *ProjectCredentialService) CreateCredential(ctx context.Context, req models.CreateProjectCredentialRequest) (*models.ProjectCredential, error) {
	apiKey, err := random.GenerateToken(apiKeyByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	apiSecret, err := random.GenerateToken(apiSecretByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate api secret: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.AddDate(0, 0, models.CredentialDefaultTTLDays)
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	credential := &models.ProjectCredential{
		ProjectID:  req.ProjectID,
		APIKeyName: req.APIKeyName,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		CreatedBy:  req.CreatedBy,
		CreatedAt:  now,
		ExpiresAt:  expiresAt,
	}
	if err := s.repo.Create(ctx, credential); err != nil {
		return nil, err
	}

	s.logger.Info("project credential created",
		zap.Int64("credential_id", credential.ID),
		zap.Int64("project_id", credential.ProjectID),
	)
	return credential, nil
}

// UpdateCredential extends or shortens the credential expiry. All other
// fields are immutable after creation; a nil expiry is a no-op.
func (s *ProjectCredentialService) UpdateCredential(ctx context.Context, id int64, req models.UpdateProjectCredentialRequest) (*models.ProjectCredential, error) {
	credential, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExpiresAt != nil {
		if err := s.repo.UpdateExpiresAt(ctx, id, *req.ExpiresAt); err != nil {
			return nil, err
		}
		credential.ExpiresAt = *req.ExpiresAt
	}
	return credential, nil
}

// DeleteCredential removes the credential permanently.
func (s *ProjectCredentialService) DeleteCredential(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
