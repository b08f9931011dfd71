package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/utils/speccontent"
)

// SpecService attaches API specifications to registered projects.
type SpecService struct {
	store  store.Store
	logger *zap.Logger
}

// NewSpecService creates a new SpecService.
func NewSpecService(st store.Store, logger *zap.Logger) *SpecService {
	return &SpecService{store: st, logger: logger}
}

// CreateSpec stores a spec for a project. The content is normalized to a
// JSON document string regardless of the submitted shape.
func (s *SpecService) CreateSpec(projectID string, req models.CreateAPISpecRequest, createdBy string) (*models.APISpec, error) {
	if _, ok := s.store.GetProject(projectID); !ok {
		return nil, fmt.Errorf("%w: project %s", domainErrors.ErrProjectNotFound, projectID)
	}

	version := req.Version
	if version == "" {
		version = "1.0.0"
	}
	accessRole := req.AccessRole
	if accessRole == "" {
		accessRole = models.AccessPrivate
	}

	now := time.Now().UTC()
	spec := &models.APISpec{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Version:     version,
		AccessRole:  accessRole,
		SpecContent: speccontent.Normalize(req.SpecContent),
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   createdBy,
		UpdatedBy:   createdBy,
	}
	if err := s.store.PutSpec(spec); err != nil {
		return nil, fmt.Errorf("failed to store spec: %w", err)
	}

	s.logger.Info("api spec created",
		zap.String("spec_id", spec.ID),
		zap.String("project_id", projectID),
	)
	return spec, nil
}

// ListSpecs returns the specs attached to a project.
func (s *SpecService) ListSpecs(projectID string) ([]*models.APISpec, error) {
	if _, ok := s.store.GetProject(projectID); !ok {
		return nil, fmt.Errorf("%w: project %s", domainErrors.ErrProjectNotFound, projectID)
	}
	return s.store.ListSpecsByProject(projectID), nil
}
