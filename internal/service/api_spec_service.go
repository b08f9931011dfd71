package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
	"github.com/schooldevops/openapi-hub/internal/utils/speccontent"
)

// APISpecService implements spec CRUD with soft delete. Spec content is
// stored as a JSON document and decoded back for responses.
type APISpecService struct {
	repo   repository.APISpecRepository
	logger *zap.Logger
}

// NewAPISpecService creates a new APISpecService.
func NewAPISpecService(repo repository.APISpecRepository, logger *zap.Logger) *APISpecService {
	return &APISpecService{repo: repo, logger: logger}
}

// ListSpecs returns all non-archived specs.
func (s *APISpecService) ListSpecs(ctx context.Context) ([]models.APISpecResponse, error) {
	specs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]models.APISpecResponse, len(specs))
	for i, spec := range specs {
		responses[i] = toSpecResponse(spec)
	}
	return responses, nil
}

// GetSpec returns the non-archived spec with the given ID.
func (s *APISpecService) GetSpec(ctx context.Context, id int64) (models.APISpecResponse, error) {
	spec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.APISpecResponse{}, err
	}
	return toSpecResponse(spec), nil
}

// CreateSpec creates a spec. The creator is recorded as the initial updater.
func (s *APISpecService) CreateSpec(ctx context.Context, req models.CreateAPISpecRequest) (models.APISpecResponse, error) {
	now := time.Now().UTC()
	spec := &models.APISpec{
		ProjectID:   req.ProjectID,
		Version:     req.Version,
		Title:       req.Title,
		Description: req.Description,
		SpecContent: speccontent.Encode(req.SpecContent),
		IsArchived:  false,
		AccessRole:  req.AccessRole,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedBy:   req.CreatedBy,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, spec); err != nil {
		return models.APISpecResponse{}, err
	}

	s.logger.Info("api spec created",
		zap.Int64("spec_id", spec.ID),
		zap.Int64("project_id", spec.ProjectID),
	)
	return toSpecResponse(spec), nil
}

// UpdateSpec applies a partial update; nil fields keep their stored values.
func (s *APISpecService) UpdateSpec(ctx context.Context, id int64, req models.UpdateAPISpecRequest) (models.APISpecResponse, error) {
	spec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.APISpecResponse{}, err
	}

	if req.ProjectID != nil {
		spec.ProjectID = *req.ProjectID
	}
	if req.Version != nil {
		spec.Version = *req.Version
	}
	if req.Title != nil {
		spec.Title = *req.Title
	}
	if req.Description != nil {
		spec.Description = *req.Description
	}
	if req.SpecContent != nil {
		spec.SpecContent = speccontent.Encode(req.SpecContent)
	}
	if req.AccessRole != nil {
		spec.AccessRole = *req.AccessRole
	}
	if req.UpdatedBy != nil {
		spec.UpdatedBy = *req.UpdatedBy
	}
	spec.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, spec); err != nil {
		return models.APISpecResponse{}, err
	}
	return toSpecResponse(spec), nil
}

// DeleteSpec archives the spec. The record stays in storage but is
// excluded from list and get.
func (s *APISpecService) DeleteSpec(ctx context.Context, id int64) error {
	if err := s.repo.Archive(ctx, id, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info("api spec archived", zap.Int64("spec_id", id))
	return nil
}

func toSpecResponse(spec *models.APISpec) models.APISpecResponse {
	return models.APISpecResponse{
		ID:          spec.ID,
		ProjectID:   spec.ProjectID,
		Version:     spec.Version,
		Title:       spec.Title,
		Description: spec.Description,
		SpecContent: speccontent.Decode(spec.SpecContent),
		IsArchived:  spec.IsArchived,
		AccessRole:  spec.AccessRole,
		CreatedBy:   spec.CreatedBy,
		CreatedAt:   spec.CreatedAt,
		UpdatedBy:   spec.UpdatedBy,
		UpdatedAt:   spec.UpdatedAt,
	}
}
