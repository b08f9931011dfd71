package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
)

// ProjectService implements project CRUD with soft delete.
type ProjectService struct {
	repo   repository.ProjectRepository
	logger *zap.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repository.ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// ListProjects returns all non-archived projects.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

// GetProject returns the non-archived project with the given ID.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProject creates a project. The creator is recorded as the initial
// updater as well.
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	now := time.Now().UTC()
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		IsArchived:  false,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedBy:   req.CreatedBy,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created", zap.Int64("project_id", project.ID))
	return project, nil
}

// UpdateProject applies a partial update; nil fields keep their stored values.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.UpdatedBy != nil {
		project.UpdatedBy = *req.UpdatedBy
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject archives the project. The record stays in storage but is
// excluded from list and get.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repo.Archive(ctx, id, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info("project archived", zap.Int64("project_id", id))
	return nil
}
