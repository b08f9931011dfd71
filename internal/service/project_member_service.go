package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
)

// ProjectMemberService implements membership CRUD with the
// one-membership-per-user-per-project invariant.
type ProjectMemberService struct {
	repo   repository.ProjectMemberRepository
	logger *zap.Logger
}

// NewProjectMemberService creates a new ProjectMemberService.
func NewProjectMemberService(repo repository.ProjectMemberRepository, logger *zap.Logger) *ProjectMemberService {
	return &ProjectMemberService{repo: repo, logger: logger}
}

// ListMembers returns all project members.
func (s *ProjectMemberService) ListMembers(ctx context.Context) ([]*models.ProjectMember, error) {
	return s.repo.List(ctx)
}

// GetMember returns the membership with the given ID.
func (s *ProjectMemberService) GetMember(ctx context.Context, id int64) (*models.ProjectMember, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateMember adds a user to a project, failing with ErrMemberExists when
// the (project, user) pair already has a membership.
func (s *ProjectMemberService) CreateMember(ctx context.Context, req models.CreateProjectMemberRequest) (*models.ProjectMember, error) {
	exists, err := s.repo.ExistsByProjectAndUser(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership uniqueness: %w", err)
	}
	if exists {
		return nil, domainErrors.ErrMemberExists
	}

	member := &models.ProjectMember{
		ProjectID:  req.ProjectID,
		UserID:     req.UserID,
		MemberRole: req.MemberRole,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("project member created",
		zap.Int64("member_id", member.ID),
		zap.Int64("project_id", member.ProjectID),
		zap.Int64("user_id", member.UserID),
	)
	return member, nil
}

// UpdateMember changes the member role; a nil role keeps the stored value.
func (s *ProjectMemberService) UpdateMember(ctx context.Context, id int64, req models.UpdateProjectMemberRequest) (*models.ProjectMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MemberRole != nil {
		member.MemberRole = *req.MemberRole
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember removes the membership permanently.
func (s *ProjectMemberService) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
