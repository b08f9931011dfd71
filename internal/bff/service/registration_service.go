package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/security"
)

// RegistrationService registers a project together with its owner account as
// one logical operation.
type RegistrationService struct {
	store  store.Store
	hasher security.PasswordHasher
	logger *zap.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(st store.Store, hasher security.PasswordHasher, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{store: st, hasher: hasher, logger: logger}
}

// RegisterProject creates the user and project, failing with a conflict when
// the username or project name is already taken. Partial writes are rolled
// back best-effort; this is not a transaction.
func (s *RegistrationService) RegisterProject(req models.RegistrationRequest) (*models.Project, error) {
	if _, exists := s.store.GetUser(req.User.Username); exists {
		return nil, domainErrors.ErrUsernameExists
	}
	if _, exists := s.store.FindProjectByName(req.Project.Name); exists {
		return nil, domainErrors.ErrProjectNameExists
	}

	hash, err := s.hasher.HashPassword(req.User.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.User.Username,
		Email:        req.User.Email,
		Role:         req.User.Role,
		FullName:     req.User.FullName,
		PasswordHash: hash,
	}
	if err := s.store.PutUser(user); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        req.Project.Name,
		Description: req.Project.Description,
		Location:    req.Project.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
		Owner:       *user,
	}
	if err := s.store.PutProject(project); err != nil {
		// Roll back the half-written registration.
		s.store.DeleteUser(user.Username)
		s.store.DeleteProject(project.ID)
		return nil, fmt.Errorf("failed to store project: %w", err)
	}

	s.logger.Info("project registered",
		zap.String("project_id", project.ID),
		zap.String("owner", user.Username),
	)
	return project, nil
}

// ListProjects returns every registered project.
func (s *RegistrationService) ListProjects() []*models.Project {
	return s.store.ListProjects()
}
