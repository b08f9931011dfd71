// Package repository defines the persistence interfaces implemented by
// internal/infrastructure/database.
package repository

import (
	"context"
	"time"

	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

// UserRepository persists users.
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository persists projects. List and FindByID only return
// non-archived projects; Archive is the logical delete.
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Archive(ctx context.Context, id int64, archivedAt time.Time) error
}

// ProjectMemberRepository persists project memberships.
type ProjectMemberRepository interface {
	List(ctx context.Context) ([]*models.ProjectMember, error)
	FindByID(ctx context.Context, id int64) (*models.ProjectMember, error)
	ExistsByProjectAndUser(ctx context.Context, projectID, userID int64) (bool, error)
	Create(ctx context.Context, member *models.ProjectMember) error
	Update(ctx context.Context, member *models.ProjectMember) error
	Delete(ctx context.Context, id int64) error
}

// ProjectCredentialRepository persists project credentials.
type ProjectCredentialRepository interface {
	List(ctx context.Context) ([]*models.ProjectCredential, error)
	FindByID(ctx context.Context, id int64) (*models.ProjectCredential, error)
	ListByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectCredential, error)
	Create(ctx context.Context, credential *models.ProjectCredential) error
	UpdateExpiresAt(ctx context.Context, id int64, expiresAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// APISpecRepository persists API specs. List and FindByID only return
// non-archived specs; Archive is the logical delete.
type APISpecRepository interface {
	List(ctx context.Context) ([]*models.APISpec, error)
	FindByID(ctx context.Context, id int64) (*models.APISpec, error)
	Create(ctx context.Context, spec *models.APISpec) error
	Update(ctx context.Context, spec *models.APISpec) error
	Archive(ctx context.Context, id int64, archivedAt time.Time) error
}
