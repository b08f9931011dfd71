package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
)

type pgxProjectRepository struct {
	db *pgxpool.Pool
}

// NewPgxProjectRepository creates a new instance of pgxProjectRepository.
func NewPgxProjectRepository(db *pgxpool.Pool) repository.ProjectRepository {
	return &pgxProjectRepository{db: db}
}

func (r *pgxProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, name, description, is_archived, created_by, created_at, updated_by, updated_at
		FROM projects
		WHERE is_archived = false
		ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(
			&project.ID, &project.Name, &project.Description, &project.IsArchived,
			&project.CreatedBy, &project.CreatedAt, &project.UpdatedBy, &project.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating projects: %w", err)
	}
	return projects, nil
}

func (r *pgxProjectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, name, description, is_archived, created_by, created_at, updated_by, updated_at
		FROM projects
		WHERE id = $1 AND is_archived = false`
	project := &models.Project{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID, &project.Name, &project.Description, &project.IsArchived,
		&project.CreatedBy, &project.CreatedAt, &project.UpdatedBy, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	return project, nil
}

func (r *pgxProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, description, is_archived, created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		project.Name, project.Description, project.IsArchived,
		project.CreatedBy, project.CreatedAt, project.UpdatedBy, project.UpdatedAt,
	).Scan(&project.ID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *pgxProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, updated_by = $4, updated_at = $5
		WHERE id = $1 AND is_archived = false`
	commandTag, err := r.db.Exec(ctx, query,
		project.ID, project.Name, project.Description, project.UpdatedBy, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrProjectNotFound
	}
	return nil
}

func (r *pgxProjectRepository) Archive(ctx context.Context, id int64, archivedAt time.Time) error {
	query := `
		UPDATE projects
		SET is_archived = true, updated_at = $2
		WHERE id = $1 AND is_archived = false`
	commandTag, err := r.db.Exec(ctx, query, id, archivedAt)
	if err != nil {
		return fmt.Errorf("failed to archive project: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrProjectNotFound
	}
	return nil
}

var _ repository.ProjectRepository = (*pgxProjectRepository)(nil)
