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

type pgxAPISpecRepository struct {
	db *pgxpool.Pool
}

// NewPgxAPISpecRepository creates a new instance of pgxAPISpecRepository.
func NewPgxAPISpecRepository(db *pgxpool.Pool) repository.APISpecRepository {
	return &pgxAPISpecRepository{db: db}
}

func (r *pgxAPISpecRepository) List(ctx context.Context) ([]*models.APISpec, error) {
	query := `
		SELECT id, project_id, version, title, description, spec_content,
		       is_archived, access_role, created_by, created_at, updated_by, updated_at
		FROM api_specs
		WHERE is_archived = false
		ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list api specs: %w", err)
	}
	defer rows.Close()

	var specs []*models.APISpec
	for rows.Next() {
		spec := &models.APISpec{}
		if err := rows.Scan(
			&spec.ID, &spec.ProjectID, &spec.Version, &spec.Title, &spec.Description,
			&spec.SpecContent, &spec.IsArchived, &spec.AccessRole,
			&spec.CreatedBy, &spec.CreatedAt, &spec.UpdatedBy, &spec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan api spec: %w", err)
		}
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating api specs: %w", err)
	}
	return specs, nil
}

func (r *pgxAPISpecRepository) FindByID(ctx context.Context, id int64) (*models.APISpec, error) {
	query := `
		SELECT id, project_id, version, title, description, spec_content,
		       is_archived, access_role, created_by, created_at, updated_by, updated_at
		FROM api_specs
		WHERE id = $1 AND is_archived = false`
	spec := &models.APISpec{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&spec.ID, &spec.ProjectID, &spec.Version, &spec.Title, &spec.Description,
		&spec.SpecContent, &spec.IsArchived, &spec.AccessRole,
		&spec.CreatedBy, &spec.CreatedAt, &spec.UpdatedBy, &spec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrSpecNotFound
		}
		return nil, fmt.Errorf("failed to find api spec by ID: %w", err)
	}
	return spec, nil
}

func (r *pgxAPISpecRepository) Create(ctx context.Context, spec *models.APISpec) error {
	query := `
		INSERT INTO api_specs (project_id, version, title, description, spec_content,
		                       is_archived, access_role, created_by, created_at, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		spec.ProjectID, spec.Version, spec.Title, spec.Description, spec.SpecContent,
		spec.IsArchived, spec.AccessRole, spec.CreatedBy, spec.CreatedAt, spec.UpdatedBy, spec.UpdatedAt,
	).Scan(&spec.ID)
	if err != nil {
		return fmt.Errorf("failed to create api spec: %w", err)
	}
	return nil
}

func (r *pgxAPISpecRepository) Update(ctx context.Context, spec *models.APISpec) error {
	query := `
		UPDATE api_specs
		SET project_id = $2, version = $3, title = $4, description = $5,
		    spec_content = $6, access_role = $7, updated_by = $8, updated_at = $9
		WHERE id = $1 AND is_archived = false`
	commandTag, err := r.db.Exec(ctx, query,
		spec.ID, spec.ProjectID, spec.Version, spec.Title, spec.Description,
		spec.SpecContent, spec.AccessRole, spec.UpdatedBy, spec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update api spec: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrSpecNotFound
	}
	return nil
}

func (r *pgxAPISpecRepository) Archive(ctx context.Context, id int64, archivedAt time.Time) error {
	query := `
		UPDATE api_specs
		SET is_archived = true, updated_at = $2
		WHERE id = $1 AND is_archived = false`
	commandTag, err := r.db.Exec(ctx, query, id, archivedAt)
	if err != nil {
		return fmt.Errorf("failed to archive api spec: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrSpecNotFound
	}
	return nil
}

var _ repository.APISpecRepository = (*pgxAPISpecRepository)(nil)
