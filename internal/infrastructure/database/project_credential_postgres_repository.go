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

type pgxProjectCredentialRepository struct {
	db *pgxpool.Pool
}

// NewPgxProjectCredentialRepository creates a new instance of pgxProjectCredentialRepository.
func NewPgxProjectCredentialRepository(db *pgxpool.Pool) repository.ProjectCredentialRepository {
	return &pgxProjectCredentialRepository{db: db}
}

func (r *pgxProjectCredentialRepository) List(ctx context.Context) ([]*models.ProjectCredential, error) {
	query := `
		SELECT id, project_id, api_key_name, api_key, api_secret, created_by, created_at, expires_at
		FROM project_credentials
		ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list project credentials: %w", err)
	}
	defer rows.Close()
	return scanCredentials(rows)
}

func (r *pgxProjectCredentialRepository) FindByID(ctx context.Context, id int64) (*models.ProjectCredential, error) {
	query := `
		SELECT id, project_id, api_key_name, api_key, api_secret, created_by, created_at, expires_at
		FROM project_credentials
		WHERE id = $1`
	credential := &models.ProjectCredential{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&credential.ID, &credential.ProjectID, &credential.APIKeyName,
		&credential.APIKey, &credential.APISecret,
		&credential.CreatedBy, &credential.CreatedAt, &credential.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to find project credential by ID: %w", err)
	}
	return credential, nil
}

func (r *pgxProjectCredentialRepository) ListByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectCredential, error) {
	query := `
		SELECT id, project_id, api_key_name, api_key, api_secret, created_by, created_at, expires_at
		FROM project_credentials
		WHERE project_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project credentials by project ID: %w", err)
	}
	defer rows.Close()
	return scanCredentials(rows)
}

func (r *pgxProjectCredentialRepository) Create(ctx context.Context, credential *models.ProjectCredential) error {
	query := `
		INSERT INTO project_credentials (project_id, api_key_name, api_key, api_secret, created_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		credential.ProjectID, credential.APIKeyName, credential.APIKey, credential.APISecret,
		credential.CreatedBy, credential.CreatedAt, credential.ExpiresAt,
	).Scan(&credential.ID)
	if err != nil {
		return fmt.Errorf("failed to create project credential: %w", err)
	}
	return nil
}

func (r *pgxProjectCredentialRepository) UpdateExpiresAt(ctx context.Context, id int64, expiresAt time.Time) error {
	query := `UPDATE project_credentials SET expires_at = $2 WHERE id = $1`
	commandTag, err := r.db.Exec(ctx, query, id, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update project credential expiry: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrCredentialNotFound
	}
	return nil
}

func (r *pgxProjectCredentialRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM project_credentials WHERE id = $1`
	commandTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project credential: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrCredentialNotFound
	}
	return nil
}

func scanCredentials(rows pgx.Rows) ([]*models.ProjectCredential, error) {
	var credentials []*models.ProjectCredential
	for rows.Next() {
		credential := &models.ProjectCredential{}
		if err := rows.Scan(
			&credential.ID, &credential.ProjectID, &credential.APIKeyName,
			&credential.APIKey, &credential.APISecret,
			&credential.CreatedBy, &credential.CreatedAt, &credential.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project credential: %w", err)
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating project credentials: %w", err)
	}
	return credentials, nil
}

var _ repository.ProjectCredentialRepository = (*pgxProjectCredentialRepository)(nil)
