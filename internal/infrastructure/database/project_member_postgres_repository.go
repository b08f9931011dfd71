package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
	"github.com/schooldevops/openapi-hub/internal/domain/repository"
)

type pgxProjectMemberRepository struct {
	db *pgxpool.Pool
}

// NewPgxProjectMemberRepository creates a new instance of pgxProjectMemberRepository.
func NewPgxProjectMemberRepository(db *pgxpool.Pool) repository.ProjectMemberRepository {
	return &pgxProjectMemberRepository{db: db}
}

func (r *pgxProjectMemberRepository) List(ctx context.Context) ([]*models.ProjectMember, error) {
	query := `
		SELECT id, project_id, user_id, member_role, created_at
		FROM project_members
		ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []*models.ProjectMember
	for rows.Next() {
		member := &models.ProjectMember{}
		if err := rows.Scan(
			&member.ID, &member.ProjectID, &member.UserID, &member.MemberRole, &member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating project members: %w", err)
	}
	return members, nil
}

func (r *pgxProjectMemberRepository) FindByID(ctx context.Context, id int64) (*models.ProjectMember, error) {
	query := `
		SELECT id, project_id, user_id, member_role, created_at
		FROM project_members
		WHERE id = $1`
	member := &models.ProjectMember{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.ProjectID, &member.UserID, &member.MemberRole, &member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find project member by ID: %w", err)
	}
	return member, nil
}

func (r *pgxProjectMemberRepository) ExistsByProjectAndUser(ctx context.Context, projectID, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, projectID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check project member existence: %w", err)
	}
	return exists, nil
}

func (r *pgxProjectMemberRepository) Create(ctx context.Context, member *models.ProjectMember) error {
	query := `
		INSERT INTO project_members (project_id, user_id, member_role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		member.ProjectID, member.UserID, member.MemberRole, member.CreatedAt,
	).Scan(&member.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", domainErrors.ErrMemberExists, pgErr.Detail)
		}
		return fmt.Errorf("failed to create project member: %w", err)
	}
	return nil
}

func (r *pgxProjectMemberRepository) Update(ctx context.Context, member *models.ProjectMember) error {
	query := `UPDATE project_members SET member_role = $2 WHERE id = $1`
	commandTag, err := r.db.Exec(ctx, query, member.ID, member.MemberRole)
	if err != nil {
		return fmt.Errorf("failed to update project member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrMemberNotFound
	}
	return nil
}

func (r *pgxProjectMemberRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM project_members WHERE id = $1`
	commandTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrMemberNotFound
	}
	return nil
}

var _ repository.ProjectMemberRepository = (*pgxProjectMemberRepository)(nil)
