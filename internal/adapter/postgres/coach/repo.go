// Package coach implements the coach membership repository using PostgreSQL.
package coach

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

// Repo provides coach membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new coach repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO coaches (team_id, user_id)
VALUES ($1, $2)
RETURNING id, team_id, user_id, deleted, created_at`

const existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM coaches
    WHERE user_id = $1 AND team_id = $2 AND NOT deleted)`

const listTeamIDsByUserSQL = `
SELECT team_id
FROM coaches
WHERE user_id = $1 AND NOT deleted`

const softDeleteSQL = `
UPDATE coaches
SET deleted = TRUE
WHERE team_id = $1 AND user_id = $2 AND NOT deleted`

// Create assigns a user as coach of a team. Assigning the same pair twice
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Coach
	err := q.QueryRow(ctx, createSQL, teamID, userID).Scan(
		&c.ID, &c.TeamID, &c.UserID, &c.Deleted, &c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "coach", uuid.Nil)
	}
	return &c, nil
}

// Exists reports whether the user is a live coach of the team.
func (r *Repo) Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, userID, teamID).Scan(&exists); err != nil {
		return false, fmt.Errorf("coach exists: %w", err)
	}
	return exists, nil
}

// ListTeamIDsByUser returns the ids of every team the user coaches.
func (r *Repo) ListTeamIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTeamIDsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list coached teams: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list coached teams: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SoftDelete removes a coach assignment.
func (r *Repo) SoftDelete(ctx context.Context, teamID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, teamID, userID)
	if err != nil {
		return postgres.MapError(err, "coach", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("coach %s of team %s: %w", userID, teamID, domain.ErrNotFound)
	}
	return nil
}
