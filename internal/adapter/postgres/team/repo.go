// Package team implements the Team repository using PostgreSQL.
// Teams are soft-deleted: reads exclude deleted rows unless stated otherwise.
package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

// Repo provides team persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new team repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const teamColumns = `id, name, deleted, created_at, updated_at`

const getByIDSQL = `
SELECT ` + teamColumns + `
FROM teams
WHERE id = $1 AND NOT deleted`

const getByIDIncludingDeletedSQL = `
SELECT ` + teamColumns + `
FROM teams
WHERE id = $1`

const listSQL = `
SELECT ` + teamColumns + `
FROM teams
WHERE NOT deleted
ORDER BY name`

const createSQL = `
INSERT INTO teams (name)
VALUES ($1)
RETURNING ` + teamColumns

const softDeleteSQL = `
UPDATE teams
SET deleted = TRUE, updated_at = now()
WHERE id = $1 AND NOT deleted`

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1 AND NOT deleted)`

// GetByID returns a non-deleted team by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	team, err := scanTeam(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "team", id)
	}
	return team, nil
}

// GetByIDIncludingDeleted returns a team regardless of its deleted flag.
func (r *Repo) GetByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	team, err := scanTeam(q.QueryRow(ctx, getByIDIncludingDeletedSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "team", id)
	}
	return team, nil
}

// Exists reports whether a non-deleted team with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("team exists: %w", err)
	}
	return exists, nil
}

// List returns all non-deleted teams ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Create inserts a new team. A duplicate name among non-deleted teams
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Team, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	team, err := scanTeam(q.QueryRow(ctx, createSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "team", uuid.Nil)
	}
	return team, nil
}

// SoftDelete marks a team deleted. Returns domain.ErrNotFound when no live
// row matched.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "team", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.Name, &t.Deleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
