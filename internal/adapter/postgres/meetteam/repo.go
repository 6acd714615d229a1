// Package meetteam implements the meet registration repository using
// PostgreSQL. A row links one team to one meet; the pair is unique among
// non-deleted registrations.
package meetteam

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

// Repo provides meet registration persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meet registration repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const meetTeamColumns = `id, meet_id, team_id, deleted, created_at`

const createSQL = `
INSERT INTO meet_teams (meet_id, team_id)
VALUES ($1, $2)
RETURNING ` + meetTeamColumns

const existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM meet_teams
    WHERE meet_id = $1 AND team_id = $2 AND NOT deleted)`

const listByMeetSQL = `
SELECT ` + meetTeamColumns + `
FROM meet_teams
WHERE meet_id = $1 AND NOT deleted
ORDER BY created_at`

const listByTeamSQL = `
SELECT ` + meetTeamColumns + `
FROM meet_teams
WHERE team_id = $1 AND NOT deleted
ORDER BY created_at`

const softDeleteSQL = `
UPDATE meet_teams
SET deleted = TRUE
WHERE meet_id = $1 AND team_id = $2 AND NOT deleted`

// Create registers a team for a meet. Registering the same pair twice
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	mt, err := scanMeetTeam(q.QueryRow(ctx, createSQL, meetID, teamID))
	if err != nil {
		return nil, postgres.MapError(err, "meet_team", uuid.Nil)
	}
	return mt, nil
}

// Exists reports whether the team holds a live registration for the meet.
func (r *Repo) Exists(ctx context.Context, meetID, teamID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, meetID, teamID).Scan(&exists); err != nil {
		return false, fmt.Errorf("meet registration exists: %w", err)
	}
	return exists, nil
}

// ListByMeet returns live registrations for a meet in registration order.
func (r *Repo) ListByMeet(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error) {
	return r.list(ctx, listByMeetSQL, meetID)
}

// ListByTeam returns live registrations held by a team.
func (r *Repo) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error) {
	return r.list(ctx, listByTeamSQL, teamID)
}

func (r *Repo) list(ctx context.Context, query string, id uuid.UUID) ([]*domain.MeetTeam, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list meet registrations: %w", err)
	}
	defer rows.Close()

	registrations := []*domain.MeetTeam{}
	for rows.Next() {
		mt, err := scanMeetTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("list meet registrations: %w", err)
		}
		registrations = append(registrations, mt)
	}
	return registrations, rows.Err()
}

// SoftDelete withdraws a team's registration from a meet.
func (r *Repo) SoftDelete(ctx context.Context, meetID, teamID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, meetID, teamID)
	if err != nil {
		return postgres.MapError(err, "meet_team", teamID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration of team %s for meet %s: %w", teamID, meetID, domain.ErrNotFound)
	}
	return nil
}

func scanMeetTeam(row pgx.Row) (*domain.MeetTeam, error) {
	var mt domain.MeetTeam
	err := row.Scan(&mt.ID, &mt.MeetID, &mt.TeamID, &mt.Deleted, &mt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &mt, nil
}
