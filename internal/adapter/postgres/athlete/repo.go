// Package athlete implements the Athlete repository using PostgreSQL.
// List and update queries are built with squirrel because their shape depends
// on the caller's filter; the rest is raw SQL.
package athlete

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var athleteColumns = []string{
	"id", "team_id", "first_name", "last_name",
	"active", "class_of", "deleted", "created_at", "updated_at",
}

// Repo provides athlete persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new athlete repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a non-deleted athlete by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(athleteColumns...).
		From("athletes").
		Where(sq.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build athlete query: %w", err)
	}

	a, err := scanAthlete(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "athlete", id)
	}
	return a, nil
}

// ListByTeam returns the team's athletes ordered by first then last name.
func (r *Repo) ListByTeam(ctx context.Context, teamID uuid.UUID, filter domain.AthleteListFilter) ([]*domain.Athlete, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(athleteColumns...).
		From("athletes").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("first_name", "last_name")
	if !filter.IncludeDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build athlete list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}
	defer rows.Close()

	athletes := []*domain.Athlete{}
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, fmt.Errorf("list athletes: %w", err)
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

// ListActiveByTeam returns the non-deleted active athletes of a team, the
// set eligible for meet entry slots.
func (r *Repo) ListActiveByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Athlete, error) {
	return r.ListByTeam(ctx, teamID, domain.AthleteListFilter{ActiveOnly: true})
}

// Create inserts a new athlete and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Athlete) (*domain.Athlete, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("athletes").
		Columns("team_id", "first_name", "last_name", "active", "class_of").
		Values(a.TeamID, a.FirstName, a.LastName, a.Active, a.ClassOf).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build athlete insert: %w", err)
	}

	created, err := scanAthlete(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "athlete", uuid.Nil)
	}
	return created, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AthleteUpdateParams) (*domain.Athlete, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("athletes").Set("updated_at", sq.Expr("now()"))
	if params.FirstName != nil {
		builder = builder.Set("first_name", *params.FirstName)
	}
	if params.LastName != nil {
		builder = builder.Set("last_name", *params.LastName)
	}
	if params.Active != nil {
		builder = builder.Set("active", *params.Active)
	}
	switch {
	case params.ClearClassOf:
		builder = builder.Set("class_of", nil)
	case params.ClassOf != nil:
		builder = builder.Set("class_of", *params.ClassOf)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build athlete update: %w", err)
	}

	a, err := scanAthlete(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "athlete", id)
	}
	return a, nil
}

// SoftDelete marks an athlete deleted. Deletion is refused with
// domain.ErrValidation while any live entry still references the athlete,
// mirroring the RESTRICT semantics of hard foreign keys.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var referenced bool
	err := q.QueryRow(ctx, `
SELECT EXISTS(
    SELECT 1 FROM individual_entries WHERE athlete_id = $1 AND NOT deleted
    UNION ALL
    SELECT 1 FROM relay_entries
    WHERE $1 IN (athlete_0, athlete_1, athlete_2, athlete_3) AND NOT deleted
)`, id).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("athlete references: %w", err)
	}
	if referenced {
		return fmt.Errorf("athlete %s has live meet entries: %w", id, domain.ErrValidation)
	}

	tag, err := q.Exec(ctx, `UPDATE athletes SET deleted = TRUE, updated_at = now() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return postgres.MapError(err, "athlete", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("athlete %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func columnList() string {
	list := ""
	for i, c := range athleteColumns {
		if i > 0 {
			list += ", "
		}
		list += c
	}
	return list
}

func scanAthlete(row pgx.Row) (*domain.Athlete, error) {
	var a domain.Athlete
	err := row.Scan(
		&a.ID, &a.TeamID, &a.FirstName, &a.LastName,
		&a.Active, &a.ClassOf, &a.Deleted, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
