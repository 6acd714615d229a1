// Package meet implements the Meet repository using PostgreSQL.
package meet

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

// Repo provides meet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const meetColumns = `id, name, start_date, end_date, entries_open, deleted, created_at, updated_at`

const getByIDSQL = `
SELECT ` + meetColumns + `
FROM meets
WHERE id = $1 AND NOT deleted`

const listSQL = `
SELECT ` + meetColumns + `
FROM meets
WHERE NOT deleted
ORDER BY start_date NULLS LAST, name`

const createSQL = `
INSERT INTO meets (name, start_date, end_date, entries_open)
VALUES ($1, $2, $3, $4)
RETURNING ` + meetColumns

const softDeleteSQL = `
UPDATE meets
SET deleted = TRUE, updated_at = now()
WHERE id = $1 AND NOT deleted`

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM meets WHERE id = $1 AND NOT deleted)`

// GetByID returns a non-deleted meet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMeet(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "meet", id)
	}
	return m, nil
}

// Exists reports whether a non-deleted meet with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("meet exists: %w", err)
	}
	return exists, nil
}

// List returns all non-deleted meets, soonest first.
func (r *Repo) List(ctx context.Context) ([]*domain.Meet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list meets: %w", err)
	}
	defer rows.Close()

	meets := []*domain.Meet{}
	for rows.Next() {
		m, err := scanMeet(rows)
		if err != nil {
			return nil, fmt.Errorf("list meets: %w", err)
		}
		meets = append(meets, m)
	}
	return meets, rows.Err()
}

// Create inserts a new meet. A duplicate name among non-deleted meets
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m *domain.Meet) (*domain.Meet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanMeet(q.QueryRow(ctx, createSQL,
		m.Name, m.StartDate, m.EndDate, m.EntriesOpen))
	if err != nil {
		return nil, postgres.MapError(err, "meet", uuid.Nil)
	}
	return created, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MeetUpdateParams) (*domain.Meet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("meets").Set("updated_at", sq.Expr("now()"))
	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.StartDate != nil {
		builder = builder.Set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		builder = builder.Set("end_date", *params.EndDate)
	}
	if params.EntriesOpen != nil {
		builder = builder.Set("entries_open", *params.EntriesOpen)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + meetColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build meet update: %w", err)
	}

	m, err := scanMeet(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "meet", id)
	}
	return m, nil
}

// SoftDelete marks a meet deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "meet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanMeet(row pgx.Row) (*domain.Meet, error) {
	var m domain.Meet
	err := row.Scan(
		&m.ID, &m.Name, &m.StartDate, &m.EndDate,
		&m.EntriesOpen, &m.Deleted, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
