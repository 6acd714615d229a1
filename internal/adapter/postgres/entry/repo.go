// Package entry implements the meet entry repository using PostgreSQL.
//
// Individual and relay entries live in separate tables with the same slot
// identity (meet_id, team_id, event, entry_order); a partial unique index on
// each table keeps at most one live entry per slot. The column is named
// entry_order because ORDER is reserved in SQL.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides meet entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const individualColumns = `id, meet_id, team_id, event, entry_order, athlete_id, seed, deleted, created_at, updated_at`

const relayColumns = `id, meet_id, team_id, event, entry_order, athlete_0, athlete_1, athlete_2, athlete_3, seed, deleted, created_at, updated_at`

const listIndividualSQL = `
SELECT ` + individualColumns + `
FROM individual_entries
WHERE meet_id = $1 AND team_id = $2 AND NOT deleted
ORDER BY event, entry_order`

const listRelaySQL = `
SELECT ` + relayColumns + `
FROM relay_entries
WHERE meet_id = $1 AND team_id = $2 AND NOT deleted
ORDER BY event, entry_order`

const createIndividualSQL = `
INSERT INTO individual_entries (meet_id, team_id, event, entry_order, athlete_id, seed)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + individualColumns

const createRelaySQL = `
INSERT INTO relay_entries (meet_id, team_id, event, entry_order, athlete_0, athlete_1, athlete_2, athlete_3, seed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + relayColumns

// ListByMeetTeam returns every live entry the team holds in the meet, both
// individual and relay, as the common Entry view.
func (r *Repo) ListByMeetTeam(ctx context.Context, meetID, teamID uuid.UUID) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entries := []domain.Entry{}

	rows, err := q.Query(ctx, listIndividualSQL, meetID, teamID)
	if err != nil {
		return nil, fmt.Errorf("list individual entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		e, err := scanIndividual(rows)
		if err != nil {
			return nil, fmt.Errorf("list individual entries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list individual entries: %w", err)
	}

	rows, err = q.Query(ctx, listRelaySQL, meetID, teamID)
	if err != nil {
		return nil, fmt.Errorf("list relay entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		e, err := scanRelay(rows)
		if err != nil {
			return nil, fmt.Errorf("list relay entries: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateIndividual inserts a new individual entry. A second live entry in the
// same slot surfaces as domain.ErrAlreadyExists.
func (r *Repo) CreateIndividual(ctx context.Context, e *domain.IndividualEntry) (*domain.IndividualEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanIndividual(q.QueryRow(ctx, createIndividualSQL,
		e.MeetID, e.TeamID, e.Event, e.Order, e.AthleteID, nullSeed(e.Seed)))
	if err != nil {
		return nil, postgres.MapError(err, "individual_entry", uuid.Nil)
	}
	return created, nil
}

// UpdateIndividual rewrites the athlete and seed of an existing entry.
func (r *Repo) UpdateIndividual(ctx context.Context, id uuid.UUID, athleteID uuid.UUID, seed *decimal.Decimal) (*domain.IndividualEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("individual_entries").
		Set("athlete_id", athleteID).
		Set("seed", nullSeed(seed)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + individualColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build individual entry update: %w", err)
	}

	e, err := scanIndividual(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "individual_entry", id)
	}
	return e, nil
}

// CreateRelay inserts a new relay entry. Duplicate slots surface as
// domain.ErrAlreadyExists, duplicate athletes within the relay as
// domain.ErrValidation via the table CHECK constraint.
func (r *Repo) CreateRelay(ctx context.Context, e *domain.RelayEntry) (*domain.RelayEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRelay(q.QueryRow(ctx, createRelaySQL,
		e.MeetID, e.TeamID, e.Event, e.Order,
		e.AthleteIDs[0], e.AthleteIDs[1], e.AthleteIDs[2], e.AthleteIDs[3],
		nullSeed(e.Seed)))
	if err != nil {
		return nil, postgres.MapError(err, "relay_entry", uuid.Nil)
	}
	return created, nil
}

// UpdateRelay rewrites the four legs and seed of an existing relay entry.
func (r *Repo) UpdateRelay(ctx context.Context, id uuid.UUID, athleteIDs [domain.RelayAthleteCount]uuid.UUID, seed *decimal.Decimal) (*domain.RelayEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("relay_entries").
		Set("athlete_0", athleteIDs[0]).
		Set("athlete_1", athleteIDs[1]).
		Set("athlete_2", athleteIDs[2]).
		Set("athlete_3", athleteIDs[3]).
		Set("seed", nullSeed(seed)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted": false}).
		Suffix("RETURNING " + relayColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relay entry update: %w", err)
	}

	e, err := scanRelay(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "relay_entry", id)
	}
	return e, nil
}

// SoftDelete marks an entry of either kind deleted, dispatching on the
// event's kind.
func (r *Repo) SoftDelete(ctx context.Context, e domain.Entry) error {
	core := e.Core()
	table := "individual_entries"
	entity := "individual_entry"
	if core.Event.Kind() == domain.EventKindRelay {
		table = "relay_entries"
		entity = "relay_entry"
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx,
		`UPDATE `+table+` SET deleted = TRUE, updated_at = now() WHERE id = $1 AND NOT deleted`,
		core.ID)
	if err != nil {
		return postgres.MapError(err, entity, core.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, core.ID, domain.ErrNotFound)
	}
	return nil
}

// HardDeleteOld physically removes soft-deleted entries last touched before
// threshold. Returns the number of rows removed across both entry tables.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	for _, table := range []string{"individual_entries", "relay_entries"} {
		tag, err := q.Exec(ctx,
			`DELETE FROM `+table+` WHERE deleted AND updated_at < $1`,
			threshold)
		if err != nil {
			return total, fmt.Errorf("hard delete %s: %w", table, err)
		}
		total += tag.RowsAffected()
	}
	return total, nil
}

func nullSeed(seed *decimal.Decimal) decimal.NullDecimal {
	if seed == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *seed, Valid: true}
}

func seedPtr(seed decimal.NullDecimal) *decimal.Decimal {
	if !seed.Valid {
		return nil
	}
	return &seed.Decimal
}

func scanIndividual(row pgx.Row) (*domain.IndividualEntry, error) {
	var (
		e    domain.IndividualEntry
		seed decimal.NullDecimal
	)
	err := row.Scan(
		&e.ID, &e.MeetID, &e.TeamID, &e.Event, &e.Order,
		&e.AthleteID, &seed, &e.Deleted, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Seed = seedPtr(seed)
	return &e, nil
}

func scanRelay(row pgx.Row) (*domain.RelayEntry, error) {
	var (
		e    domain.RelayEntry
		seed decimal.NullDecimal
	)
	err := row.Scan(
		&e.ID, &e.MeetID, &e.TeamID, &e.Event, &e.Order,
		&e.AthleteIDs[0], &e.AthleteIDs[1], &e.AthleteIDs[2], &e.AthleteIDs[3],
		&seed, &e.Deleted, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Seed = seedPtr(seed)
	return &e, nil
}
