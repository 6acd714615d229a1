// Package audit implements the audit log repository using PostgreSQL.
// Records are append-only; the changes payload is stored as JSONB.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laneline/swimreg-backend/internal/adapter/postgres"
	"github.com/laneline/swimreg-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_records (user_id, entity_type, entity_id, action, changes)
VALUES ($1, $2, $3, $4, $5)`

const listByEntitySQL = `
SELECT id, user_id, entity_type, entity_id, action, changes, created_at
FROM audit_records
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC`

// Create appends an audit record.
func (r *Repo) Create(ctx context.Context, rec *domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	_, err := q.Exec(ctx, createSQL,
		rec.UserID, rec.EntityType, rec.EntityID, rec.Action, changes)
	if err != nil {
		return postgres.MapError(err, "audit_record", uuid.Nil)
	}
	return nil
}

// ListByEntity returns the audit trail of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByEntitySQL, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	records := []*domain.AuditRecord{}
	for rows.Next() {
		var rec domain.AuditRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.EntityType, &rec.EntityID,
			&rec.Action, &rec.Changes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list audit records: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
