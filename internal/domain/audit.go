package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTeam            EntityType = "TEAM"
	EntityTypeAthlete         EntityType = "ATHLETE"
	EntityTypeMeet            EntityType = "MEET"
	EntityTypeMeetTeam        EntityType = "MEET_TEAM"
	EntityTypeIndividualEntry EntityType = "INDIVIDUAL_ENTRY"
	EntityTypeRelayEntry      EntityType = "RELAY_ENTRY"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTeam, EntityTypeAthlete, EntityTypeMeet,
		EntityTypeMeetTeam, EntityTypeIndividualEntry, EntityTypeRelayEntry:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditRecord is one append-only row of the mutation log. Entry grid
// reconciliation writes one record per create/update/delete inside the same
// transaction as the mutation itself.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
