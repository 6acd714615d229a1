package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meet is a swim meet teams register for. Entries for a meet may only be
// edited while EntriesOpen is set; viewing is always allowed.
type Meet struct {
	ID          uuid.UUID
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	EntriesOpen bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
}

// Validate checks the start/end date invariant. The database enforces the
// same rule with a CHECK constraint.
func (m *Meet) Validate() error {
	if m.Name == "" {
		return NewValidationError("name", "required")
	}
	if m.StartDate != nil && m.EndDate != nil && m.StartDate.After(*m.EndDate) {
		return NewValidationError("start_date", "must not be after end date")
	}
	return nil
}

// MeetUpdateParams holds the mutable meet fields for an update.
// nil pointer fields are left unchanged.
type MeetUpdateParams struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	EntriesOpen *bool
}
