package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryCore holds the fields shared by both entry variants. Entries are
// identified by slot position: at most one non-deleted entry may exist per
// (meet, team, event, order), enforced by a partial unique index.
type EntryCore struct {
	ID        uuid.UUID
	MeetID    uuid.UUID
	TeamID    uuid.UUID
	Event     Event
	Order     int
	Seed      *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Entry is the common view of the two entry variants used by the
// reconciliation engine, which keys entries by (event, order) and only
// reaches into athlete fields after a kind dispatch.
type Entry interface {
	Core() *EntryCore
}

// IndividualEntry enters one athlete into one slot of an individual event.
type IndividualEntry struct {
	EntryCore
	AthleteID uuid.UUID
}

func (e *IndividualEntry) Core() *EntryCore { return &e.EntryCore }

// Validate checks the individual-entry invariants that do not require
// storage access.
func (e *IndividualEntry) Validate() error {
	if e.Event.Kind() != EventKindIndividual {
		return NewValidationError("event", "not an individual event")
	}
	if e.AthleteID == uuid.Nil {
		return NewValidationError("athlete", "missing athlete")
	}
	return nil
}

// RelayEntry enters four athletes into one slot of a relay event.
type RelayEntry struct {
	EntryCore
	AthleteIDs [RelayAthleteCount]uuid.UUID
}

func (e *RelayEntry) Core() *EntryCore { return &e.EntryCore }

// Validate checks the relay invariants: relay event kind, all four legs
// filled, and pairwise-distinct athletes. The athlete distinctness rule is
// also backed by a CHECK constraint in storage.
func (e *RelayEntry) Validate() error {
	if e.Event.Kind() != EventKindRelay {
		return NewValidationError("event", "not a relay event")
	}
	seen := make(map[uuid.UUID]bool, RelayAthleteCount)
	for i, id := range e.AthleteIDs {
		if id == uuid.Nil {
			return NewValidationError(relayAthleteField(i), "missing athlete")
		}
		if seen[id] {
			return NewValidationError(relayAthleteField(i), "duplicate athlete")
		}
		seen[id] = true
	}
	return nil
}

func relayAthleteField(i int) string {
	return "athlete_" + string(rune('0'+i))
}
