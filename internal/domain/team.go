package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team is a club a roster of athletes belongs to.
type Team struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Coach links a user to a team they coach. Membership in this relation is
// what authorizes non-admin users to edit the team's meet entries.
type Coach struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	Deleted   bool
}

// MeetTeam registers a team for a meet. At most one non-deleted registration
// may exist per (meet, team) pair; the database enforces this with a partial
// unique index.
type MeetTeam struct {
	ID        uuid.UUID
	MeetID    uuid.UUID
	TeamID    uuid.UUID
	CreatedAt time.Time
	Deleted   bool
}
