package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Graduation year bounds for Athlete.ClassOf.
const (
	MinClassOf = 1990
	MaxClassOf = 2050
)

// Athlete belongs to exactly one team for the lifetime of the record.
// Inactive athletes stay on the roster but are not offered as entry choices.
type Athlete struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	FirstName string
	LastName  string
	Active    bool
	ClassOf   *int
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// FullName returns "First Last" for display and logging.
func (a *Athlete) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// Validate checks required names and the graduation-year bounds.
func (a *Athlete) Validate() error {
	var errs []FieldError
	if a.FirstName == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "required"})
	}
	if a.LastName == "" {
		errs = append(errs, FieldError{Field: "last_name", Message: "required"})
	}
	if a.TeamID == uuid.Nil {
		errs = append(errs, FieldError{Field: "team_id", Message: "required"})
	}
	if a.ClassOf != nil && (*a.ClassOf < MinClassOf || *a.ClassOf > MaxClassOf) {
		errs = append(errs, FieldError{
			Field:   "class_of",
			Message: fmt.Sprintf("must be between %d and %d", MinClassOf, MaxClassOf),
		})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// AthleteListFilter narrows roster listings.
type AthleteListFilter struct {
	// ActiveOnly keeps only athletes eligible for entry slots.
	ActiveOnly bool
	// IncludeDeleted also returns soft-deleted rows.
	IncludeDeleted bool
}

// AthleteUpdateParams holds the mutable athlete fields for an update.
// nil pointer fields are left unchanged; ClearClassOf resets ClassOf to NULL.
type AthleteUpdateParams struct {
	FirstName    *string
	LastName     *string
	Active       *bool
	ClassOf      *int
	ClearClassOf bool
}
