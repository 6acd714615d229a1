package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/pkg/seedtime"
)

// GridInput identifies the grid to render or save.
type GridInput struct {
	UserID uuid.UUID
	MeetID uuid.UUID
	TeamID uuid.UUID
}

// Validate checks the input for structural errors.
func (in *GridInput) Validate() error {
	var errs []domain.FieldError
	if in.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "user_id is required"})
	}
	if in.MeetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meet_id", Message: "meet_id is required"})
	}
	if in.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "team_id is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Grid renders the entry grid for one (meet, team) pair: every event of the
// program in canonical order, each with its numbered slots prefilled from the
// persisted entries.
func (s *Service) Grid(ctx context.Context, in GridInput) (*Grid, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate grid input: %w", err)
	}

	meet, team, err := s.validateAccess(ctx, in.UserID, in.MeetID, in.TeamID)
	if err != nil {
		return nil, err
	}

	athletes, err := s.athletes.ListActiveByTeam(ctx, in.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	persisted, err := s.entries.ListByMeetTeam(ctx, in.MeetID, in.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	byPosition := entriesByPosition(persisted)

	grid := &Grid{
		Meet:     meet,
		Team:     team,
		Athletes: athletes,
		ReadOnly: !meet.EntriesOpen,
	}
	for _, event := range domain.EventOrder {
		count := s.slotsPerEvent(event)
		section := Section{Event: event, Count: count}
		for order := 0; order < count; order++ {
			form := newSlotForm(event, order)
			if entry, ok := byPosition[event][order]; ok {
				bindPersisted(form, entry)
			}
			section.Slots = append(section.Slots, form)
		}
		grid.Sections = append(grid.Sections, section)
	}
	return grid, nil
}

// entriesByPosition keys entries by their (event, order) slot. The partial
// unique indexes guarantee at most one live entry per slot.
func entriesByPosition(entries []domain.Entry) map[domain.Event]map[int]domain.Entry {
	byPosition := map[domain.Event]map[int]domain.Entry{}
	for _, e := range entries {
		core := e.Core()
		if byPosition[core.Event] == nil {
			byPosition[core.Event] = map[int]domain.Entry{}
		}
		byPosition[core.Event][core.Order] = e
	}
	return byPosition
}

// bindPersisted fills a slot form with the display values of a stored entry.
func bindPersisted(form *SlotForm, entry domain.Entry) {
	switch e := entry.(type) {
	case *domain.IndividualEntry:
		form.Values[FieldAthlete] = e.AthleteID.String()
	case *domain.RelayEntry:
		for i, field := range RelayAthleteFields {
			form.Values[field] = e.AthleteIDs[i].String()
		}
	}
	if seed := entry.Core().Seed; seed != nil {
		form.Values[FieldSeed] = seedtime.Format(*seed)
	}
}
