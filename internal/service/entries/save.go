package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// SaveGrid reconciles a submitted entry grid against the persisted entries of
// the (meet, team) pair. All writes happen in one transaction: slots are
// processed in program order, then every persisted entry the submission no
// longer claims is soft-deleted. Slots with validation errors are skipped and
// redisplayed; they never abort the rest of the grid.
//
// Returns ErrEntriesClosed when the meet is not accepting edits.
func (s *Service) SaveGrid(ctx context.Context, in GridInput, values FormValues) (*Grid, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate grid input: %w", err)
	}

	meet, team, err := s.validateAccess(ctx, in.UserID, in.MeetID, in.TeamID)
	if err != nil {
		return nil, err
	}
	if !meet.EntriesOpen {
		return nil, fmt.Errorf("meet %s: %w", meet.ID, domain.ErrEntriesClosed)
	}

	athletes, err := s.athletes.ListActiveByTeam(ctx, in.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	roster := make(map[uuid.UUID]bool, len(athletes))
	for _, a := range athletes {
		roster[a.ID] = true
	}

	grid := &Grid{Meet: meet, Team: team, Athletes: athletes}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sections, err := s.reconcile(ctx, in, values, roster)
		if err != nil {
			return err
		}
		grid.Sections = sections
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save entries: %w", err)
	}

	grid.Saved = !grid.HasErrors()
	s.log.Info("entry grid saved",
		"meet_id", in.MeetID,
		"team_id", in.TeamID,
		"clean", grid.Saved,
	)
	return grid, nil
}
