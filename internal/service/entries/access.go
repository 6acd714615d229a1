package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// validateAccess is the gate in front of every grid operation. Missing meet,
// missing team, and missing registration all surface as ErrNotFound so an
// outsider cannot distinguish "exists but not yours" from "does not exist".
// Admins bypass the coach-of-team check.
func (s *Service) validateAccess(ctx context.Context, userID, meetID, teamID uuid.UUID) (*domain.Meet, *domain.Team, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("entries access get user: %w", err)
	}

	meet, err := s.meets.GetByID(ctx, meetID)
	if err != nil {
		return nil, nil, fmt.Errorf("entries access get meet: %w", err)
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("entries access get team: %w", err)
	}

	registered, err := s.meetTeams.Exists(ctx, meetID, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("entries access check registration: %w", err)
	}
	if !registered {
		return nil, nil, fmt.Errorf("team %s not registered for meet %s: %w", teamID, meetID, domain.ErrNotFound)
	}

	if user.IsAdmin() {
		return meet, team, nil
	}

	isCoach, err := s.coaches.Exists(ctx, userID, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("entries access check coach: %w", err)
	}
	if !isCoach {
		return nil, nil, fmt.Errorf("user %s does not coach team %s: %w", userID, teamID, domain.ErrForbidden)
	}

	return meet, team, nil
}
