package league

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// AssignCoach links a user to a team, authorizing them to edit the team's
// meet entries. Duplicate live assignments fail with ErrAlreadyExists.
func (s *Service) AssignCoach(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("assign coach get team: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("assign coach get user: %w", err)
	}

	coach, err := s.coaches.Create(ctx, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("assign coach: %w", err)
	}

	s.log.Info("coach assigned", "team_id", teamID, "user_id", userID)
	return coach, nil
}

// RemoveCoach revokes a user's coach assignment for a team.
func (s *Service) RemoveCoach(ctx context.Context, teamID, userID uuid.UUID) error {
	if err := s.coaches.SoftDelete(ctx, teamID, userID); err != nil {
		return fmt.Errorf("remove coach: %w", err)
	}

	s.log.Info("coach removed", "team_id", teamID, "user_id", userID)
	return nil
}
