package league

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// RegisterTeam registers a team for a meet. Both records must exist; a second
// live registration of the same pair fails with ErrAlreadyExists.
func (s *Service) RegisterTeam(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error) {
	if _, err := s.meets.GetByID(ctx, meetID); err != nil {
		return nil, fmt.Errorf("register team get meet: %w", err)
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("register team get team: %w", err)
	}

	var mt *domain.MeetTeam
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.meetTeams.Create(ctx, meetID, teamID)
		if err != nil {
			return fmt.Errorf("register team: %w", err)
		}
		mt = created
		return s.auditMutation(ctx, domain.EntityTypeMeetTeam, mt.ID, domain.AuditActionCreate,
			map[string]any{"meet_id": meetID.String(), "team_id": teamID.String()})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("team registered for meet", "meet_id", meetID, "team_id", teamID)
	return mt, nil
}

// WithdrawTeam removes a team's registration from a meet. The team's entries
// for the meet are not touched; they become unreachable behind the access
// gate and reappear if the team is registered again.
func (s *Service) WithdrawTeam(ctx context.Context, meetID, teamID uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.meetTeams.SoftDelete(ctx, meetID, teamID); err != nil {
			return fmt.Errorf("withdraw team: %w", err)
		}
		return s.auditMutation(ctx, domain.EntityTypeMeetTeam, meetID, domain.AuditActionDelete,
			map[string]any{"meet_id": meetID.String(), "team_id": teamID.String()})
	})
	if err != nil {
		return err
	}

	s.log.Info("team withdrawn from meet", "meet_id", meetID, "team_id", teamID)
	return nil
}

// ListRegistrationsByMeet returns the live registrations of a meet.
func (s *Service) ListRegistrationsByMeet(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error) {
	if _, err := s.meets.GetByID(ctx, meetID); err != nil {
		return nil, fmt.Errorf("list registrations get meet: %w", err)
	}
	regs, err := s.meetTeams.ListByMeet(ctx, meetID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// ListRegistrationsByTeam returns the live registrations of a team.
func (s *Service) ListRegistrationsByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("list registrations get team: %w", err)
	}
	regs, err := s.meetTeams.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
