package league

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// MaxTeamNameLen bounds team names in characters.
const MaxTeamNameLen = 120

// CreateTeamInput holds the data for creating a team.
type CreateTeamInput struct {
	Name string
}

// Validate checks the input for errors.
func (in *CreateTeamInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if len(name) > MaxTeamNameLen {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", MaxTeamNameLen),
		})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTeam creates a team. Duplicate names among non-deleted teams fail
// with ErrAlreadyExists.
func (s *Service) CreateTeam(ctx context.Context, in CreateTeamInput) (*domain.Team, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate create team input: %w", err)
	}

	var team *domain.Team
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.teams.Create(ctx, strings.TrimSpace(in.Name))
		if err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		team = created
		return s.auditMutation(ctx, domain.EntityTypeTeam, team.ID, domain.AuditActionCreate,
			map[string]any{"name": team.Name})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// GetTeam returns a team by id.
func (s *Service) GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

// ListTeams returns every non-deleted team.
func (s *Service) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// DeleteTeam soft-deletes a team.
func (s *Service) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.teams.SoftDelete(ctx, id); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		return s.auditMutation(ctx, domain.EntityTypeTeam, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.Info("team deleted", "team_id", id)
	return nil
}
