package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// CreateAthleteInput holds the data for adding an athlete to a team's roster.
type CreateAthleteInput struct {
	TeamID    uuid.UUID
	FirstName string
	LastName  string
	Active    bool
	ClassOf   *int
}

// UpdateAthleteInput holds the mutable athlete fields; nil fields are left
// unchanged. ClearClassOf wipes the graduation year.
type UpdateAthleteInput struct {
	FirstName    *string
	LastName     *string
	Active       *bool
	ClassOf      *int
	ClearClassOf bool
}

// ListAthletesInput selects which roster rows to return.
type ListAthletesInput struct {
	TeamID         uuid.UUID
	ActiveOnly     bool
	IncludeDeleted bool
}

// CreateAthlete adds an athlete to the team's roster.
func (s *Service) CreateAthlete(ctx context.Context, in CreateAthleteInput) (*domain.Athlete, error) {
	userID, err := s.validateAccess(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}

	athlete := &domain.Athlete{
		TeamID:    in.TeamID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Active:    in.Active,
		ClassOf:   in.ClassOf,
	}
	if err := athlete.Validate(); err != nil {
		return nil, fmt.Errorf("validate athlete: %w", err)
	}

	var created *domain.Athlete
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.athletes.Create(ctx, athlete)
		if err != nil {
			return fmt.Errorf("create athlete: %w", err)
		}
		created = c
		return s.auditAthlete(ctx, userID, created.ID, domain.AuditActionCreate,
			map[string]any{"first_name": created.FirstName, "last_name": created.LastName})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("athlete created", "athlete_id", created.ID, "team_id", in.TeamID)
	return created, nil
}

// GetAthlete returns an athlete, gated on roster access to its team.
func (s *Service) GetAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	athlete, err := s.athletes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get athlete: %w", err)
	}
	if _, err := s.validateAccess(ctx, athlete.TeamID); err != nil {
		return nil, err
	}
	return athlete, nil
}

// ListAthletes returns the team's roster ordered by name.
func (s *Service) ListAthletes(ctx context.Context, in ListAthletesInput) ([]*domain.Athlete, error) {
	if _, err := s.validateAccess(ctx, in.TeamID); err != nil {
		return nil, err
	}

	athletes, err := s.athletes.ListByTeam(ctx, in.TeamID, domain.AthleteListFilter{
		ActiveOnly:     in.ActiveOnly,
		IncludeDeleted: in.IncludeDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}
	return athletes, nil
}

// UpdateAthlete applies the non-nil fields of in to an athlete.
func (s *Service) UpdateAthlete(ctx context.Context, id uuid.UUID, in UpdateAthleteInput) (*domain.Athlete, error) {
	current, err := s.athletes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update athlete get: %w", err)
	}
	userID, err := s.validateAccess(ctx, current.TeamID)
	if err != nil {
		return nil, err
	}

	params := domain.AthleteUpdateParams{
		Active:       in.Active,
		ClassOf:      in.ClassOf,
		ClearClassOf: in.ClearClassOf,
	}
	if in.FirstName != nil {
		name := strings.TrimSpace(*in.FirstName)
		params.FirstName = &name
	}
	if in.LastName != nil {
		name := strings.TrimSpace(*in.LastName)
		params.LastName = &name
	}

	// Validate the post-update shape before touching storage.
	next := *current
	if params.FirstName != nil {
		next.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		next.LastName = *params.LastName
	}
	switch {
	case params.ClearClassOf:
		next.ClassOf = nil
	case params.ClassOf != nil:
		next.ClassOf = params.ClassOf
	}
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("validate athlete update: %w", err)
	}

	var updated *domain.Athlete
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.athletes.Update(ctx, id, params)
		if err != nil {
			return fmt.Errorf("update athlete: %w", err)
		}
		updated = u
		return s.auditAthlete(ctx, userID, id, domain.AuditActionUpdate,
			map[string]any{"first_name": updated.FirstName, "last_name": updated.LastName, "active": updated.Active})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("athlete updated", "athlete_id", id)
	return updated, nil
}

// DeactivateAthlete drops an athlete out of the entry choices without
// removing them from the roster. Existing entries stay valid.
func (s *Service) DeactivateAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	active := false
	return s.UpdateAthlete(ctx, id, UpdateAthleteInput{Active: &active})
}

// DeleteAthlete soft-deletes an athlete. Deletion fails with ErrValidation
// while any live meet entry still references the athlete; deactivate instead.
func (s *Service) DeleteAthlete(ctx context.Context, id uuid.UUID) error {
	current, err := s.athletes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete athlete get: %w", err)
	}
	userID, err := s.validateAccess(ctx, current.TeamID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.athletes.SoftDelete(ctx, id); err != nil {
			return fmt.Errorf("delete athlete: %w", err)
		}
		return s.auditAthlete(ctx, userID, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.Info("athlete deleted", "athlete_id", id)
	return nil
}
