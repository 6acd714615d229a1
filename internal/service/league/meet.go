package league

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// MaxMeetNameLen bounds meet names in characters.
const MaxMeetNameLen = 200

// CreateMeetInput holds the data for creating a meet.
type CreateMeetInput struct {
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	EntriesOpen bool
}

// Validate checks the input for errors.
func (in *CreateMeetInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if len(name) > MaxMeetNameLen {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", MaxMeetNameLen),
		})
	}
	if in.StartDate != nil && in.EndDate != nil && in.StartDate.After(*in.EndDate) {
		errs = append(errs, domain.FieldError{
			Field:   "start_date",
			Message: "start date must not be after end date",
		})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMeetInput holds the mutable fields of a meet; nil fields are left
// unchanged.
type UpdateMeetInput struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	EntriesOpen *bool
}

// Validate checks the input for errors.
func (in *UpdateMeetInput) Validate() error {
	var errs []domain.FieldError
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "name must not be blank"})
		}
		if len(name) > MaxMeetNameLen {
			errs = append(errs, domain.FieldError{
				Field:   "name",
				Message: fmt.Sprintf("name must be at most %d characters", MaxMeetNameLen),
			})
		}
	}
	if in.StartDate != nil && in.EndDate != nil && in.StartDate.After(*in.EndDate) {
		errs = append(errs, domain.FieldError{
			Field:   "start_date",
			Message: "start date must not be after end date",
		})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMeet creates a meet. Entries start closed unless the input opens them.
func (s *Service) CreateMeet(ctx context.Context, in CreateMeetInput) (*domain.Meet, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate create meet input: %w", err)
	}

	var meet *domain.Meet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.meets.Create(ctx, &domain.Meet{
			Name:        strings.TrimSpace(in.Name),
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			EntriesOpen: in.EntriesOpen,
		})
		if err != nil {
			return fmt.Errorf("create meet: %w", err)
		}
		meet = created
		return s.auditMutation(ctx, domain.EntityTypeMeet, meet.ID, domain.AuditActionCreate,
			map[string]any{"name": meet.Name, "entries_open": meet.EntriesOpen})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("meet created", "meet_id", meet.ID, "name", meet.Name)
	return meet, nil
}

// GetMeet returns a meet by id.
func (s *Service) GetMeet(ctx context.Context, id uuid.UUID) (*domain.Meet, error) {
	meet, err := s.meets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meet: %w", err)
	}
	return meet, nil
}

// ListMeets returns every non-deleted meet, soonest start date first.
func (s *Service) ListMeets(ctx context.Context) ([]*domain.Meet, error) {
	meets, err := s.meets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meets: %w", err)
	}
	return meets, nil
}

// UpdateMeet applies the non-nil fields of in to a meet.
func (s *Service) UpdateMeet(ctx context.Context, id uuid.UUID, in UpdateMeetInput) (*domain.Meet, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate update meet input: %w", err)
	}

	params := domain.MeetUpdateParams{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		EntriesOpen: in.EntriesOpen,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		params.Name = &name
	}

	var meet *domain.Meet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err := s.meets.Update(ctx, id, params)
		if err != nil {
			return fmt.Errorf("update meet: %w", err)
		}
		meet = updated
		return s.auditMutation(ctx, domain.EntityTypeMeet, meet.ID, domain.AuditActionUpdate,
			map[string]any{"name": meet.Name, "entries_open": meet.EntriesOpen})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("meet updated", "meet_id", meet.ID)
	return meet, nil
}

// OpenEntries makes the meet accept entry grid edits.
func (s *Service) OpenEntries(ctx context.Context, id uuid.UUID) (*domain.Meet, error) {
	return s.setEntriesOpen(ctx, id, true)
}

// CloseEntries stops the meet from accepting entry grid edits. Grids stay
// viewable.
func (s *Service) CloseEntries(ctx context.Context, id uuid.UUID) (*domain.Meet, error) {
	return s.setEntriesOpen(ctx, id, false)
}

func (s *Service) setEntriesOpen(ctx context.Context, id uuid.UUID, open bool) (*domain.Meet, error) {
	meet, err := s.UpdateMeet(ctx, id, UpdateMeetInput{EntriesOpen: &open})
	if err != nil {
		return nil, err
	}
	return meet, nil
}

// DeleteMeet soft-deletes a meet.
func (s *Service) DeleteMeet(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.meets.SoftDelete(ctx, id); err != nil {
			return fmt.Errorf("delete meet: %w", err)
		}
		return s.auditMutation(ctx, domain.EntityTypeMeet, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.Info("meet deleted", "meet_id", id)
	return nil
}
