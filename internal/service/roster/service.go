// Package roster manages a team's athletes. Coaches of the team (and admins)
// may edit the roster; the transport resolves authorization through the same
// coach relation the entry grid uses.
package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/pkg/ctxutil"
)

type athleteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, filter domain.AthleteListFilter) ([]*domain.Athlete, error)
	Create(ctx context.Context, a *domain.Athlete) (*domain.Athlete, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AthleteUpdateParams) (*domain.Athlete, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type teamRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
}

type coachRepo interface {
	Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditRepo interface {
	Create(ctx context.Context, rec *domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides roster management operations.
type Service struct {
	athletes athleteRepo
	teams    teamRepo
	coaches  coachRepo
	users    userRepo
	audit    auditRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new roster service.
func NewService(
	log *slog.Logger,
	athletes athleteRepo,
	teams teamRepo,
	coaches coachRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		athletes: athletes,
		teams:    teams,
		coaches:  coaches,
		users:    users,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "roster"),
	}
}

// validateAccess checks that the acting user may edit the team's roster:
// the team must exist (ErrNotFound otherwise) and the user must be an admin
// or a coach of the team (ErrForbidden otherwise).
func (s *Service) validateAccess(ctx context.Context, teamID uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, fmt.Errorf("roster access: no user in context: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("roster access get user: %w", err)
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return uuid.Nil, fmt.Errorf("roster access get team: %w", err)
	}

	if user.IsAdmin() {
		return userID, nil
	}

	isCoach, err := s.coaches.Exists(ctx, userID, teamID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("roster access check coach: %w", err)
	}
	if !isCoach {
		return uuid.Nil, fmt.Errorf("user %s does not coach team %s: %w", userID, teamID, domain.ErrForbidden)
	}
	return userID, nil
}

func (s *Service) auditAthlete(ctx context.Context, userID, athleteID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	id := athleteID
	rec := &domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeAthlete,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}
	if err := s.audit.Create(ctx, rec); err != nil {
		return fmt.Errorf("audit %s athlete: %w", action, err)
	}
	return nil
}
