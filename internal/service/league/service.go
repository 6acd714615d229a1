// Package league manages the administrative side of the league: teams, meets,
// meet registrations and coach assignments. All operations here are
// admin-gated by the transport.
package league

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/pkg/ctxutil"
)

type teamRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Create(ctx context.Context, name string) (*domain.Team, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type meetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
	List(ctx context.Context) ([]*domain.Meet, error)
	Create(ctx context.Context, m *domain.Meet) (*domain.Meet, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MeetUpdateParams) (*domain.Meet, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type meetTeamRepo interface {
	Create(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error)
	ListByMeet(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error)
	SoftDelete(ctx context.Context, meetID, teamID uuid.UUID) error
}

type coachRepo interface {
	Create(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error)
	SoftDelete(ctx context.Context, teamID, userID uuid.UUID) error
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

// Service provides league administration operations.
type Service struct {
	teams     teamRepo
	meets     meetRepo
	meetTeams meetTeamRepo
	coaches   coachRepo
	users     userRepo
	audit     auditRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new league service.
func NewService(
	log *slog.Logger,
	teams teamRepo,
	meets meetRepo,
	meetTeams meetTeamRepo,
	coaches coachRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		teams:     teams,
		meets:     meets,
		meetTeams: meetTeams,
		coaches:   coaches,
		users:     users,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "league"),
	}
}

// auditMutation appends an audit record for a league mutation. The acting user
// comes from the request context.
func (s *Service) auditMutation(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return fmt.Errorf("audit %s %s: no user in context: %w", action, entityType, domain.ErrUnauthorized)
	}
	id := entityID
	rec := &domain.AuditRecord{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}
	if err := s.audit.Create(ctx, rec); err != nil {
		return fmt.Errorf("audit %s %s: %w", action, entityType, err)
	}
	return nil
}
