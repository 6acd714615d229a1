// Package entries implements the meet entry grid: rendering per-event entry
// slots for a team and reconciling a submitted grid against persisted entries.
package entries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laneline/swimreg-backend/internal/config"
	"github.com/laneline/swimreg-backend/internal/domain"
)

type entryRepo interface {
	ListByMeetTeam(ctx context.Context, meetID, teamID uuid.UUID) ([]domain.Entry, error)
	CreateIndividual(ctx context.Context, e *domain.IndividualEntry) (*domain.IndividualEntry, error)
	UpdateIndividual(ctx context.Context, id uuid.UUID, athleteID uuid.UUID, seed *decimal.Decimal) (*domain.IndividualEntry, error)
	CreateRelay(ctx context.Context, e *domain.RelayEntry) (*domain.RelayEntry, error)
	UpdateRelay(ctx context.Context, id uuid.UUID, athleteIDs [domain.RelayAthleteCount]uuid.UUID, seed *decimal.Decimal) (*domain.RelayEntry, error)
	SoftDelete(ctx context.Context, e domain.Entry) error
}

type athleteRepo interface {
	ListActiveByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Athlete, error)
}

type meetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
}

type teamRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
}

type meetTeamRepo interface {
	Exists(ctx context.Context, meetID, teamID uuid.UUID) (bool, error)
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

// Service provides the meet entry grid operations.
type Service struct {
	entries   entryRepo
	athletes  athleteRepo
	meets     meetRepo
	teams     teamRepo
	meetTeams meetTeamRepo
	coaches   coachRepo
	users     userRepo
	audit     auditRepo
	tx        txManager
	cfg       config.RegistrationConfig
	log       *slog.Logger
}

// NewService creates a new entries service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	athletes athleteRepo,
	meets meetRepo,
	teams teamRepo,
	meetTeams meetTeamRepo,
	coaches coachRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
	cfg config.RegistrationConfig,
) *Service {
	return &Service{
		entries:   entries,
		athletes:  athletes,
		meets:     meets,
		teams:     teams,
		meetTeams: meetTeams,
		coaches:   coaches,
		users:     users,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "entries"),
	}
}

// slotsPerEvent returns the number of numbered slots an event section carries.
func (s *Service) slotsPerEvent(event domain.Event) int {
	if event.Kind() == domain.EventKindRelay {
		return s.cfg.EntriesPerRelayEvent
	}
	return s.cfg.EntriesPerIndividualEvent
}
