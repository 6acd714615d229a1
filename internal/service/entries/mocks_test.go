package entries

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laneline/swimreg-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByMeetTeamFunc   func(ctx context.Context, meetID, teamID uuid.UUID) ([]domain.Entry, error)
	CreateIndividualFunc func(ctx context.Context, e *domain.IndividualEntry) (*domain.IndividualEntry, error)
	UpdateIndividualFunc func(ctx context.Context, id uuid.UUID, athleteID uuid.UUID, seed *decimal.Decimal) (*domain.IndividualEntry, error)
	CreateRelayFunc      func(ctx context.Context, e *domain.RelayEntry) (*domain.RelayEntry, error)
	UpdateRelayFunc      func(ctx context.Context, id uuid.UUID, athleteIDs [domain.RelayAthleteCount]uuid.UUID, seed *decimal.Decimal) (*domain.RelayEntry, error)
	SoftDeleteFunc       func(ctx context.Context, e domain.Entry) error

	calls struct {
		ListByMeetTeam   []struct{ MeetID, TeamID uuid.UUID }
		CreateIndividual []struct{ Entry *domain.IndividualEntry }
		UpdateIndividual []struct {
			ID        uuid.UUID
			AthleteID uuid.UUID
			Seed      *decimal.Decimal
		}
		CreateRelay []struct{ Entry *domain.RelayEntry }
		UpdateRelay []struct {
			ID         uuid.UUID
			AthleteIDs [domain.RelayAthleteCount]uuid.UUID
			Seed       *decimal.Decimal
		}
		SoftDelete []struct{ Entry domain.Entry }
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) ListByMeetTeam(ctx context.Context, meetID, teamID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListByMeetTeamFunc == nil {
		panic("entryRepoMock.ListByMeetTeamFunc: method is nil but entryRepo.ListByMeetTeam was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByMeetTeam = append(mock.calls.ListByMeetTeam, struct{ MeetID, TeamID uuid.UUID }{MeetID: meetID, TeamID: teamID})
	mock.lock.Unlock()
	return mock.ListByMeetTeamFunc(ctx, meetID, teamID)
}

func (mock *entryRepoMock) CreateIndividual(ctx context.Context, e *domain.IndividualEntry) (*domain.IndividualEntry, error) {
	if mock.CreateIndividualFunc == nil {
		panic("entryRepoMock.CreateIndividualFunc: method is nil but entryRepo.CreateIndividual was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateIndividual = append(mock.calls.CreateIndividual, struct{ Entry *domain.IndividualEntry }{Entry: e})
	mock.lock.Unlock()
	return mock.CreateIndividualFunc(ctx, e)
}

func (mock *entryRepoMock) CreateIndividualCalls() []struct{ Entry *domain.IndividualEntry } {
	mock.lock.RLock()
	calls := mock.calls.CreateIndividual
	mock.lock.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateIndividual(ctx context.Context, id uuid.UUID, athleteID uuid.UUID, seed *decimal.Decimal) (*domain.IndividualEntry, error) {
	if mock.UpdateIndividualFunc == nil {
		panic("entryRepoMock.UpdateIndividualFunc: method is nil but entryRepo.UpdateIndividual was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateIndividual = append(mock.calls.UpdateIndividual, struct {
		ID        uuid.UUID
		AthleteID uuid.UUID
		Seed      *decimal.Decimal
	}{ID: id, AthleteID: athleteID, Seed: seed})
	mock.lock.Unlock()
	return mock.UpdateIndividualFunc(ctx, id, athleteID, seed)
}

func (mock *entryRepoMock) UpdateIndividualCalls() []struct {
	ID        uuid.UUID
	AthleteID uuid.UUID
	Seed      *decimal.Decimal
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateIndividual
	mock.lock.RUnlock()
	return calls
}

func (mock *entryRepoMock) CreateRelay(ctx context.Context, e *domain.RelayEntry) (*domain.RelayEntry, error) {
	if mock.CreateRelayFunc == nil {
		panic("entryRepoMock.CreateRelayFunc: method is nil but entryRepo.CreateRelay was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateRelay = append(mock.calls.CreateRelay, struct{ Entry *domain.RelayEntry }{Entry: e})
	mock.lock.Unlock()
	return mock.CreateRelayFunc(ctx, e)
}

func (mock *entryRepoMock) CreateRelayCalls() []struct{ Entry *domain.RelayEntry } {
	mock.lock.RLock()
	calls := mock.calls.CreateRelay
	mock.lock.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateRelay(ctx context.Context, id uuid.UUID, athleteIDs [domain.RelayAthleteCount]uuid.UUID, seed *decimal.Decimal) (*domain.RelayEntry, error) {
	if mock.UpdateRelayFunc == nil {
		panic("entryRepoMock.UpdateRelayFunc: method is nil but entryRepo.UpdateRelay was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRelay = append(mock.calls.UpdateRelay, struct {
		ID         uuid.UUID
		AthleteIDs [domain.RelayAthleteCount]uuid.UUID
		Seed       *decimal.Decimal
	}{ID: id, AthleteIDs: athleteIDs, Seed: seed})
	mock.lock.Unlock()
	return mock.UpdateRelayFunc(ctx, id, athleteIDs, seed)
}

func (mock *entryRepoMock) UpdateRelayCalls() []struct {
	ID         uuid.UUID
	AthleteIDs [domain.RelayAthleteCount]uuid.UUID
	Seed       *decimal.Decimal
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateRelay
	mock.lock.RUnlock()
	return calls
}

func (mock *entryRepoMock) SoftDelete(ctx context.Context, e domain.Entry) error {
	if mock.SoftDeleteFunc == nil {
		panic("entryRepoMock.SoftDeleteFunc: method is nil but entryRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ Entry domain.Entry }{Entry: e})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, e)
}

func (mock *entryRepoMock) SoftDeleteCalls() []struct{ Entry domain.Entry } {
	mock.lock.RLock()
	calls := mock.calls.SoftDelete
	mock.lock.RUnlock()
	return calls
}

var _ athleteRepo = &athleteRepoMock{}

type athleteRepoMock struct {
	ListActiveByTeamFunc func(ctx context.Context, teamID uuid.UUID) ([]*domain.Athlete, error)

	calls struct {
		ListActiveByTeam []struct{ TeamID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *athleteRepoMock) ListActiveByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Athlete, error) {
	if mock.ListActiveByTeamFunc == nil {
		panic("athleteRepoMock.ListActiveByTeamFunc: method is nil but athleteRepo.ListActiveByTeam was just called")
	}
	mock.lock.Lock()
	mock.calls.ListActiveByTeam = append(mock.calls.ListActiveByTeam, struct{ TeamID uuid.UUID }{TeamID: teamID})
	mock.lock.Unlock()
	return mock.ListActiveByTeamFunc(ctx, teamID)
}

var _ meetRepo = &meetRepoMock{}

type meetRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Meet, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *meetRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meet, error) {
	if mock.GetByIDFunc == nil {
		panic("meetRepoMock.GetByIDFunc: method is nil but meetRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

var _ teamRepo = &teamRepoMock{}

type teamRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Team, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *teamRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	if mock.GetByIDFunc == nil {
		panic("teamRepoMock.GetByIDFunc: method is nil but teamRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

var _ meetTeamRepo = &meetTeamRepoMock{}

type meetTeamRepoMock struct {
	ExistsFunc func(ctx context.Context, meetID, teamID uuid.UUID) (bool, error)

	calls struct {
		Exists []struct{ MeetID, TeamID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *meetTeamRepoMock) Exists(ctx context.Context, meetID, teamID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("meetTeamRepoMock.ExistsFunc: method is nil but meetTeamRepo.Exists was just called")
	}
	mock.lock.Lock()
	mock.calls.Exists = append(mock.calls.Exists, struct{ MeetID, TeamID uuid.UUID }{MeetID: meetID, TeamID: teamID})
	mock.lock.Unlock()
	return mock.ExistsFunc(ctx, meetID, teamID)
}

var _ coachRepo = &coachRepoMock{}

type coachRepoMock struct {
	ExistsFunc func(ctx context.Context, userID, teamID uuid.UUID) (bool, error)

	calls struct {
		Exists []struct{ UserID, TeamID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *coachRepoMock) Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("coachRepoMock.ExistsFunc: method is nil but coachRepo.Exists was just called")
	}
	mock.lock.Lock()
	mock.calls.Exists = append(mock.calls.Exists, struct{ UserID, TeamID uuid.UUID }{UserID: userID, TeamID: teamID})
	mock.lock.Unlock()
	return mock.ExistsFunc(ctx, userID, teamID)
}

func (mock *coachRepoMock) ExistsCalls() []struct{ UserID, TeamID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.Exists
	mock.lock.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc func(ctx context.Context, rec *domain.AuditRecord) error

	calls struct {
		Create []struct{ Rec *domain.AuditRecord }
	}
	lock sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, rec *domain.AuditRecord) error {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Rec *domain.AuditRecord }{Rec: rec})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *auditRepoMock) CreateCalls() []struct{ Rec *domain.AuditRecord } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	calls := mock.calls.RunInTx
	mock.lock.RUnlock()
	return calls
}
