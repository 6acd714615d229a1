package roster

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

var _ athleteRepo = &athleteRepoMock{}

type athleteRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	ListByTeamFunc func(ctx context.Context, teamID uuid.UUID, filter domain.AthleteListFilter) ([]*domain.Athlete, error)
	CreateFunc     func(ctx context.Context, a *domain.Athlete) (*domain.Athlete, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.AthleteUpdateParams) (*domain.Athlete, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID    []struct{ ID uuid.UUID }
		ListByTeam []struct {
			TeamID uuid.UUID
			Filter domain.AthleteListFilter
		}
		Create []struct{ Athlete *domain.Athlete }
		Update []struct {
			ID     uuid.UUID
			Params domain.AthleteUpdateParams
		}
		SoftDelete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *athleteRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if mock.GetByIDFunc == nil {
		panic("athleteRepoMock.GetByIDFunc: method is nil but athleteRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *athleteRepoMock) ListByTeam(ctx context.Context, teamID uuid.UUID, filter domain.AthleteListFilter) ([]*domain.Athlete, error) {
	if mock.ListByTeamFunc == nil {
		panic("athleteRepoMock.ListByTeamFunc: method is nil but athleteRepo.ListByTeam was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByTeam = append(mock.calls.ListByTeam, struct {
		TeamID uuid.UUID
		Filter domain.AthleteListFilter
	}{TeamID: teamID, Filter: filter})
	mock.lock.Unlock()
	return mock.ListByTeamFunc(ctx, teamID, filter)
}

func (mock *athleteRepoMock) ListByTeamCalls() []struct {
	TeamID uuid.UUID
	Filter domain.AthleteListFilter
} {
	mock.lock.RLock()
	calls := mock.calls.ListByTeam
	mock.lock.RUnlock()
	return calls
}

func (mock *athleteRepoMock) Create(ctx context.Context, a *domain.Athlete) (*domain.Athlete, error) {
	if mock.CreateFunc == nil {
		panic("athleteRepoMock.CreateFunc: method is nil but athleteRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Athlete *domain.Athlete }{Athlete: a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *athleteRepoMock) CreateCalls() []struct{ Athlete *domain.Athlete } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *athleteRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.AthleteUpdateParams) (*domain.Athlete, error) {
	if mock.UpdateFunc == nil {
		panic("athleteRepoMock.UpdateFunc: method is nil but athleteRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.AthleteUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *athleteRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.AthleteUpdateParams
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *athleteRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("athleteRepoMock.SoftDeleteFunc: method is nil but athleteRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *athleteRepoMock) SoftDeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.SoftDelete
	mock.lock.RUnlock()
	return calls
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
