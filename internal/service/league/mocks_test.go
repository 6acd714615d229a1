package league

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
)

var _ teamRepo = &teamRepoMock{}

type teamRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	ListFunc       func(ctx context.Context) ([]*domain.Team, error)
	CreateFunc     func(ctx context.Context, name string) (*domain.Team, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID    []struct{ ID uuid.UUID }
		List       []struct{}
		Create     []struct{ Name string }
		SoftDelete []struct{ ID uuid.UUID }
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

func (mock *teamRepoMock) List(ctx context.Context) ([]*domain.Team, error) {
	if mock.ListFunc == nil {
		panic("teamRepoMock.ListFunc: method is nil but teamRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *teamRepoMock) Create(ctx context.Context, name string) (*domain.Team, error) {
	if mock.CreateFunc == nil {
		panic("teamRepoMock.CreateFunc: method is nil but teamRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *teamRepoMock) CreateCalls() []struct{ Name string } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *teamRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("teamRepoMock.SoftDeleteFunc: method is nil but teamRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *teamRepoMock) SoftDeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.SoftDelete
	mock.lock.RUnlock()
	return calls
}

var _ meetRepo = &meetRepoMock{}

type meetRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
	ListFunc       func(ctx context.Context) ([]*domain.Meet, error)
	CreateFunc     func(ctx context.Context, m *domain.Meet) (*domain.Meet, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.MeetUpdateParams) (*domain.Meet, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct{ ID uuid.UUID }
		List    []struct{}
		Create  []struct{ Meet *domain.Meet }
		Update  []struct {
			ID     uuid.UUID
			Params domain.MeetUpdateParams
		}
		SoftDelete []struct{ ID uuid.UUID }
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

func (mock *meetRepoMock) List(ctx context.Context) ([]*domain.Meet, error) {
	if mock.ListFunc == nil {
		panic("meetRepoMock.ListFunc: method is nil but meetRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *meetRepoMock) Create(ctx context.Context, m *domain.Meet) (*domain.Meet, error) {
	if mock.CreateFunc == nil {
		panic("meetRepoMock.CreateFunc: method is nil but meetRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Meet *domain.Meet }{Meet: m})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *meetRepoMock) CreateCalls() []struct{ Meet *domain.Meet } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *meetRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MeetUpdateParams) (*domain.Meet, error) {
	if mock.UpdateFunc == nil {
		panic("meetRepoMock.UpdateFunc: method is nil but meetRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.MeetUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *meetRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.MeetUpdateParams
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *meetRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("meetRepoMock.SoftDeleteFunc: method is nil but meetRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

var _ meetTeamRepo = &meetTeamRepoMock{}

type meetTeamRepoMock struct {
	CreateFunc     func(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error)
	ListByMeetFunc func(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error)
	ListByTeamFunc func(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error)
	SoftDeleteFunc func(ctx context.Context, meetID, teamID uuid.UUID) error

	calls struct {
		Create     []struct{ MeetID, TeamID uuid.UUID }
		ListByMeet []struct{ MeetID uuid.UUID }
		ListByTeam []struct{ TeamID uuid.UUID }
		SoftDelete []struct{ MeetID, TeamID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *meetTeamRepoMock) Create(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error) {
	if mock.CreateFunc == nil {
		panic("meetTeamRepoMock.CreateFunc: method is nil but meetTeamRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ MeetID, TeamID uuid.UUID }{MeetID: meetID, TeamID: teamID})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, meetID, teamID)
}

func (mock *meetTeamRepoMock) CreateCalls() []struct{ MeetID, TeamID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *meetTeamRepoMock) ListByMeet(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error) {
	if mock.ListByMeetFunc == nil {
		panic("meetTeamRepoMock.ListByMeetFunc: method is nil but meetTeamRepo.ListByMeet was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByMeet = append(mock.calls.ListByMeet, struct{ MeetID uuid.UUID }{MeetID: meetID})
	mock.lock.Unlock()
	return mock.ListByMeetFunc(ctx, meetID)
}

func (mock *meetTeamRepoMock) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error) {
	if mock.ListByTeamFunc == nil {
		panic("meetTeamRepoMock.ListByTeamFunc: method is nil but meetTeamRepo.ListByTeam was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByTeam = append(mock.calls.ListByTeam, struct{ TeamID uuid.UUID }{TeamID: teamID})
	mock.lock.Unlock()
	return mock.ListByTeamFunc(ctx, teamID)
}

func (mock *meetTeamRepoMock) SoftDelete(ctx context.Context, meetID, teamID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("meetTeamRepoMock.SoftDeleteFunc: method is nil but meetTeamRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ MeetID, TeamID uuid.UUID }{MeetID: meetID, TeamID: teamID})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, meetID, teamID)
}

func (mock *meetTeamRepoMock) SoftDeleteCalls() []struct{ MeetID, TeamID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.SoftDelete
	mock.lock.RUnlock()
	return calls
}

var _ coachRepo = &coachRepoMock{}

type coachRepoMock struct {
	CreateFunc     func(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error)
	SoftDeleteFunc func(ctx context.Context, teamID, userID uuid.UUID) error

	calls struct {
		Create     []struct{ TeamID, UserID uuid.UUID }
		SoftDelete []struct{ TeamID, UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *coachRepoMock) Create(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error) {
	if mock.CreateFunc == nil {
		panic("coachRepoMock.CreateFunc: method is nil but coachRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ TeamID, UserID uuid.UUID }{TeamID: teamID, UserID: userID})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, teamID, userID)
}

func (mock *coachRepoMock) CreateCalls() []struct{ TeamID, UserID uuid.UUID } {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *coachRepoMock) SoftDelete(ctx context.Context, teamID, userID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("coachRepoMock.SoftDeleteFunc: method is nil but coachRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ TeamID, UserID uuid.UUID }{TeamID: teamID, UserID: userID})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, teamID, userID)
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
