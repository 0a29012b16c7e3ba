package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SearchFunc      func(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error)
	ListPendingFunc func(ctx context.Context, limit int) ([]*domain.Entry, error)
	CreateFunc      func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	BulkCreateFunc  func(ctx context.Context, entries []*domain.Entry) (int, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, patch domain.EntryPatch, expectedVersion *int) (*domain.Entry, error)
	VerifyFunc      func(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.Entry, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Search []struct {
			Filter domain.EntryFilter
		}
		ListPending []struct {
			Limit int
		}
		Create []struct {
			Entry *domain.Entry
		}
		BulkCreate []struct {
			Entries []*domain.Entry
		}
		Update []struct {
			ID              uuid.UUID
			Patch           domain.EntryPatch
			ExpectedVersion *int
		}
		Verify []struct {
			ID              uuid.UUID
			ExpectedVersion *int
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *entryRepoMock) Search(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error) {
	if mock.SearchFunc == nil {
		panic("entryRepoMock.SearchFunc: method is nil but entryRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct{ Filter domain.EntryFilter }{Filter: f})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *entryRepoMock) SearchCalls() []struct{ Filter domain.EntryFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *entryRepoMock) ListPending(ctx context.Context, limit int) ([]*domain.Entry, error) {
	if mock.ListPendingFunc == nil {
		panic("entryRepoMock.ListPendingFunc: method is nil but entryRepo.ListPending was just called")
	}
	mock.lock.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, struct{ Limit int }{Limit: limit})
	mock.lock.Unlock()
	return mock.ListPendingFunc(ctx, limit)
}

func (mock *entryRepoMock) ListPendingCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListPending
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Entry *domain.Entry }{Entry: e})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct{ Entry *domain.Entry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *entryRepoMock) BulkCreate(ctx context.Context, entries []*domain.Entry) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("entryRepoMock.BulkCreateFunc: method is nil but entryRepo.BulkCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, struct{ Entries []*domain.Entry }{Entries: entries})
	mock.lock.Unlock()
	return mock.BulkCreateFunc(ctx, entries)
}

func (mock *entryRepoMock) BulkCreateCalls() []struct{ Entries []*domain.Entry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BulkCreate
}

func (mock *entryRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch, expectedVersion *int) (*domain.Entry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		ID              uuid.UUID
		Patch           domain.EntryPatch
		ExpectedVersion *int
	}{ID: id, Patch: patch, ExpectedVersion: expectedVersion}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, patch, expectedVersion)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	ID              uuid.UUID
	Patch           domain.EntryPatch
	ExpectedVersion *int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *entryRepoMock) Verify(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.Entry, error) {
	if mock.VerifyFunc == nil {
		panic("entryRepoMock.VerifyFunc: method is nil but entryRepo.Verify was just called")
	}
	callInfo := struct {
		ID              uuid.UUID
		ExpectedVersion *int
	}{ID: id, ExpectedVersion: expectedVersion}
	mock.lock.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lock.Unlock()
	return mock.VerifyFunc(ctx, id, expectedVersion)
}

func (mock *entryRepoMock) VerifyCalls() []struct {
	ID              uuid.UUID
	ExpectedVersion *int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Verify
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}
