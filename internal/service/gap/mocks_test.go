package gap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

var (
	_ gapRepo   = &gapRepoMock{}
	_ entryRepo = &entryRepoMock{}
	_ txManager = &txManagerMock{}
)

type gapRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.VocabularyGap, error)
	RecordFunc  func(ctx context.Context, g *domain.VocabularyGap) (*domain.VocabularyGap, error)
	ListFunc    func(ctx context.Context, f domain.GapFilter) ([]*domain.VocabularyGap, error)
	SuggestFunc func(ctx context.Context, id uuid.UUID, candidate string) (*domain.VocabularyGap, error)
	ApproveFunc func(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.VocabularyGap, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Record []struct {
			Gap *domain.VocabularyGap
		}
		List []struct {
			Filter domain.GapFilter
		}
		Suggest []struct {
			ID        uuid.UUID
			Candidate string
		}
		Approve []struct {
			ID              uuid.UUID
			ExpectedVersion *int
		}
	}
	lock sync.RWMutex
}

func (mock *gapRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyGap, error) {
	if mock.GetByIDFunc == nil {
		panic("gapRepoMock.GetByIDFunc: method is nil but gapRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *gapRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *gapRepoMock) Record(ctx context.Context, g *domain.VocabularyGap) (*domain.VocabularyGap, error) {
	if mock.RecordFunc == nil {
		panic("gapRepoMock.RecordFunc: method is nil but gapRepo.Record was just called")
	}
	mock.lock.Lock()
	mock.calls.Record = append(mock.calls.Record, struct{ Gap *domain.VocabularyGap }{Gap: g})
	mock.lock.Unlock()
	return mock.RecordFunc(ctx, g)
}

func (mock *gapRepoMock) RecordCalls() []struct{ Gap *domain.VocabularyGap } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Record
}

func (mock *gapRepoMock) List(ctx context.Context, f domain.GapFilter) ([]*domain.VocabularyGap, error) {
	if mock.ListFunc == nil {
		panic("gapRepoMock.ListFunc: method is nil but gapRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.GapFilter }{Filter: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *gapRepoMock) ListCalls() []struct{ Filter domain.GapFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *gapRepoMock) Suggest(ctx context.Context, id uuid.UUID, candidate string) (*domain.VocabularyGap, error) {
	if mock.SuggestFunc == nil {
		panic("gapRepoMock.SuggestFunc: method is nil but gapRepo.Suggest was just called")
	}
	callInfo := struct {
		ID        uuid.UUID
		Candidate string
	}{ID: id, Candidate: candidate}
	mock.lock.Lock()
	mock.calls.Suggest = append(mock.calls.Suggest, callInfo)
	mock.lock.Unlock()
	return mock.SuggestFunc(ctx, id, candidate)
}

func (mock *gapRepoMock) SuggestCalls() []struct {
	ID        uuid.UUID
	Candidate string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Suggest
}

func (mock *gapRepoMock) Approve(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.VocabularyGap, error) {
	if mock.ApproveFunc == nil {
		panic("gapRepoMock.ApproveFunc: method is nil but gapRepo.Approve was just called")
	}
	callInfo := struct {
		ID              uuid.UUID
		ExpectedVersion *int
	}{ID: id, ExpectedVersion: expectedVersion}
	mock.lock.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lock.Unlock()
	return mock.ApproveFunc(ctx, id, expectedVersion)
}

func (mock *gapRepoMock) ApproveCalls() []struct {
	ID              uuid.UUID
	ExpectedVersion *int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Approve
}

type entryRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)

	calls struct {
		Create []struct {
			Entry *domain.Entry
		}
	}
	lock sync.RWMutex
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

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
