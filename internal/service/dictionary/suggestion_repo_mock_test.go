package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.EditSuggestion, error)
	CreateFunc  func(ctx context.Context, s *domain.EditSuggestion) (*domain.EditSuggestion, error)
	ListFunc    func(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error)
	ResolveFunc func(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.EditSuggestion, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Create []struct {
			Suggestion *domain.EditSuggestion
		}
		List []struct {
			Status  *domain.SuggestionStatus
			EntryID *uuid.UUID
		}
		Resolve []struct {
			ID     uuid.UUID
			Status domain.SuggestionStatus
		}
	}
	lock sync.RWMutex
}

func (mock *suggestionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.EditSuggestion, error) {
	if mock.GetByIDFunc == nil {
		panic("suggestionRepoMock.GetByIDFunc: method is nil but suggestionRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *suggestionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.EditSuggestion) (*domain.EditSuggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Suggestion *domain.EditSuggestion }{Suggestion: s})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct{ Suggestion *domain.EditSuggestion } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *suggestionRepoMock) List(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error) {
	if mock.ListFunc == nil {
		panic("suggestionRepoMock.ListFunc: method is nil but suggestionRepo.List was just called")
	}
	callInfo := struct {
		Status  *domain.SuggestionStatus
		EntryID *uuid.UUID
	}{Status: status, EntryID: entryID}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, status, entryID)
}

func (mock *suggestionRepoMock) ListCalls() []struct {
	Status  *domain.SuggestionStatus
	EntryID *uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *suggestionRepoMock) Resolve(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.EditSuggestion, error) {
	if mock.ResolveFunc == nil {
		panic("suggestionRepoMock.ResolveFunc: method is nil but suggestionRepo.Resolve was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.SuggestionStatus
	}{ID: id, Status: status}
	mock.lock.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lock.Unlock()
	return mock.ResolveFunc(ctx, id, status)
}

func (mock *suggestionRepoMock) ResolveCalls() []struct {
	ID     uuid.UUID
	Status domain.SuggestionStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Resolve
}
