package audit

import (
	"context"
	"net/netip"
	"sync"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/domain"
)

var _ logStore = &logStoreMock{}

type logStoreMock struct {
	CreateFunc             func(ctx context.Context, e *domain.LogEntry) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error)
	SearchFunc             func(ctx context.Context, f domain.LogFilter) (*domain.Collection, error)
	CountFunc              func(ctx context.Context, f domain.LogFilter) (int64, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	PruneFunc              func(ctx context.Context, createdBefore *int64) (int64, error)
	UniqueScopesFunc       func(ctx context.Context) ([]string, error)
	ReplaceSubjectIDFunc   func(ctx context.Context, oldID, newID uuid.UUID) (int64, error)
	ReplaceObjectIDFunc    func(ctx context.Context, oldID, newID uuid.UUID) (int64, error)
	UpdateRemoteOriginFunc func(ctx context.Context, id uuid.UUID, origin netip.Addr) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.LogEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx context.Context
			F   domain.LogFilter
		}
		Count []struct {
			Ctx context.Context
			F   domain.LogFilter
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Prune []struct {
			Ctx           context.Context
			CreatedBefore *int64
		}
		UniqueScopes []struct {
			Ctx context.Context
		}
		ReplaceSubjectID []struct {
			Ctx   context.Context
			OldID uuid.UUID
			NewID uuid.UUID
		}
		ReplaceObjectID []struct {
			Ctx   context.Context
			OldID uuid.UUID
			NewID uuid.UUID
		}
		UpdateRemoteOrigin []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Origin netip.Addr
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockSearch             sync.RWMutex
	lockCount              sync.RWMutex
	lockDelete             sync.RWMutex
	lockPrune              sync.RWMutex
	lockUniqueScopes       sync.RWMutex
	lockReplaceSubjectID   sync.RWMutex
	lockReplaceObjectID    sync.RWMutex
	lockUpdateRemoteOrigin sync.RWMutex
}

func (mock *logStoreMock) Create(ctx context.Context, e *domain.LogEntry) error {
	if mock.CreateFunc == nil {
		panic("logStoreMock.CreateFunc: method is nil but logStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.LogEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *logStoreMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.LogEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.LogEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("logStoreMock.GetByIDFunc: method is nil but logStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *logStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *logStoreMock) Search(ctx context.Context, f domain.LogFilter) (*domain.Collection, error) {
	if mock.SearchFunc == nil {
		panic("logStoreMock.SearchFunc: method is nil but logStore.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LogFilter
	}{Ctx: ctx, F: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *logStoreMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.LogFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *logStoreMock) Count(ctx context.Context, f domain.LogFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("logStoreMock.CountFunc: method is nil but logStore.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LogFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *logStoreMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.LogFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *logStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("logStoreMock.DeleteFunc: method is nil but logStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *logStoreMock) Prune(ctx context.Context, createdBefore *int64) (int64, error) {
	if mock.PruneFunc == nil {
		panic("logStoreMock.PruneFunc: method is nil but logStore.Prune was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CreatedBefore *int64
	}{Ctx: ctx, CreatedBefore: createdBefore}
	mock.lockPrune.Lock()
	mock.calls.Prune = append(mock.calls.Prune, callInfo)
	mock.lockPrune.Unlock()
	return mock.PruneFunc(ctx, createdBefore)
}

func (mock *logStoreMock) PruneCalls() []struct {
	Ctx           context.Context
	CreatedBefore *int64
} {
	mock.lockPrune.RLock()
	calls := mock.calls.Prune
	mock.lockPrune.RUnlock()
	return calls
}

func (mock *logStoreMock) UniqueScopes(ctx context.Context) ([]string, error) {
	if mock.UniqueScopesFunc == nil {
		panic("logStoreMock.UniqueScopesFunc: method is nil but logStore.UniqueScopes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockUniqueScopes.Lock()
	mock.calls.UniqueScopes = append(mock.calls.UniqueScopes, callInfo)
	mock.lockUniqueScopes.Unlock()
	return mock.UniqueScopesFunc(ctx)
}

func (mock *logStoreMock) UniqueScopesCalls() []struct {
	Ctx context.Context
} {
	mock.lockUniqueScopes.RLock()
	calls := mock.calls.UniqueScopes
	mock.lockUniqueScopes.RUnlock()
	return calls
}

func (mock *logStoreMock) ReplaceSubjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error) {
	if mock.ReplaceSubjectIDFunc == nil {
		panic("logStoreMock.ReplaceSubjectIDFunc: method is nil but logStore.ReplaceSubjectID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OldID uuid.UUID
		NewID uuid.UUID
	}{Ctx: ctx, OldID: oldID, NewID: newID}
	mock.lockReplaceSubjectID.Lock()
	mock.calls.ReplaceSubjectID = append(mock.calls.ReplaceSubjectID, callInfo)
	mock.lockReplaceSubjectID.Unlock()
	return mock.ReplaceSubjectIDFunc(ctx, oldID, newID)
}

func (mock *logStoreMock) ReplaceSubjectIDCalls() []struct {
	Ctx   context.Context
	OldID uuid.UUID
	NewID uuid.UUID
} {
	mock.lockReplaceSubjectID.RLock()
	calls := mock.calls.ReplaceSubjectID
	mock.lockReplaceSubjectID.RUnlock()
	return calls
}

func (mock *logStoreMock) ReplaceObjectID(ctx context.Context, oldID, newID uuid.UUID) (int64, error) {
	if mock.ReplaceObjectIDFunc == nil {
		panic("logStoreMock.ReplaceObjectIDFunc: method is nil but logStore.ReplaceObjectID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OldID uuid.UUID
		NewID uuid.UUID
	}{Ctx: ctx, OldID: oldID, NewID: newID}
	mock.lockReplaceObjectID.Lock()
	mock.calls.ReplaceObjectID = append(mock.calls.ReplaceObjectID, callInfo)
	mock.lockReplaceObjectID.Unlock()
	return mock.ReplaceObjectIDFunc(ctx, oldID, newID)
}

func (mock *logStoreMock) ReplaceObjectIDCalls() []struct {
	Ctx   context.Context
	OldID uuid.UUID
	NewID uuid.UUID
} {
	mock.lockReplaceObjectID.RLock()
	calls := mock.calls.ReplaceObjectID
	mock.lockReplaceObjectID.RUnlock()
	return calls
}

func (mock *logStoreMock) UpdateRemoteOrigin(ctx context.Context, id uuid.UUID, origin netip.Addr) error {
	if mock.UpdateRemoteOriginFunc == nil {
		panic("logStoreMock.UpdateRemoteOriginFunc: method is nil but logStore.UpdateRemoteOrigin was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Origin netip.Addr
	}{Ctx: ctx, ID: id, Origin: origin}
	mock.lockUpdateRemoteOrigin.Lock()
	mock.calls.UpdateRemoteOrigin = append(mock.calls.UpdateRemoteOrigin, callInfo)
	mock.lockUpdateRemoteOrigin.Unlock()
	return mock.UpdateRemoteOriginFunc(ctx, id, origin)
}

func (mock *logStoreMock) UpdateRemoteOriginCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Origin netip.Addr
} {
	mock.lockUpdateRemoteOrigin.RLock()
	calls := mock.calls.UpdateRemoteOrigin
	mock.lockUpdateRemoteOrigin.RUnlock()
	return calls
}
