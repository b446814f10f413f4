package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetOrCreateFunc        func(ctx context.Context, name string) (*domain.Tag, error)
	LinkEntryFunc          func(ctx context.Context, entryID, tagID uuid.UUID) error
	UnlinkAllFromEntryFunc func(ctx context.Context, entryID uuid.UUID) error
	GetNamesByEntryIDFunc  func(ctx context.Context, entryID uuid.UUID) ([]string, error)
	GetNamesByEntryIDsFunc func(ctx context.Context, entryIDs []uuid.UUID) ([]domain.EntryTag, error)
	ListWithCountsFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)

	calls struct {
		GetOrCreate []struct {
			Ctx  context.Context
			Name string
		}
		LinkEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			TagID   uuid.UUID
		}
		UnlinkAllFromEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetNamesByEntryID []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetNamesByEntryIDs []struct {
			Ctx      context.Context
			EntryIDs []uuid.UUID
		}
		ListWithCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tagRepoMock) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	if mock.GetOrCreateFunc == nil {
		panic("tagRepoMock.GetOrCreateFunc: method is nil but tagRepo.GetOrCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name})
	mock.lock.Unlock()
	return mock.GetOrCreateFunc(ctx, name)
}

func (mock *tagRepoMock) GetOrCreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetOrCreate
}

func (mock *tagRepoMock) LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error {
	if mock.LinkEntryFunc == nil {
		panic("tagRepoMock.LinkEntryFunc: method is nil but tagRepo.LinkEntry was just called")
	}
	mock.lock.Lock()
	mock.calls.LinkEntry = append(mock.calls.LinkEntry, struct {
		Ctx     context.Context
		EntryID uuid.UUID
		TagID   uuid.UUID
	}{Ctx: ctx, EntryID: entryID, TagID: tagID})
	mock.lock.Unlock()
	return mock.LinkEntryFunc(ctx, entryID, tagID)
}

func (mock *tagRepoMock) LinkEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	TagID   uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.LinkEntry
}

func (mock *tagRepoMock) UnlinkAllFromEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.UnlinkAllFromEntryFunc == nil {
		panic("tagRepoMock.UnlinkAllFromEntryFunc: method is nil but tagRepo.UnlinkAllFromEntry was just called")
	}
	mock.lock.Lock()
	mock.calls.UnlinkAllFromEntry = append(mock.calls.UnlinkAllFromEntry, struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID})
	mock.lock.Unlock()
	return mock.UnlinkAllFromEntryFunc(ctx, entryID)
}

func (mock *tagRepoMock) UnlinkAllFromEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UnlinkAllFromEntry
}

func (mock *tagRepoMock) GetNamesByEntryID(ctx context.Context, entryID uuid.UUID) ([]string, error) {
	if mock.GetNamesByEntryIDFunc == nil {
		panic("tagRepoMock.GetNamesByEntryIDFunc: method is nil but tagRepo.GetNamesByEntryID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetNamesByEntryID = append(mock.calls.GetNamesByEntryID, struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetNamesByEntryIDFunc(ctx, entryID)
}

func (mock *tagRepoMock) GetNamesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.EntryTag, error) {
	if mock.GetNamesByEntryIDsFunc == nil {
		panic("tagRepoMock.GetNamesByEntryIDsFunc: method is nil but tagRepo.GetNamesByEntryIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.GetNamesByEntryIDs = append(mock.calls.GetNamesByEntryIDs, struct {
		Ctx      context.Context
		EntryIDs []uuid.UUID
	}{Ctx: ctx, EntryIDs: entryIDs})
	mock.lock.Unlock()
	return mock.GetNamesByEntryIDsFunc(ctx, entryIDs)
}

func (mock *tagRepoMock) GetNamesByEntryIDsCalls() []struct {
	Ctx      context.Context
	EntryIDs []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetNamesByEntryIDs
}

func (mock *tagRepoMock) ListWithCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error) {
	if mock.ListWithCountsFunc == nil {
		panic("tagRepoMock.ListWithCountsFunc: method is nil but tagRepo.ListWithCounts was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWithCounts = append(mock.calls.ListWithCounts, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.ListWithCountsFunc(ctx, userID)
}
