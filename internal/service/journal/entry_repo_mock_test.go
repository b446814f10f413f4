package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc              func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	FindFunc                 func(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.JournalEntry, error)
	CountFunc                func(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (int, error)
	CreateFunc               func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	UpdateFunc               func(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.JournalEntry, error)
	DeleteFunc               func(ctx context.Context, userID, entryID uuid.UUID) error
	DistinctEntryDatesFunc   func(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	CountByUserFunc          func(ctx context.Context, userID uuid.UUID) (int, error)
	CountSinceFunc           func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	GetTopicsByEntryIDFunc   func(ctx context.Context, entryID uuid.UUID) ([]domain.Topic, error)
	GetInsightsByEntryIDFunc func(ctx context.Context, entryID uuid.UUID) ([]domain.Insight, error)
	InsertTopicsFunc         func(ctx context.Context, entryID uuid.UUID, topics []domain.Topic) error
	InsertInsightsFunc       func(ctx context.Context, entryID uuid.UUID, insights []domain.Insight) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		Find []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EntryFilter
		}
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EntryFilter
		}
		Create []struct {
			Ctx   context.Context
			Entry *domain.JournalEntry
		}
		Update []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
			Params  domain.EntryUpdateParams
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		DistinctEntryDates []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		GetTopicsByEntryID []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetInsightsByEntryID []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		InsertTopics []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			Topics  []domain.Topic
		}
		InsertInsights []struct {
			Ctx      context.Context
			EntryID  uuid.UUID
			Insights []domain.Insight
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *entryRepoMock) Find(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	if mock.FindFunc == nil {
		panic("entryRepoMock.FindFunc: method is nil but entryRepo.Find was just called")
	}
	mock.lock.Lock()
	mock.calls.Find = append(mock.calls.Find, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EntryFilter
	}{Ctx: ctx, UserID: userID, Filter: filter})
	mock.lock.Unlock()
	return mock.FindFunc(ctx, userID, filter)
}

func (mock *entryRepoMock) FindCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.EntryFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Find
}

func (mock *entryRepoMock) Count(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("entryRepoMock.CountFunc: method is nil but entryRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EntryFilter
	}{Ctx: ctx, UserID: userID, Filter: filter})
	mock.lock.Unlock()
	return mock.CountFunc(ctx, userID, filter)
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Entry *domain.JournalEntry
	}{Ctx: ctx, Entry: entry})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.JournalEntry
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *entryRepoMock) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.JournalEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
		Params  domain.EntryUpdateParams
	}{Ctx: ctx, UserID: userID, EntryID: entryID, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, entryID, params)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
	Params  domain.EntryUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *entryRepoMock) DistinctEntryDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	if mock.DistinctEntryDatesFunc == nil {
		panic("entryRepoMock.DistinctEntryDatesFunc: method is nil but entryRepo.DistinctEntryDates was just called")
	}
	mock.lock.Lock()
	mock.calls.DistinctEntryDates = append(mock.calls.DistinctEntryDates, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.DistinctEntryDatesFunc(ctx, userID)
}

func (mock *entryRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("entryRepoMock.CountByUserFunc: method is nil but entryRepo.CountByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *entryRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("entryRepoMock.CountSinceFunc: method is nil but entryRepo.CountSince was just called")
	}
	mock.lock.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since})
	mock.lock.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *entryRepoMock) CountSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountSince
}

func (mock *entryRepoMock) GetTopicsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Topic, error) {
	if mock.GetTopicsByEntryIDFunc == nil {
		panic("entryRepoMock.GetTopicsByEntryIDFunc: method is nil but entryRepo.GetTopicsByEntryID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTopicsByEntryID = append(mock.calls.GetTopicsByEntryID, struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetTopicsByEntryIDFunc(ctx, entryID)
}

func (mock *entryRepoMock) GetInsightsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Insight, error) {
	if mock.GetInsightsByEntryIDFunc == nil {
		panic("entryRepoMock.GetInsightsByEntryIDFunc: method is nil but entryRepo.GetInsightsByEntryID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetInsightsByEntryID = append(mock.calls.GetInsightsByEntryID, struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID})
	mock.lock.Unlock()
	return mock.GetInsightsByEntryIDFunc(ctx, entryID)
}

func (mock *entryRepoMock) InsertTopics(ctx context.Context, entryID uuid.UUID, topics []domain.Topic) error {
	if mock.InsertTopicsFunc == nil {
		panic("entryRepoMock.InsertTopicsFunc: method is nil but entryRepo.InsertTopics was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertTopics = append(mock.calls.InsertTopics, struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Topics  []domain.Topic
	}{Ctx: ctx, EntryID: entryID, Topics: topics})
	mock.lock.Unlock()
	return mock.InsertTopicsFunc(ctx, entryID, topics)
}

func (mock *entryRepoMock) InsertTopicsCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	Topics  []domain.Topic
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertTopics
}

func (mock *entryRepoMock) InsertInsights(ctx context.Context, entryID uuid.UUID, insights []domain.Insight) error {
	if mock.InsertInsightsFunc == nil {
		panic("entryRepoMock.InsertInsightsFunc: method is nil but entryRepo.InsertInsights was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertInsights = append(mock.calls.InsertInsights, struct {
		Ctx      context.Context
		EntryID  uuid.UUID
		Insights []domain.Insight
	}{Ctx: ctx, EntryID: entryID, Insights: insights})
	mock.lock.Unlock()
	return mock.InsertInsightsFunc(ctx, entryID, insights)
}

func (mock *entryRepoMock) InsertInsightsCalls() []struct {
	Ctx      context.Context
	EntryID  uuid.UUID
	Insights []domain.Insight
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertInsights
}
