package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	MoodDistributionFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.MoodCount, error)
	EntriesPerDayOfWeekFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.DayOfWeekCount, error)
	EntriesPerMonthFunc        func(ctx context.Context, userID uuid.UUID, months int) ([]domain.MonthCount, error)
	TopTopicsFunc              func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error)
	TopTagsFunc                func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error)
	EntriesOverTimeFunc        func(ctx context.Context, userID uuid.UUID, days int) ([]domain.DayCount, error)
	AvgTranscriptionLengthFunc func(ctx context.Context, userID uuid.UUID) (float64, error)
	DurationsFunc              func(ctx context.Context, userID uuid.UUID) ([]string, error)

	calls struct {
		MoodDistribution []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		EntriesPerDayOfWeek []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		EntriesPerMonth []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Months int
		}
		TopTopics []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		TopTags []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		EntriesOverTime []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Days   int
		}
		AvgTranscriptionLength []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Durations []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *analyticsRepoMock) MoodDistribution(ctx context.Context, userID uuid.UUID) ([]domain.MoodCount, error) {
	if mock.MoodDistributionFunc == nil {
		panic("analyticsRepoMock.MoodDistributionFunc: method is nil but analyticsRepo.MoodDistribution was just called")
	}
	mock.lock.Lock()
	mock.calls.MoodDistribution = append(mock.calls.MoodDistribution, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.MoodDistributionFunc(ctx, userID)
}

func (mock *analyticsRepoMock) EntriesPerDayOfWeek(ctx context.Context, userID uuid.UUID) ([]domain.DayOfWeekCount, error) {
	if mock.EntriesPerDayOfWeekFunc == nil {
		panic("analyticsRepoMock.EntriesPerDayOfWeekFunc: method is nil but analyticsRepo.EntriesPerDayOfWeek was just called")
	}
	mock.lock.Lock()
	mock.calls.EntriesPerDayOfWeek = append(mock.calls.EntriesPerDayOfWeek, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.EntriesPerDayOfWeekFunc(ctx, userID)
}

func (mock *analyticsRepoMock) EntriesPerMonth(ctx context.Context, userID uuid.UUID, months int) ([]domain.MonthCount, error) {
	if mock.EntriesPerMonthFunc == nil {
		panic("analyticsRepoMock.EntriesPerMonthFunc: method is nil but analyticsRepo.EntriesPerMonth was just called")
	}
	mock.lock.Lock()
	mock.calls.EntriesPerMonth = append(mock.calls.EntriesPerMonth, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Months int
	}{Ctx: ctx, UserID: userID, Months: months})
	mock.lock.Unlock()
	return mock.EntriesPerMonthFunc(ctx, userID, months)
}

func (mock *analyticsRepoMock) EntriesPerMonthCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Months int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EntriesPerMonth
}

func (mock *analyticsRepoMock) TopTopics(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error) {
	if mock.TopTopicsFunc == nil {
		panic("analyticsRepoMock.TopTopicsFunc: method is nil but analyticsRepo.TopTopics was just called")
	}
	mock.lock.Lock()
	mock.calls.TopTopics = append(mock.calls.TopTopics, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit})
	mock.lock.Unlock()
	return mock.TopTopicsFunc(ctx, userID, limit)
}

func (mock *analyticsRepoMock) TopTopicsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TopTopics
}

func (mock *analyticsRepoMock) TopTags(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error) {
	if mock.TopTagsFunc == nil {
		panic("analyticsRepoMock.TopTagsFunc: method is nil but analyticsRepo.TopTags was just called")
	}
	mock.lock.Lock()
	mock.calls.TopTags = append(mock.calls.TopTags, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit})
	mock.lock.Unlock()
	return mock.TopTagsFunc(ctx, userID, limit)
}

func (mock *analyticsRepoMock) EntriesOverTime(ctx context.Context, userID uuid.UUID, days int) ([]domain.DayCount, error) {
	if mock.EntriesOverTimeFunc == nil {
		panic("analyticsRepoMock.EntriesOverTimeFunc: method is nil but analyticsRepo.EntriesOverTime was just called")
	}
	mock.lock.Lock()
	mock.calls.EntriesOverTime = append(mock.calls.EntriesOverTime, struct {
		Ctx    context.Context
		UserID uuid.UUID
		Days   int
	}{Ctx: ctx, UserID: userID, Days: days})
	mock.lock.Unlock()
	return mock.EntriesOverTimeFunc(ctx, userID, days)
}

func (mock *analyticsRepoMock) EntriesOverTimeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Days   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EntriesOverTime
}

func (mock *analyticsRepoMock) AvgTranscriptionLength(ctx context.Context, userID uuid.UUID) (float64, error) {
	if mock.AvgTranscriptionLengthFunc == nil {
		panic("analyticsRepoMock.AvgTranscriptionLengthFunc: method is nil but analyticsRepo.AvgTranscriptionLength was just called")
	}
	mock.lock.Lock()
	mock.calls.AvgTranscriptionLength = append(mock.calls.AvgTranscriptionLength, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.AvgTranscriptionLengthFunc(ctx, userID)
}

func (mock *analyticsRepoMock) Durations(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if mock.DurationsFunc == nil {
		panic("analyticsRepoMock.DurationsFunc: method is nil but analyticsRepo.Durations was just called")
	}
	mock.lock.Lock()
	mock.calls.Durations = append(mock.calls.Durations, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.DurationsFunc(ctx, userID)
}
