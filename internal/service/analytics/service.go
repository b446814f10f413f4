package analytics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/config"
	"github.com/voicejournal/backend/internal/domain"
)

// analyticsRepo defines the aggregation queries needed by analytics service.
type analyticsRepo interface {
	MoodDistribution(ctx context.Context, userID uuid.UUID) ([]domain.MoodCount, error)
	EntriesPerDayOfWeek(ctx context.Context, userID uuid.UUID) ([]domain.DayOfWeekCount, error)
	EntriesPerMonth(ctx context.Context, userID uuid.UUID, months int) ([]domain.MonthCount, error)
	TopTopics(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error)
	TopTags(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error)
	EntriesOverTime(ctx context.Context, userID uuid.UUID, days int) ([]domain.DayCount, error)
	AvgTranscriptionLength(ctx context.Context, userID uuid.UUID) (float64, error)
	Durations(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Service assembles the analytics report from independent read queries.
type Service struct {
	log  *slog.Logger
	repo analyticsRepo
	cfg  config.AnalyticsConfig
}

// NewService creates a new analytics service instance.
func NewService(logger *slog.Logger, repo analyticsRepo, cfg config.AnalyticsConfig) *Service {
	return &Service{
		log:  logger.With("service", "analytics"),
		repo: repo,
		cfg:  cfg,
	}
}
