package journal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/config"
	"github.com/voicejournal/backend/internal/domain"
)

// entryRepo defines the journal entry repository interface needed by journal service.
type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	Find(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.JournalEntry, error)
	Count(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (int, error)
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	DistinctEntryDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	GetTopicsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Topic, error)
	GetInsightsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Insight, error)
	InsertTopics(ctx context.Context, entryID uuid.UUID, topics []domain.Topic) error
	InsertInsights(ctx context.Context, entryID uuid.UUID, insights []domain.Insight) error
}

// tagRepo defines the tag repository interface needed by journal service.
type tagRepo interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
	LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error
	UnlinkAllFromEntry(ctx context.Context, entryID uuid.UUID) error
	GetNamesByEntryID(ctx context.Context, entryID uuid.UUID) ([]string, error)
	GetNamesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.EntryTag, error)
	ListWithCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)
}

// txManager defines the transaction manager interface needed by journal service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements journal entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	tags    tagRepo
	tx      txManager
	cfg     config.JournalConfig
}

// NewService creates a new journal service instance.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	tags tagRepo,
	tx txManager,
	cfg config.JournalConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		tags:    tags,
		tx:      tx,
		cfg:     cfg,
	}
}

// linkTags upserts every tag name and links it to the entry. Linking is
// idempotent, so retried transactions do not produce duplicate rows.
func (s *Service) linkTags(ctx context.Context, entryID uuid.UUID, names []string) error {
	for _, name := range names {
		t, err := s.tags.GetOrCreate(ctx, name)
		if err != nil {
			return err
		}
		if err := s.tags.LinkEntry(ctx, entryID, t.ID); err != nil {
			return err
		}
	}
	return nil
}

// normalizeTags trims whitespace, drops empties and deduplicates while
// preserving the caller's order.
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
