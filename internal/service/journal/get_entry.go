package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// GetEntry returns one of the current user's entries enriched with its tags,
// topics and insights.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.enrichEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// enrichEntry loads the entry's tags, topics and insights concurrently.
func (s *Service) enrichEntry(ctx context.Context, entry *domain.JournalEntry) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tags, err := s.tags.GetNamesByEntryID(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		entry.Tags = tags
		return nil
	})
	g.Go(func() error {
		topics, err := s.entries.GetTopicsByEntryID(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("load topics: %w", err)
		}
		entry.Topics = topics
		return nil
	})
	g.Go(func() error {
		insights, err := s.entries.GetInsightsByEntryID(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("load insights: %w", err)
		}
		entry.Insights = insights
		return nil
	})

	return g.Wait()
}
