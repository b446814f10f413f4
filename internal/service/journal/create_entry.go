package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// CreateEntry saves a journal entry together with its tags, topics and
// insights in one transaction.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	// Step 1: Resolve the current user.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Validate input.
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var mood *domain.Mood
	if input.Mood != nil {
		m := domain.Mood(*input.Mood)
		mood = &m
	}

	topics := make([]domain.Topic, len(input.Topics))
	for i, t := range input.Topics {
		topics[i] = domain.Topic{Name: t.Name, Percentage: t.Percentage}
	}
	insights := make([]domain.Insight, len(input.Insights))
	for i, in := range input.Insights {
		insights[i] = domain.Insight{Title: in.Title, Description: in.Description}
	}
	tagNames := normalizeTags(input.Tags)

	// Step 3: Persist the entry and all sub-records atomically.
	var created *domain.JournalEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.entries.Create(ctx, &domain.JournalEntry{
			UserID:        userID,
			Title:         input.Title,
			Transcription: input.Transcription,
			AudioURL:      input.AudioURL,
			Duration:      input.Duration,
			Mood:          mood,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		if err := s.linkTags(ctx, created.ID, tagNames); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}
		if err := s.entries.InsertTopics(ctx, created.ID, topics); err != nil {
			return fmt.Errorf("insert topics: %w", err)
		}
		if err := s.entries.InsertInsights(ctx, created.ID, insights); err != nil {
			return fmt.Errorf("insert insights: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Step 4: Return the entry with its sub-records loaded.
	if err := s.enrichEntry(ctx, created); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}
