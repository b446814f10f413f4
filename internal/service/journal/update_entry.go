package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// UpdateEntry applies a partial update to one of the current user's entries.
// A non-nil Tags field replaces the entry's whole tag set.
func (s *Service) UpdateEntry(ctx context.Context, entryID uuid.UUID, input UpdateEntryInput) (*domain.JournalEntry, error) {
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

	// Step 3: Update the entry and replace tags atomically. The repository
	// update checks ownership before touching anything.
	var updated *domain.JournalEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.entries.Update(ctx, userID, entryID, domain.EntryUpdateParams{
			Title:         input.Title,
			Transcription: input.Transcription,
			AudioURL:      input.AudioURL,
			Duration:      input.Duration,
			Mood:          mood,
		})
		if err != nil {
			return err
		}

		if input.Tags != nil {
			if err := s.tags.UnlinkAllFromEntry(ctx, entryID); err != nil {
				return fmt.Errorf("unlink tags: %w", err)
			}
			if err := s.linkTags(ctx, entryID, normalizeTags(*input.Tags)); err != nil {
				return fmt.Errorf("link tags: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Step 4: Return the entry with its sub-records loaded.
	if err := s.enrichEntry(ctx, updated); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", entryID.String()),
		slog.String("user_id", userID.String()))

	return updated, nil
}
