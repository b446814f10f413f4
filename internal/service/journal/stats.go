package journal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// Stats returns the current user's quick stats: total entries, entries in the
// trailing 7 days, and the current journaling streak.
func (s *Service) Stats(ctx context.Context) (*domain.JournalStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var stats domain.JournalStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.entries.CountByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count entries: %w", err)
		}
		stats.TotalEntries = total
		return nil
	})
	g.Go(func() error {
		week, err := s.entries.CountSince(ctx, userID, time.Now().AddDate(0, 0, -7))
		if err != nil {
			return fmt.Errorf("count week entries: %w", err)
		}
		stats.EntriesThisWeek = week
		return nil
	})
	g.Go(func() error {
		dates, err := s.entries.DistinctEntryDates(ctx, userID)
		if err != nil {
			return fmt.Errorf("load entry dates: %w", err)
		}
		stats.CurrentStreak = calculateStreak(dates)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
