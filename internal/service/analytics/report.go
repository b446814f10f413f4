package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/voicejournal/backend/internal/domain"
	"github.com/voicejournal/backend/pkg/ctxutil"
)

// charsPerWord is the fixed ratio used to turn the average transcription
// length into a words-per-entry estimate.
const charsPerWord = 5

// Report runs the aggregation queries for the current user concurrently and
// merges them into one document. The queries are independent reads; an entry
// written mid-aggregation may be visible to some sub-results and not others.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	// Step 1: Resolve the current user.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Fan out the read queries. The first failure cancels the rest.
	var (
		moods     []domain.MoodCount
		dow       []domain.DayOfWeekCount
		months    []domain.MonthCount
		topics    []domain.TopicStat
		tags      []domain.TagCount
		series    []domain.DayCount
		avgLength float64
		durations []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if moods, err = s.repo.MoodDistribution(gctx, userID); err != nil {
			return fmt.Errorf("mood distribution: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if dow, err = s.repo.EntriesPerDayOfWeek(gctx, userID); err != nil {
			return fmt.Errorf("day of week histogram: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if months, err = s.repo.EntriesPerMonth(gctx, userID, s.cfg.TrailingMonths); err != nil {
			return fmt.Errorf("month histogram: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if topics, err = s.repo.TopTopics(gctx, userID, s.cfg.TopLimit); err != nil {
			return fmt.Errorf("top topics: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if tags, err = s.repo.TopTags(gctx, userID, s.cfg.TopLimit); err != nil {
			return fmt.Errorf("top tags: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if series, err = s.repo.EntriesOverTime(gctx, userID, s.cfg.TimeSeriesDays); err != nil {
			return fmt.Errorf("entries over time: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if avgLength, err = s.repo.AvgTranscriptionLength(gctx, userID); err != nil {
			return fmt.Errorf("avg transcription length: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if durations, err = s.repo.Durations(gctx, userID); err != nil {
			return fmt.Errorf("durations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: Shape the merged document.
	report := &Report{
		MoodDistribution:    make([]MoodBucket, 0, len(moods)),
		EntriesPerDayOfWeek: zeroFillDaysOfWeek(dow),
		EntriesPerMonth:     zeroFillMonths(months),
		TopTopics:           make([]TopicAggregate, 0, len(topics)),
		TopTags:             tags,
		EntriesOverTime:     make([]TimePoint, 0, len(series)),
		AvgEntryLength:      int(math.Round(avgLength)),
		WordsPerEntry:       int(math.Round(avgLength / charsPerWord)),
		TotalTimeSeconds:    s.sumDurations(ctx, durations),
	}
	for _, m := range moods {
		report.MoodDistribution = append(report.MoodDistribution, MoodBucket{Mood: m.Mood, Count: m.Count})
	}
	for _, t := range topics {
		avg := 0
		if t.EntryCount > 0 {
			avg = int(math.Round(float64(t.TotalPercentage) / float64(t.EntryCount)))
		}
		report.TopTopics = append(report.TopTopics, TopicAggregate{
			Name:          t.Name,
			AvgPercentage: avg,
			EntryCount:    t.EntryCount,
		})
	}
	for _, p := range series {
		report.EntriesOverTime = append(report.EntriesOverTime, TimePoint{Date: p.Date, Count: p.Count})
	}
	if report.TopTags == nil {
		report.TopTags = []domain.TagCount{}
	}

	return report, nil
}

// sumDurations normalizes the stored duration strings to seconds and sums
// them. Values that cannot be parsed contribute zero.
func (s *Service) sumDurations(ctx context.Context, durations []string) int {
	total := 0
	skipped := 0
	for _, raw := range durations {
		secs, err := domain.ParseEntryDuration(raw)
		if err != nil {
			skipped++
			continue
		}
		total += secs
	}
	if skipped > 0 {
		s.log.WarnContext(ctx, "unparseable entry durations skipped",
			slog.Int("count", skipped))
	}
	return total
}

// zeroFillDaysOfWeek returns all 7 weekday buckets, 0=Sunday.
func zeroFillDaysOfWeek(counts []domain.DayOfWeekCount) []DayOfWeekBucket {
	buckets := make([]DayOfWeekBucket, 7)
	for i := range buckets {
		buckets[i].DayOfWeek = i
	}
	for _, c := range counts {
		if c.DayOfWeek >= 0 && c.DayOfWeek < 7 {
			buckets[c.DayOfWeek].Count = c.Count
		}
	}
	return buckets
}

// zeroFillMonths returns all 12 calendar month buckets, 1=January.
func zeroFillMonths(counts []domain.MonthCount) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = i + 1
	}
	for _, c := range counts {
		if c.Month >= 1 && c.Month <= 12 {
			buckets[c.Month-1].Count = c.Count
		}
	}
	return buckets
}
