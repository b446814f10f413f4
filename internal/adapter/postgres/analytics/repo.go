// Package analytics implements the read-only aggregation queries that feed
// the analytics service. Every query is scoped to a single user and touches
// only committed data; the service layer runs them concurrently.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/voicejournal/backend/internal/adapter/postgres"
	"github.com/voicejournal/backend/internal/domain"
)

// Repo provides per-user aggregation queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const moodDistributionSQL = `
SELECT mood, count(*) AS count
FROM journal_entries
WHERE user_id = $1 AND mood IS NOT NULL
GROUP BY mood
ORDER BY count DESC`

const entriesPerDayOfWeekSQL = `
SELECT EXTRACT(DOW FROM created_at)::int AS day_of_week, count(*) AS count
FROM journal_entries
WHERE user_id = $1
GROUP BY day_of_week
ORDER BY day_of_week`

const entriesPerMonthSQL = `
SELECT EXTRACT(MONTH FROM created_at)::int AS month, count(*) AS count
FROM journal_entries
WHERE user_id = $1 AND created_at >= now() - make_interval(months => $2)
GROUP BY month
ORDER BY month`

const topTopicsSQL = `
SELECT t.name, SUM(t.percentage)::int AS total_percentage, count(*) AS entry_count
FROM topics t
JOIN journal_entries je ON t.entry_id = je.id
WHERE je.user_id = $1
GROUP BY t.name
ORDER BY total_percentage DESC
LIMIT $2`

const topTagsSQL = `
SELECT t.name, count(*) AS count
FROM tags t
JOIN entry_tags et ON t.id = et.tag_id
JOIN journal_entries je ON et.entry_id = je.id
WHERE je.user_id = $1
GROUP BY t.name
ORDER BY count DESC, t.name ASC
LIMIT $2`

const entriesOverTimeSQL = `
SELECT (created_at AT TIME ZONE 'UTC')::date AS date, count(*) AS count
FROM journal_entries
WHERE user_id = $1 AND created_at >= now() - make_interval(days => $2)
GROUP BY date
ORDER BY date`

const avgLengthSQL = `
SELECT COALESCE(AVG(LENGTH(transcription)), 0)::float8
FROM journal_entries
WHERE user_id = $1`

const durationsSQL = `
SELECT duration
FROM journal_entries
WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// MoodDistribution returns entry counts per mood, most frequent first.
// Entries without a mood are not counted.
func (r *Repo) MoodDistribution(ctx context.Context, userID uuid.UUID) ([]domain.MoodCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, moodDistributionSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("mood distribution: %w", err)
	}
	defer rows.Close()

	result := []domain.MoodCount{}
	for rows.Next() {
		var mc domain.MoodCount
		if err := rows.Scan(&mc.Mood, &mc.Count); err != nil {
			return nil, fmt.Errorf("mood distribution: %w", err)
		}
		result = append(result, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mood distribution: %w", err)
	}

	return result, nil
}

// EntriesPerDayOfWeek returns entry counts grouped by day of week (0=Sunday).
// Days without entries are absent; the service zero-fills them.
func (r *Repo) EntriesPerDayOfWeek(ctx context.Context, userID uuid.UUID) ([]domain.DayOfWeekCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, entriesPerDayOfWeekSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("entries per day of week: %w", err)
	}
	defer rows.Close()

	result := []domain.DayOfWeekCount{}
	for rows.Next() {
		var dc domain.DayOfWeekCount
		if err := rows.Scan(&dc.DayOfWeek, &dc.Count); err != nil {
			return nil, fmt.Errorf("entries per day of week: %w", err)
		}
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("entries per day of week: %w", err)
	}

	return result, nil
}

// EntriesPerMonth returns entry counts grouped by calendar month (1..12)
// for the trailing window of the given number of months.
// Months without entries are absent; the service zero-fills them.
func (r *Repo) EntriesPerMonth(ctx context.Context, userID uuid.UUID, months int) ([]domain.MonthCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, entriesPerMonthSQL, userID, months)
	if err != nil {
		return nil, fmt.Errorf("entries per month: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthCount{}
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("entries per month: %w", err)
		}
		result = append(result, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("entries per month: %w", err)
	}

	return result, nil
}

// TopTopics returns topic names ranked by their summed percentage across
// all of the user's entries, with the number of entries each appears in.
func (r *Repo) TopTopics(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, topTopicsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top topics: %w", err)
	}
	defer rows.Close()

	result := []domain.TopicStat{}
	for rows.Next() {
		var ts domain.TopicStat
		if err := rows.Scan(&ts.Name, &ts.TotalPercentage, &ts.EntryCount); err != nil {
			return nil, fmt.Errorf("top topics: %w", err)
		}
		result = append(result, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top topics: %w", err)
	}

	return result, nil
}

// TopTags returns tag names ranked by usage count, ties broken alphabetically.
func (r *Repo) TopTags(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, topTagsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top tags: %w", err)
	}
	defer rows.Close()

	result := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("top tags: %w", err)
		}
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top tags: %w", err)
	}

	return result, nil
}

// EntriesOverTime returns one point per UTC day with at least one entry in
// the trailing window of the given number of days, oldest first.
// Days without entries are omitted.
func (r *Repo) EntriesOverTime(ctx context.Context, userID uuid.UUID, days int) ([]domain.DayCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, entriesOverTimeSQL, userID, days)
	if err != nil {
		return nil, fmt.Errorf("entries over time: %w", err)
	}
	defer rows.Close()

	result := []domain.DayCount{}
	for rows.Next() {
		var (
			dc   domain.DayCount
			date time.Time
		)
		if err := rows.Scan(&date, &dc.Count); err != nil {
			return nil, fmt.Errorf("entries over time: %w", err)
		}
		dc.Date = date
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("entries over time: %w", err)
	}

	return result, nil
}

// AvgTranscriptionLength returns the mean transcription length in characters,
// 0 when the user has no entries.
func (r *Repo) AvgTranscriptionLength(ctx context.Context, userID uuid.UUID) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var avg float64
	if err := querier.QueryRow(ctx, avgLengthSQL, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg transcription length: %w", err)
	}

	return avg, nil
}

// Durations returns the raw duration strings of all the user's entries.
// Normalization to seconds happens in the service via domain.ParseEntryDuration.
func (r *Repo) Durations(ctx context.Context, userID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, durationsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("durations: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("durations: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("durations: %w", err)
	}

	return result, nil
}
