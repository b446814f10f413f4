// Package entry implements the JournalEntry repository using PostgreSQL.
// Topics and insights live here too: they share the entry's lifecycle and
// have no operations of their own outside analytics.
package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/voicejournal/backend/internal/adapter/postgres"
	"github.com/voicejournal/backend/internal/domain"
)

// psql builds queries with PostgreSQL $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = "id, user_id, title, transcription, audio_url, duration, mood, created_at, updated_at"

// ---------------------------------------------------------------------------
// Raw SQL for static queries
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE id = $1 AND user_id = $2`

const createSQL = `
INSERT INTO journal_entries (user_id, title, transcription, audio_url, duration, mood)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + entryColumns

const updateSQL = `
UPDATE journal_entries
SET title = $3, transcription = $4, audio_url = $5, duration = $6, mood = $7, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + entryColumns

const deleteSQL = `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`

const distinctDatesSQL = `
SELECT DISTINCT (created_at AT TIME ZONE 'UTC')::date AS entry_date
FROM journal_entries
WHERE user_id = $1
ORDER BY entry_date DESC`

const countByUserSQL = `SELECT count(*) FROM journal_entries WHERE user_id = $1`

const countSinceSQL = `SELECT count(*) FROM journal_entries WHERE user_id = $1 AND created_at >= $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key with user_id filter.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, entryID, userID)
	e, err := scanEntryRow(row)
	if err != nil {
		return nil, mapError(err, "journal_entry", entryID)
	}

	return e, nil
}

// Find returns a page of entries matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches; a page past the end
// of the result set is empty, not an error.
func (r *Repo) Find(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	offset := (filter.Page - 1) * filter.Limit
	if offset < 0 {
		offset = 0
	}

	query := applyFilter(psql.Select(strings.Split(entryColumns, ", ")...).From("journal_entries"), userID, filter).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer rows.Close()

	result, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	return result, nil
}

// Count returns the total number of entries matching the filter, ignoring pagination.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := applyFilter(psql.Select("count(*)").From("journal_entries"), userID, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

// DistinctEntryDates returns the distinct UTC calendar dates on which the user
// created entries, most recent first. Used by the streak calculator.
func (r *Repo) DistinctEntryDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, distinctDatesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("distinct entry dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("distinct entry dates: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct entry dates: %w", err)
	}

	if dates == nil {
		dates = []time.Time{}
	}

	return dates, nil
}

// CountByUser returns the total number of entries for a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries by user: %w", err)
	}

	return count, nil
}

// CountSince returns the number of entries created at or after the given time.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries since: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.JournalEntry
// with server-generated ID and timestamps.
func (r *Repo) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		e.UserID, e.Title, e.Transcription, e.AudioURL, e.Duration, moodToPtr(e.Mood),
	)
	created, err := scanEntryRow(row)
	if err != nil {
		return nil, mapError(err, "journal_entry", uuid.Nil)
	}

	return created, nil
}

// Update modifies an entry using partial update params and returns the updated row.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.EntryUpdateParams) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// First get the current row to apply partial updates.
	current, err := r.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		current.Title = *params.Title
	}
	if params.Transcription != nil {
		current.Transcription = *params.Transcription
	}
	if params.AudioURL != nil {
		current.AudioURL = *params.AudioURL
	}
	if params.Duration != nil {
		current.Duration = *params.Duration
	}
	if params.Mood != nil {
		current.Mood = params.Mood
	}

	row := querier.QueryRow(ctx, updateSQL,
		entryID, userID,
		current.Title, current.Transcription, current.AudioURL, current.Duration, moodToPtr(current.Mood),
	)
	updated, err := scanEntryRow(row)
	if err != nil {
		return nil, mapError(err, "journal_entry", entryID)
	}

	return updated, nil
}

// Delete removes an entry. CASCADE deletes its tags links, topics, and insights.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, entryID, userID)
	if err != nil {
		return mapError(err, "journal_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Topics and insights
// ---------------------------------------------------------------------------

const getTopicsSQL = `
SELECT id, entry_id, name, percentage
FROM topics
WHERE entry_id = $1
ORDER BY percentage DESC, name`

const getInsightsSQL = `
SELECT id, entry_id, title, description
FROM insights
WHERE entry_id = $1
ORDER BY title`

const insertTopicsSQL = `
INSERT INTO topics (entry_id, name, percentage)
SELECT $1, unnest($2::text[]), unnest($3::int[])`

const insertInsightsSQL = `
INSERT INTO insights (entry_id, title, description)
SELECT $1, unnest($2::text[]), unnest($3::text[])`

// GetTopicsByEntryID returns the topics of an entry, heaviest first.
// Returns an empty slice (not nil) when the entry has no topics.
func (r *Repo) GetTopicsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getTopicsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("get topics by entry_id: %w", err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.EntryID, &t.Name, &t.Percentage); err != nil {
			return nil, fmt.Errorf("get topics by entry_id: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get topics by entry_id: %w", err)
	}

	return topics, nil
}

// GetInsightsByEntryID returns the insights of an entry ordered by title.
// Returns an empty slice (not nil) when the entry has no insights.
func (r *Repo) GetInsightsByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.Insight, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getInsightsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("get insights by entry_id: %w", err)
	}
	defer rows.Close()

	insights := []domain.Insight{}
	for rows.Next() {
		var in domain.Insight
		if err := rows.Scan(&in.ID, &in.EntryID, &in.Title, &in.Description); err != nil {
			return nil, fmt.Errorf("get insights by entry_id: %w", err)
		}
		insights = append(insights, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get insights by entry_id: %w", err)
	}

	return insights, nil
}

// InsertTopics attaches topics to an entry in a single statement.
func (r *Repo) InsertTopics(ctx context.Context, entryID uuid.UUID, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	names := make([]string, len(topics))
	percentages := make([]int, len(topics))
	for i, t := range topics {
		names[i] = t.Name
		percentages[i] = t.Percentage
	}

	if _, err := querier.Exec(ctx, insertTopicsSQL, entryID, names, percentages); err != nil {
		return mapError(err, "topic", entryID)
	}

	return nil
}

// InsertInsights attaches insights to an entry in a single statement.
func (r *Repo) InsertInsights(ctx context.Context, entryID uuid.UUID, insights []domain.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	titles := make([]string, len(insights))
	descriptions := make([]string, len(insights))
	for i, in := range insights {
		titles[i] = in.Title
		descriptions[i] = in.Description
	}

	if _, err := querier.Exec(ctx, insertInsightsSQL, entryID, titles, descriptions); err != nil {
		return mapError(err, "insight", entryID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Filter building
// ---------------------------------------------------------------------------

// applyFilter adds the WHERE conditions shared by Find and Count.
func applyFilter(b squirrel.SelectBuilder, userID uuid.UUID, f domain.EntryFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"user_id": userID})

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + escapeLike(*f.Search) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"transcription": pattern},
		})
	}

	if f.Tag != nil && *f.Tag != "" {
		b = b.Where(squirrel.Expr(
			`id IN (SELECT et.entry_id FROM entry_tags et JOIN tags t ON et.tag_id = t.id WHERE t.name = ?)`,
			*f.Tag,
		))
	}

	return b
}

// escapeLike escapes LIKE/ILIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanEntryRow scans a single row into a domain.JournalEntry.
func scanEntryRow(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e    domain.JournalEntry
		mood *string
	)

	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Transcription,
		&e.AudioURL, &e.Duration, &mood, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if mood != nil {
		m := domain.Mood(*mood)
		e.Mood = &m
	}

	return &e, nil
}

// scanEntries scans multiple rows into a domain.JournalEntry slice.
func scanEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var result []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntryRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.JournalEntry{}
	}

	return result, nil
}

// moodToPtr converts a *domain.Mood to a *string for binding (nil -> NULL).
func moodToPtr(m *domain.Mood) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
