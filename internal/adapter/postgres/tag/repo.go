// Package tag implements the Tag repository using PostgreSQL.
// Tag names are global and deduplicated; entries reference them via the
// entry_tags join table.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/voicejournal/backend/internal/adapter/postgres"
	"github.com/voicejournal/backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// The DO UPDATE arm makes RETURNING yield the existing row on conflict,
// so concurrent callers with the same name all get the same id.
const getOrCreateSQL = `
INSERT INTO tags (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name`

const linkEntrySQL = `
INSERT INTO entry_tags (entry_id, tag_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const unlinkAllSQL = `DELETE FROM entry_tags WHERE entry_id = $1`

const getNamesByEntryIDSQL = `
SELECT t.name
FROM entry_tags et
JOIN tags t ON et.tag_id = t.id
WHERE et.entry_id = $1
ORDER BY t.name`

const getNamesByEntryIDsSQL = `
SELECT et.entry_id, t.name
FROM entry_tags et
JOIN tags t ON et.tag_id = t.id
WHERE et.entry_id = ANY($1::uuid[])
ORDER BY et.entry_id, t.name`

const listWithCountsSQL = `
SELECT t.name, count(*) AS entry_count
FROM tags t
JOIN entry_tags et ON et.tag_id = t.id
JOIN journal_entries e ON e.id = et.entry_id
WHERE e.user_id = $1
GROUP BY t.name
ORDER BY entry_count DESC, t.name ASC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetOrCreate returns the tag with the given name, creating it if missing.
// The upsert is a single statement, so concurrent calls for the same name
// never race into a duplicate.
func (r *Repo) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	if err := querier.QueryRow(ctx, getOrCreateSQL, name).Scan(&t.ID, &t.Name); err != nil {
		return nil, mapError(err, "tag", uuid.Nil)
	}

	return &t, nil
}

// LinkEntry attaches a tag to an entry. Idempotent.
func (r *Repo) LinkEntry(ctx context.Context, entryID, tagID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, linkEntrySQL, entryID, tagID); err != nil {
		return mapError(err, "entry_tag", entryID)
	}

	return nil
}

// UnlinkAllFromEntry removes every tag link from an entry.
// Not an error if the entry has no tags.
func (r *Repo) UnlinkAllFromEntry(ctx context.Context, entryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllSQL, entryID); err != nil {
		return mapError(err, "entry_tag", entryID)
	}

	return nil
}

// GetNamesByEntryID returns the tag names of an entry sorted alphabetically.
// Returns an empty slice (not nil) when the entry has no tags.
func (r *Repo) GetNamesByEntryID(ctx context.Context, entryID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getNamesByEntryIDSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("get tags by entry_id: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("get tags by entry_id: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tags by entry_id: %w", err)
	}

	return names, nil
}

// GetNamesByEntryIDs returns tag names for multiple entries in one query.
// Results include EntryID for grouping by the caller.
func (r *Repo) GetNamesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.EntryTag, error) {
	if len(entryIDs) == 0 {
		return []domain.EntryTag{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getNamesByEntryIDsSQL, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by entry_ids: %w", err)
	}
	defer rows.Close()

	result := []domain.EntryTag{}
	for rows.Next() {
		var et domain.EntryTag
		if err := rows.Scan(&et.EntryID, &et.Name); err != nil {
			return nil, fmt.Errorf("get tags by entry_ids: %w", err)
		}
		result = append(result, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tags by entry_ids: %w", err)
	}

	return result, nil
}

// ListWithCounts returns the tags used by a user's entries with usage counts,
// most used first, ties broken alphabetically.
// Returns an empty slice (not nil) when the user has no tagged entries.
func (r *Repo) ListWithCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listWithCountsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags with counts: %w", err)
	}
	defer rows.Close()

	result := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("list tags with counts: %w", err)
		}
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags with counts: %w", err)
	}

	return result, nil
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
