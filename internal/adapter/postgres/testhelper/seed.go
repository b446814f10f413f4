package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voicejournal/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// EntrySpec describes overrides for SeedEntryWith. Zero values get defaults.
type EntrySpec struct {
	Title         string
	Transcription string
	AudioURL      string
	Duration      string
	Mood          *domain.Mood
	CreatedAt     time.Time
}

// SeedEntry creates a journal entry with default values.
// Returns a filled domain.JournalEntry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.JournalEntry {
	t.Helper()
	return SeedEntryWith(t, pool, userID, EntrySpec{})
}

// SeedEntryWith creates a journal entry applying the given overrides.
// Returns a filled domain.JournalEntry.
func SeedEntryWith(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, spec EntrySpec) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()

	if spec.Title == "" {
		spec.Title = "Entry " + suffix
	}
	if spec.Transcription == "" {
		spec.Transcription = "Today I recorded a short note about testing " + suffix
	}
	if spec.AudioURL == "" {
		spec.AudioURL = "https://example.com/audio/" + suffix + ".mp3"
	}
	if spec.Duration == "" {
		spec.Duration = "1:00"
	}
	if spec.CreatedAt.IsZero() {
		spec.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	entry := domain.JournalEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         spec.Title,
		Transcription: spec.Transcription,
		AudioURL:      spec.AudioURL,
		Duration:      spec.Duration,
		Mood:          spec.Mood,
		CreatedAt:     spec.CreatedAt,
		UpdatedAt:     spec.CreatedAt,
	}

	var mood *string
	if entry.Mood != nil {
		s := string(*entry.Mood)
		mood = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, title, transcription, audio_url, duration, mood, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.UserID, entry.Title, entry.Transcription, entry.AudioURL, entry.Duration, mood, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntryWith insert entry: %v", err)
	}

	return entry
}

// SeedTag creates a tag with the given name, or returns the existing one.
func SeedTag(t *testing.T, pool *pgxpool.Pool, name string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	tag := domain.Tag{Name: name}
	err := pool.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name,
	).Scan(&tag.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTag upsert tag: %v", err)
	}

	return tag
}

// TagEntry links an entry to a tag. Idempotent.
func TagEntry(t *testing.T, pool *pgxpool.Pool, entryID, tagID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO entry_tags (entry_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		entryID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: TagEntry insert entry_tag: %v", err)
	}
}

// SeedTopic creates a topic row for an entry.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, entryID uuid.UUID, name string, percentage int) domain.Topic {
	t.Helper()
	ctx := context.Background()

	topic := domain.Topic{
		ID:         uuid.New(),
		EntryID:    entryID,
		Name:       name,
		Percentage: percentage,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, entry_id, name, percentage) VALUES ($1, $2, $3, $4)`,
		topic.ID, topic.EntryID, topic.Name, topic.Percentage,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedInsight creates an insight row for an entry.
func SeedInsight(t *testing.T, pool *pgxpool.Pool, entryID uuid.UUID, title, description string) domain.Insight {
	t.Helper()
	ctx := context.Background()

	insight := domain.Insight{
		ID:          uuid.New(),
		EntryID:     entryID,
		Title:       title,
		Description: description,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO insights (id, entry_id, title, description) VALUES ($1, $2, $3, $4)`,
		insight.ID, insight.EntryID, insight.Title, insight.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInsight insert insight: %v", err)
	}

	return insight
}
