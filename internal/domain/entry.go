package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one voice journal recording with its transcription and metadata.
// UserID is immutable after creation.
type JournalEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Transcription string
	AudioURL      string
	// Duration is the recording length as stored by the save flow.
	// Formats in the wild: "HH:MM:SS", "MM:SS", or a bare seconds count.
	// Use ParseEntryDuration before doing arithmetic on it.
	Duration  string
	Mood      *Mood
	CreatedAt time.Time
	UpdatedAt time.Time

	// Loaded on demand, nil when not requested.
	Tags     []string
	Topics   []Topic
	Insights []Insight
}

// EntryUpdateParams describes a partial update of a journal entry.
// Nil fields are left unchanged.
type EntryUpdateParams struct {
	Title         *string
	Transcription *string
	AudioURL      *string
	Duration      *string
	Mood          *Mood
	Tags          *[]string
}

// Tag is a globally unique label attached to entries via the entry_tags
// association. Names are case-sensitive and deduplicated across all users.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// TagCount is a tag name with its usage count across a user's entries.
type TagCount struct {
	Name  string
	Count int
}

// EntryTag pairs an entry with one of its tag names, for batch tag loads.
type EntryTag struct {
	EntryID uuid.UUID
	Name    string
}

// Topic is an AI-assigned theme of a single entry with its weight.
// Percentages are advisory and are not required to sum to 100 per entry.
type Topic struct {
	ID         uuid.UUID
	EntryID    uuid.UUID
	Name       string
	Percentage int
}

// Insight is an AI-generated observation about a single entry.
// It shares the entry's lifecycle and is deleted with it.
type Insight struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	Title       string
	Description string
}
