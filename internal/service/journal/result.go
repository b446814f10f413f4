package journal

import "github.com/voicejournal/backend/internal/domain"

// EntryList is one page of a user's journal entries with pagination metadata.
type EntryList struct {
	Entries    []domain.JournalEntry
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
