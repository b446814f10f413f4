package domain

// EntryFilter contains filtering/pagination parameters for journal entry listings.
// Filters combine with logical AND; results are always scoped to one user.
type EntryFilter struct {
	// Search matches a case-insensitive substring against title OR transcription.
	// nil or empty string means no text filter.
	Search *string

	// Tag filters entries carrying the tag with this exact name.
	Tag *string

	// Page is 1-based. Values < 1 default to 1.
	Page int

	// Limit is the page size. Default 10, max 100.
	Limit int
}
