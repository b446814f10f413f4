package domain

import "time"

// Aggregate row types produced by the analytics read queries.
// Shaping (zero-fill, rounding, limits) happens in the analytics service.

// MoodCount is the number of entries carrying one mood value.
type MoodCount struct {
	Mood  Mood
	Count int
}

// DayOfWeekCount is the number of entries created on one weekday.
// DayOfWeek follows the SQL EXTRACT(DOW ...) convention: 0=Sunday .. 6=Saturday.
type DayOfWeekCount struct {
	DayOfWeek int
	Count     int
}

// MonthCount is the number of entries created in one calendar month (1-12).
type MonthCount struct {
	Month int
	Count int
}

// TopicStat is a topic name with its summed percentage weight and the number
// of entries it occurred in.
type TopicStat struct {
	Name            string
	TotalPercentage int
	EntryCount      int
}

// DayCount is the number of entries created on one calendar date.
type DayCount struct {
	Date  time.Time
	Count int
}

// JournalStats is the quick-stats document shown above the journal list.
type JournalStats struct {
	TotalEntries    int
	EntriesThisWeek int
	CurrentStreak   int
}
