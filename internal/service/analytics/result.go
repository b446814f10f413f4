package analytics

import (
	"time"

	"github.com/voicejournal/backend/internal/domain"
)

// MoodBucket is one mood with its entry count.
type MoodBucket struct {
	Mood  domain.Mood
	Count int
}

// DayOfWeekBucket is one weekday bucket (0=Sunday .. 6=Saturday).
type DayOfWeekBucket struct {
	DayOfWeek int
	Count     int
}

// MonthBucket is one calendar month bucket (1-12).
type MonthBucket struct {
	Month int
	Count int
}

// TopicAggregate is one topic with its averaged weight across entries.
type TopicAggregate struct {
	Name          string
	AvgPercentage int
	EntryCount    int
}

// TimePoint is one day of the entries-over-time series. Days with zero
// entries are omitted from the series.
type TimePoint struct {
	Date  time.Time
	Count int
}

// Report is the full analytics document. Every field is always present;
// absent aggregates are zero-valued, never missing.
type Report struct {
	MoodDistribution    []MoodBucket
	EntriesPerDayOfWeek []DayOfWeekBucket
	EntriesPerMonth     []MonthBucket
	TopTopics           []TopicAggregate
	TopTags             []domain.TagCount
	EntriesOverTime     []TimePoint
	AvgEntryLength      int
	WordsPerEntry       int
	TotalTimeSeconds    int
}
