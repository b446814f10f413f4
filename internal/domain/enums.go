package domain

// Mood is the AI-assessed overall mood of a journal entry.
type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNeutral  Mood = "neutral"
	MoodNegative Mood = "negative"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodPositive, MoodNeutral, MoodNegative:
		return true
	}
	return false
}
