package journal

import "time"

// calculateStreak returns the length of the consecutive-day run starting at
// the most recent journaling date. Dates must be distinct calendar dates in
// descending order, as returned by the repository. A missed day does not
// reset the value to zero; the last run keeps its length until a new entry
// starts a new run.
func calculateStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].AddDate(0, 0, -1).Equal(dates[i]) {
			break
		}
		streak++
	}
	return streak
}
