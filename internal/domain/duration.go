package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseEntryDuration normalizes a stored entry duration to whole seconds.
//
// Accepted forms:
//   - "HH:MM:SS" — hours, minutes, seconds
//   - "MM:SS" — minutes, seconds (minutes may exceed 59)
//   - "45" or "45.5" — a bare (possibly fractional) seconds count,
//     truncated to whole seconds
//
// Whitespace is trimmed. Empty strings and negative components are rejected.
func ParseEntryDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("duration is empty")
	}

	if !strings.Contains(raw, ":") {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		if secs < 0 {
			return 0, fmt.Errorf("invalid duration %q: negative", raw)
		}
		return int(secs), nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q: expected MM:SS or HH:MM:SS", raw)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("invalid duration %q: negative component", raw)
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return nums[0]*3600 + nums[1]*60 + nums[2], nil
	}
	return nums[0]*60 + nums[1], nil
}
