package itinerary

import (
	"fmt"

	"github.com/shoreday/shoreday/internal/timeutil"
)

// FormatMinutes renders a non-negative minute count such as "1h 30min",
// "2h" or "45min".
func FormatMinutes(total int) string {
	h, m := timeutil.MinsToHoursAndMins(total)

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dmin", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dmin", m)
	}
}

// DurationMinutes returns end - start in minutes, adding a day when the end
// falls before the start.
func DurationMinutes(start, end string) int {
	diff := Minutes(end) - Minutes(start)
	if diff < 0 {
		diff += timeutil.MinutesInADay
	}

	return diff
}

// CalculateDuration renders the length of an activity as "1h 30m", "2h" or
// "45 min". The suffixes differ from FormatMinutes on purpose.
func CalculateDuration(start, end string) string {
	h, m := timeutil.MinsToHoursAndMins(DurationMinutes(start, end))

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}
