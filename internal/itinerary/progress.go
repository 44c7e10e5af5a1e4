package itinerary

import (
	"math"
	"time"

	"github.com/shoreday/shoreday/internal/timeutil"
)

// TimeProgress returns how much of the start-end window has elapsed at now,
// as a percentage in [0,100]. Only the clock time of now is considered.
func TimeProgress(now time.Time, start, end string) float64 {
	current := timeutil.MinuteOfDay(now)
	s, e := Minutes(start), Minutes(end)

	if current < s {
		return 0
	}

	if current >= e {
		return 100
	}

	elapsed := float64(current - s)
	total := float64(e - s)

	return math.Min(100, math.Max(0, elapsed/total*100))
}

// Gap returns the free minutes between one activity's end and the next one's
// start. Unlike DurationMinutes it never wraps past midnight, so an
// out-of-order pair yields a negative gap.
func Gap(prevEnd, nextStart string) int {
	return Minutes(nextStart) - Minutes(prevEnd)
}
