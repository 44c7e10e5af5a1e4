package itinerary

import (
	"fmt"
	"time"
)

// Countdown returns the time left until the onboard HH:MM on now's date.
func Countdown(now time.Time, onboard string) time.Duration {
	mins := Minutes(onboard)

	target := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		mins/60,
		mins%60,
		0,
		0,
		now.Location(),
	)

	return target.Sub(now)
}

// FormatCountdown renders a remaining duration as "HHh MMm SSs". Once the
// deadline has passed it reports aboard instead.
func FormatCountdown(d time.Duration) (s string, aboard bool) {
	if d <= 0 {
		return "", true
	}

	hrs := int(d / time.Hour)
	mins := int(d % time.Hour / time.Minute)
	secs := int(d % time.Minute / time.Second)

	return fmt.Sprintf("%02dh %02dm %02ds", hrs, mins, secs), false
}
