// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"math"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// MinutesInADay is the number of minutes between two midnights.
const MinutesInADay = 24 * minutesInAnHour

var errUnparsableTime = errors.New("unable to understand the provided time")

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// MinuteOfDay returns the number of whole minutes elapsed since local midnight.
// Seconds and the calendar date are ignored.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*minutesInAnHour + t.Minute()
}

// keyLayout keeps fractional seconds at a fixed width so that keys sort
// chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(keyLayout))
}

// FromStr parses a human readable time expression such as "10:30",
// "in 2 hours" or "tomorrow 9am" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	if dt.Time.IsZero() {
		return time.Time{}, errUnparsableTime
	}

	return dt.Time, nil
}

// Clock returns a function reporting the current time shifted so that the
// first call observes at. A zero at yields the real wall clock.
func Clock(at time.Time) func() time.Time {
	if at.IsZero() {
		return time.Now
	}

	offset := time.Until(at)

	return func() time.Time {
		return time.Now().Add(offset)
	}
}
