package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinsToHoursAndMins(t *testing.T) {
	cases := []struct {
		in   int
		hrs  int
		mins int
	}{
		{0, 0, 0},
		{45, 0, 45},
		{60, 1, 0},
		{90, 1, 30},
		{1439, 23, 59},
	}

	for _, tc := range cases {
		h, m := MinsToHoursAndMins(tc.in)
		assert.Equal(t, tc.hrs, h, "hours for %d", tc.in)
		assert.Equal(t, tc.mins, m, "minutes for %d", tc.in)
	}
}

func TestMinuteOfDayIgnoresDateAndSeconds(t *testing.T) {
	a := time.Date(2026, time.April, 16, 10, 30, 59, 0, time.Local)
	b := time.Date(1999, time.January, 1, 10, 30, 0, 0, time.Local)

	assert.Equal(t, 630, MinuteOfDay(a))
	assert.Equal(t, MinuteOfDay(a), MinuteOfDay(b))
}

func TestFromStrClockTime(t *testing.T) {
	now := time.Date(2026, time.April, 16, 8, 0, 0, 0, time.Local)

	got, err := FromStr("10:30", now)
	require.NoError(t, err)

	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestClock(t *testing.T) {
	at := time.Now().Add(-3 * time.Hour)

	now := Clock(at)

	assert.WithinDuration(t, at, now(), time.Second)
	assert.WithinDuration(t, time.Now(), Clock(time.Time{})(), time.Second)
}

func TestToKeySortsChronologically(t *testing.T) {
	base := time.Date(2026, time.April, 16, 10, 0, 0, 0, time.UTC)

	whole := string(ToKey(base))
	frac := string(ToKey(base.Add(500 * time.Millisecond)))

	assert.Equal(t, "2026-04-16T10:00:00.000000000Z", whole)
	assert.Less(t, whole, frac)
}
