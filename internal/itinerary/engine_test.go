package itinerary

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreday/shoreday/internal/geo"
)

var (
	colosseum = geo.Coordinate{Lat: 41.8902, Lng: 12.4922}
	trevi     = geo.Coordinate{Lat: 41.9009, Lng: 12.4833}
)

func activity(id, start, end string, c geo.Coordinate) Activity {
	return Activity{
		ID:     id,
		Title:  id,
		Start:  start,
		End:    end,
		Kind:   KindSightseeing,
		Coords: c,
	}
}

func TestSnapshotGapRendering(t *testing.T) {
	a := activity("a", "09:00", "10:00", colosseum)
	b := activity("b", "10:20", "11:00", trevi)

	views := Snapshot([]Activity{a, b}, Signals{Now: at("10:10")})
	require.Len(t, views, 2)

	assert.Nil(t, views[0].Gap)
	require.NotNil(t, views[1].Gap)
	assert.Equal(t, 20, views[1].Gap.Minutes)
	assert.Equal(t, "20min", views[1].Gap.Label())
	assert.False(t, views[1].Gap.Free())
	assert.InDelta(t, 50, views[1].Gap.Progress, 1e-9)

	b.Start = "09:50"

	views = Snapshot([]Activity{a, b}, Signals{Now: at("10:10")})
	assert.Nil(t, views[1].Gap)
}

func TestSnapshotFreeGap(t *testing.T) {
	a := activity("a", "09:00", "10:00", colosseum)
	b := activity("b", "11:30", "12:00", trevi)

	views := Snapshot([]Activity{a, b}, Signals{Now: at("08:00")})
	require.NotNil(t, views[1].Gap)
	assert.True(t, views[1].Gap.Free())
	assert.Equal(t, "1h 30min", views[1].Gap.Label())
	assert.InDelta(t, 0, views[1].Gap.Progress, 1e-9)
}

func TestSnapshotWithoutPosition(t *testing.T) {
	views := Snapshot(
		[]Activity{activity("a", "09:00", "10:30", trevi)},
		Signals{Now: at("09:45")},
	)

	require.Len(t, views, 1)
	assert.Nil(t, views[0].Indicator)
	assert.Equal(t, "1h 30m", views[0].Duration)
	assert.InDelta(t, 50, views[0].Progress, 1e-9)
}

func TestSnapshotPreservesOrder(t *testing.T) {
	acts := []Activity{
		activity("late", "15:00", "16:00", trevi),
		activity("early", "08:00", "09:00", colosseum),
	}

	views := Snapshot(acts, Signals{Now: at("12:00")})

	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Activity.ID)
	}

	if diff := cmp.Diff([]string{"late", "early"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

// The user walks from the Colosseum towards the Trevi Fountain.
func TestSnapshotApproachingDestination(t *testing.T) {
	acts := []Activity{activity("trevi", "13:50", "14:20", trevi)}

	user := colosseum
	views := Snapshot(acts, Signals{Now: at("13:30"), Position: &user})

	ind := views[0].Indicator
	require.NotNil(t, ind)
	assert.Equal(t, "1.4 km", ind.Distance())
	assert.False(t, ind.Arrived)
	assert.InDelta(t, 328.24, ind.Rotation, 0.01)

	user = geo.Coordinate{Lat: 41.8990, Lng: 12.4833}
	views = Snapshot(acts, Signals{Now: at("13:45"), Position: &user})

	ind = views[0].Indicator
	require.NotNil(t, ind)
	assert.Equal(t, "211 m", ind.Distance())
	assert.True(t, ind.Arrived)
}

func TestSnapshotUsesHeading(t *testing.T) {
	acts := []Activity{activity("trevi", "13:50", "14:20", trevi)}
	user := colosseum
	heading := 30.0

	views := Snapshot(acts, Signals{Now: at("13:30"), Position: &user, Heading: &heading})

	ind := views[0].Indicator
	require.NotNil(t, ind)
	assert.InDelta(t, ind.Bearing-30, ind.Rotation, 1e-9)
}

func TestDirection(t *testing.T) {
	ind := Direction(trevi, trevi, 90)

	assert.True(t, ind.Arrived)
	assert.Equal(t, "0 m", ind.Distance())
	assert.InDelta(t, -90, ind.Rotation, 1e-9)

	ind = Direction(geo.Coordinate{}, geo.Coordinate{Lat: 0, Lng: 1}, 0)
	assert.False(t, ind.Arrived)
	assert.InDelta(t, 90, ind.Rotation, 1e-9)
}

func TestCurrent(t *testing.T) {
	acts := []Activity{
		activity("a", "09:00", "10:00", colosseum),
		activity("b", "10:20", "11:00", trevi),
	}

	assert.Equal(t, 0, Current(Snapshot(acts, Signals{Now: at("09:10")})))
	assert.Equal(t, 1, Current(Snapshot(acts, Signals{Now: at("10:05")})))
	assert.Equal(t, -1, Current(Snapshot(acts, Signals{Now: at("11:00")})))
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, time.April, 16, 16, 59, 30, 0, time.Local)

	d := Countdown(now, "18:30")
	assert.Equal(t, time.Hour+30*time.Minute+30*time.Second, d)

	s, aboard := FormatCountdown(d)
	assert.False(t, aboard)
	assert.Equal(t, "01h 30m 30s", s)

	_, aboard = FormatCountdown(Countdown(at("18:30"), "18:30"))
	assert.True(t, aboard)

	_, aboard = FormatCountdown(Countdown(at("19:00"), "18:30"))
	assert.True(t, aboard)
}
