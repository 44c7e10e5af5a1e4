package itinerary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `
trip:
  name: Roma
  date: "2026-04-16"
  port: Civitavecchia
  city: Roma
  onboard_time: "18:30"
activities:
  - id: colosseo
    title: Colosseo
    start: "09:45"
    end: "12:15"
    location: Piazza del Colosseo
    type: sightseeing
    price_eur: 18
    coords: {lat: 41.8902, lng: 12.4922}
  - id: trevi
    title: Fontana di Trevi
    start: "13:50"
    end: "14:20"
    location: Piazza di Trevi
    type: sightseeing
    notes: CRITICAL
    coords: {lat: 41.9009, lng: 12.4833}
waypoints:
  - name: Gelateria
    lat: 41.9
    lng: 12.48
track:
  - {lat: 41.8902, lng: 12.4922}
  - {lat: 41.9009, lng: 12.4833}
phrases:
  - word: Grazie
    phonetic: GRAHT-tsyeh
    simplified: gratsie
    meaning: Thank you
`

func TestParseValid(t *testing.T) {
	p, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	assert.Equal(t, "18:30", p.Trip.OnboardTime)
	require.Len(t, p.Activities, 2)
	assert.Equal(t, trevi, p.Activities[1].Coords)
	assert.True(t, p.Activities[1].Critical())
	assert.InDelta(t, 18, p.Activities[0].PriceEUR, 1e-9)

	require.Len(t, p.Waypoints, 1)
	assert.InDelta(t, 41.9, p.Waypoints[0].Lat, 1e-9)
	assert.Len(t, p.Track, 2)
	assert.Equal(t, "Grazie", p.Phrases[0].Word)
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"not yaml", "activities: [", errParseItinerary},
		{"empty", "trip: {name: x}", errNoActivities},
		{
			"missing id",
			`activities: [{title: x, start: "09:00", end: "10:00", type: transport}]`,
			errMissingID,
		},
		{
			"duplicate id",
			`activities:
  - {id: a, start: "09:00", end: "10:00", type: transport}
  - {id: a, start: "10:00", end: "11:00", type: transport}`,
			errDuplicateID,
		},
		{
			"unpadded time",
			`activities: [{id: a, start: "9:00", end: "10:00", type: transport}]`,
			errInvalidClock,
		},
		{
			"bad kind",
			`activities: [{id: a, start: "09:00", end: "10:00", type: flying}]`,
			errInvalidKind,
		},
		{
			"bad coords",
			`activities: [{id: a, start: "09:00", end: "10:00", type: transport, coords: {lat: 95, lng: 0}}]`,
			errInvalidCoords,
		},
		{
			"bad onboard",
			`trip: {onboard_time: "6pm"}
activities: [{id: a, start: "09:00", end: "10:00", type: transport}]`,
			errInvalidOnboard,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itinerary.yml")

	_, err := Load(path)
	require.ErrorIs(t, err, errReadItinerary)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte(validPlan), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Roma", p.Trip.Name)
}
