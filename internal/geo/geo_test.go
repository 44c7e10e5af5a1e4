package geo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	colosseum = Coordinate{Lat: 41.8902, Lng: 12.4922}
	trevi     = Coordinate{Lat: 41.9009, Lng: 12.4833}
)

func TestDistanceIdenticalPoints(t *testing.T) {
	assert.InDelta(t, 0, Distance(41.9, 12.5, 41.9, 12.5), 1e-12)
}

func TestDistanceOneDegreeAtEquator(t *testing.T) {
	assert.InDelta(t, 111.195, Distance(0, 0, 0, 1), 0.001)
}

func TestDistanceSymmetric(t *testing.T) {
	ab := colosseum.DistanceTo(trevi)
	ba := trevi.DistanceTo(colosseum)

	assert.InDelta(t, ab, ba, 1e-9)
	assert.InDelta(t, 1.399, ab, 0.001)
}

func TestDistanceAgreesWithOrb(t *testing.T) {
	points := []Coordinate{
		colosseum,
		trevi,
		{Lat: 42.0936, Lng: 11.7897},
		{Lat: -33.8568, Lng: 151.2153},
		{Lat: 51.5007, Lng: -0.1246},
	}

	for i := range points {
		for j := range points {
			if i == j {
				continue
			}

			got := points[i].DistanceTo(points[j]) * 1000
			want := orbgeo.Distance(points[i].Point(), points[j].Point())

			// orb uses the equatorial radius.
			assert.InEpsilon(t, want, got, 0.005)
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	d := Distance(18.8389, 158.5833, -18.8389, -21.4167)

	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusKM, d, 1)
	assert.NotContains(t, FormatDistance(d), "NaN")

	rng := rand.New(rand.NewPCG(7, 11))

	for range 10000 {
		lat := rng.Float64()*180 - 90
		lng := rng.Float64()*360 - 180
		jitter := (rng.Float64() - 0.5) * 1e-6

		d := Distance(lat, lng, -lat+jitter, lng-180+jitter)
		if !assert.False(t, math.IsNaN(d), "%f,%f", lat, lng) {
			return
		}

		assert.LessOrEqual(t, d, math.Pi*EarthRadiusKM+1e-6)
	}
}

func TestRandomPairsSymmetricAndBearingInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 10000 {
		lat1 := rng.Float64()*180 - 90
		lng1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lng2 := rng.Float64()*360 - 180

		ab := Distance(lat1, lng1, lat2, lng2)
		ba := Distance(lat2, lng2, lat1, lng1)

		if !assert.InDelta(t, ab, ba, 1e-9, "%f,%f -> %f,%f", lat1, lng1, lat2, lng2) {
			return
		}

		for _, b := range []float64{
			Bearing(lat1, lng1, lat2, lng2),
			Bearing(lat2, lng2, lat1, lng1),
		} {
			if !assert.True(t, b >= 0 && b < 360, "bearing %f", b) {
				return
			}
		}
	}
}

func TestBearingCardinal(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lng  float64
		want float64
	}{
		{"north", 1, 0, 0},
		{"east", 0, 1, 90},
		{"south", -1, 0, 180},
		{"west", 0, -1, 270},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Bearing(0, 0, tc.lat, tc.lng), 1e-9)
		})
	}
}

func TestBearingRange(t *testing.T) {
	got := colosseum.BearingTo(trevi)

	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
	assert.InDelta(t, 328.24, got, 0.01)

	orbBearing := orbgeo.Bearing(colosseum.Point(), trevi.Point())
	if orbBearing < 0 {
		orbBearing += 360
	}

	assert.InDelta(t, orbBearing, got, 0.01)
}

func TestBearingIdenticalPoints(t *testing.T) {
	assert.InDelta(t, 0, Bearing(41.9, 12.5, 41.9, 12.5), 1e-12)
}

func TestFormatDistance(t *testing.T) {
	cases := map[float64]string{
		0:        "0 m",
		0.2113:   "211 m",
		0.9994:   "999 m",
		1:        "1.0 km",
		1.3994:   "1.4 km",
		111.1949: "111.2 km",
	}

	for km, want := range cases {
		assert.Equal(t, want, FormatDistance(km), "km=%v", km)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, colosseum.Valid())
	assert.True(t, Coordinate{Lat: -90, Lng: 180}.Valid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lng: -181}.Valid())
}

func TestPointOrder(t *testing.T) {
	assert.Equal(t, orb.Point{12.4922, 41.8902}, colosseum.Point())
	assert.Equal(t, "41.8902,12.4922", colosseum.String())
}

func TestPathLength(t *testing.T) {
	assert.InDelta(t, 0, PathLength(nil), 1e-12)
	assert.InDelta(t, 0, PathLength([]Coordinate{trevi}), 1e-12)

	path := []Coordinate{colosseum, trevi, colosseum}
	assert.InDelta(t, 2*colosseum.DistanceTo(trevi), PathLength(path), 1e-9)
}

func TestFeatureCollection(t *testing.T) {
	places := []Place{
		{ID: "colosseo", Name: "Colosseo", Kind: "sightseeing", Coordinate: colosseum},
		{
			ID:         "trevi",
			Name:       "Fontana di Trevi",
			Coordinate: trevi,
			Properties: map[string]any{"start": "13:50"},
		},
	}

	fc := FeatureCollection(places, []Coordinate{colosseum, trevi})
	require.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, "colosseo", first.ID)
	assert.Equal(t, "Colosseo", first.Properties["name"])
	assert.Equal(t, "sightseeing", first.Properties["kind"])
	assert.Equal(t, colosseum.Point(), first.Geometry)

	second := fc.Features[1]
	assert.Equal(t, "13:50", second.Properties["start"])
	assert.NotContains(t, second.Properties, "kind")

	track, ok := fc.Features[2].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, track, 2)

	require.NotNil(t, fc.BBox)
	assert.InDelta(t, trevi.Lng, fc.BBox[0], 1e-9)
	assert.InDelta(t, colosseum.Lat, fc.BBox[1], 1e-9)
}

func TestFeatureCollectionEmpty(t *testing.T) {
	fc := FeatureCollection(nil, []Coordinate{colosseum})

	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}

func TestCenter(t *testing.T) {
	_, ok := Center(nil)
	assert.False(t, ok)

	c, ok := Center([]Coordinate{colosseum, trevi})
	require.True(t, ok)
	assert.InDelta(t, (colosseum.Lat+trevi.Lat)/2, c.Lat, 1e-9)
	assert.InDelta(t, (colosseum.Lng+trevi.Lng)/2, c.Lng, 1e-9)
}
