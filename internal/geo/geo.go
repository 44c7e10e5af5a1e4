// Package geo implements the spherical geometry used to relate the user's
// position to itinerary stops.
package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// EarthRadiusKM is the mean Earth radius used by Distance.
const EarthRadiusKM = 6371

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the great-circle distance in kilometres between two points
// using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a past 1 for near-antipodal points
	a = math.Min(1, a)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// Bearing returns the initial compass bearing in degrees, in [0,360), for the
// great-circle path from point 1 to point 2. Identical points yield 0.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	startLat := toRad(lat1)
	destLat := toRad(lat2)
	dLon := toRad(lon2 - lon1)

	y := math.Sin(dLon) * math.Cos(destLat)
	x := math.Cos(startLat)*math.Sin(destLat) -
		math.Sin(startLat)*math.Cos(destLat)*math.Cos(dLon)

	return math.Mod(toDeg(math.Atan2(y, x))+360, 360)
}

// FormatDistance renders a distance in kilometres. Distances under 1 km are
// shown in whole metres.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1f km", km)
}

// DistanceTo returns the haversine distance from c to o in kilometres.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return Distance(c.Lat, c.Lng, o.Lat, o.Lng)
}

// BearingTo returns the initial bearing from c to o.
func (c Coordinate) BearingTo(o Coordinate) float64 {
	return Bearing(c.Lat, c.Lng, o.Lat, o.Lng)
}

// Valid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// PathLength returns the total length in kilometres of a polyline.
func PathLength(path []Coordinate) float64 {
	var total float64

	for i := 1; i < len(path); i++ {
		total += path[i-1].DistanceTo(path[i])
	}

	return total
}
