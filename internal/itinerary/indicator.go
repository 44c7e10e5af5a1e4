package itinerary

import "github.com/shoreday/shoreday/internal/geo"

// NearbyKM is the distance below which the user counts as arrived.
const NearbyKM = 0.3

// Indicator describes where a destination lies relative to the user.
type Indicator struct {
	DistanceKM float64 `json:"distance_km"`
	Bearing    float64 `json:"bearing"`
	// Rotation is the angle, in degrees, to turn an upward-pointing arrow so
	// that it points at the destination from the device's facing direction.
	Rotation float64 `json:"rotation"`
	Arrived  bool    `json:"arrived"`
}

// Direction composes distance, bearing and arrow rotation from the user to a
// destination given the device heading.
func Direction(user, dest geo.Coordinate, heading float64) Indicator {
	dist := user.DistanceTo(dest)
	bearing := user.BearingTo(dest)

	return Indicator{
		DistanceKM: dist,
		Bearing:    bearing,
		Rotation:   bearing - heading,
		Arrived:    dist < NearbyKM,
	}
}

// Distance renders the distance for display.
func (i Indicator) Distance() string {
	return geo.FormatDistance(i.DistanceKM)
}
