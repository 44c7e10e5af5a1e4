package itinerary

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates an itinerary file.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadItinerary.Fmt(path).Wrap(err)
	}

	return Parse(b)
}

// Parse decodes and validates an itinerary document.
func Parse(b []byte) (*Plan, error) {
	var p Plan

	err := yaml.Unmarshal(b, &p)
	if err != nil {
		return nil, errParseItinerary.Wrap(err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the invariants the engine relies on: well-formed clock
// times, unique ids and in-range coordinates.
func (p *Plan) Validate() error {
	if len(p.Activities) == 0 {
		return errNoActivities
	}

	if p.Trip.OnboardTime != "" && !ValidClock(p.Trip.OnboardTime) {
		return errInvalidOnboard.Fmt(p.Trip.OnboardTime)
	}

	seen := make(map[string]bool, len(p.Activities))

	for i := range p.Activities {
		a := &p.Activities[i]

		if a.ID == "" {
			return errMissingID.Fmt(i + 1)
		}

		if seen[a.ID] {
			return errDuplicateID.Fmt(a.ID)
		}

		seen[a.ID] = true

		if !ValidClock(a.Start) {
			return errInvalidClock.Fmt(a.ID, "start", a.Start)
		}

		if !ValidClock(a.End) {
			return errInvalidClock.Fmt(a.ID, "end", a.End)
		}

		switch a.Kind {
		case KindLogistics, KindTransport, KindSightseeing:
		default:
			return errInvalidKind.Fmt(a.ID, a.Kind)
		}

		if !a.Coords.Valid() {
			return errInvalidCoords.Fmt(a.ID, a.Coords)
		}

		if a.EndCoords != nil && !a.EndCoords.Valid() {
			return errInvalidCoords.Fmt(a.ID, *a.EndCoords)
		}
	}

	for _, w := range p.Waypoints {
		if !w.Valid() {
			return errInvalidCoords.Fmt(w.Name, w.Coordinate)
		}
	}

	for _, c := range p.Track {
		if !c.Valid() {
			return errInvalidCoords.Fmt("track", c)
		}
	}

	return nil
}
