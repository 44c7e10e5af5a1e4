// Package guide derives the traveller's guide from a plan: a summary of the
// day and an emergency message that can be shared.
package guide

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/itinerary"
)

const (
	mapsQueryURL = "https://maps.google.com/?q="
	shareURL     = "https://wa.me/?text="
)

// Summary is an overview of the time spent in port.
type Summary struct {
	Arrive             string
	Depart             string
	PortMinutes        int
	TransportMinutes   int
	SightseeingMinutes int
	WalkKM             float64
}

// Summarize computes the visit summary of a plan. The day runs from the
// first activity's start to the onboard time, or to the last activity's
// end when no onboard time is set.
func Summarize(p *itinerary.Plan) Summary {
	var s Summary

	if len(p.Activities) == 0 {
		return s
	}

	s.Arrive = p.Activities[0].Start
	s.Depart = p.Trip.OnboardTime

	if s.Depart == "" {
		s.Depart = p.Activities[len(p.Activities)-1].End
	}

	s.PortMinutes = itinerary.DurationMinutes(s.Arrive, s.Depart)

	for i := range p.Activities {
		a := &p.Activities[i]

		switch a.Kind {
		case itinerary.KindTransport:
			s.TransportMinutes += a.Minutes()
		case itinerary.KindSightseeing:
			s.SightseeingMinutes += a.Minutes()
		}
	}

	s.WalkKM = geo.PathLength(p.Track)

	return s
}

// SOSMessage returns the emergency text, including a maps link to pos when
// a position is known.
func SOSMessage(pos *geo.Coordinate, city string) string {
	location := "GPS unavailable"
	if pos != nil {
		location = mapsQueryURL + pos.String()
	}

	if city == "" {
		return "SOS! I need help. Location: " + location
	}

	return fmt.Sprintf("SOS! I need help in %s. Location: %s", city, location)
}

// SOSLink wraps msg in a messaging share link.
func SOSLink(msg string) string {
	return shareURL + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
