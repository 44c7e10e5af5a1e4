package itinerary

import (
	"fmt"
	"net/url"

	"github.com/shoreday/shoreday/internal/geo"
)

// Kind classifies an activity.
type Kind string

const (
	KindLogistics   Kind = "logistics"
	KindTransport   Kind = "transport"
	KindSightseeing Kind = "sightseeing"
)

// NoteCritical marks an activity that must not be missed.
const NoteCritical = "CRITICAL"

const directionsURL = "https://www.google.com/maps/dir/?api=1"

// Activity is a single scheduled stop of the day. Start and End are local
// HH:MM clock times on the trip date.
type Activity struct {
	EndCoords       *geo.Coordinate `json:"end_coords,omitempty"       yaml:"end_coords,omitempty"`
	ID              string          `json:"id"                         yaml:"id"`
	Title           string          `json:"title"                      yaml:"title"`
	Start           string          `json:"start"                      yaml:"start"`
	End             string          `json:"end"                        yaml:"end"`
	LocationName    string          `json:"location"                   yaml:"location"`
	EndLocationName string          `json:"end_location,omitempty"     yaml:"end_location,omitempty"`
	Description     string          `json:"description,omitempty"      yaml:"description,omitempty"`
	KeyDetails      string          `json:"key_details,omitempty"      yaml:"key_details,omitempty"`
	Kind            Kind            `json:"type"                       yaml:"type"`
	Notes           string          `json:"notes,omitempty"            yaml:"notes,omitempty"`
	GoogleMapsURL   string          `json:"google_maps_url,omitempty"  yaml:"google_maps_url,omitempty"`
	ContingencyNote string          `json:"contingency_note,omitempty" yaml:"contingency_note,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"        yaml:"image_url,omitempty"`
	AudioGuideText  string          `json:"audio_guide,omitempty"      yaml:"audio_guide,omitempty"`
	Coords          geo.Coordinate  `json:"coords"                     yaml:"coords"`
	PriceEUR        float64         `json:"price_eur"                  yaml:"price_eur"`
	Completed       bool            `json:"completed"                  yaml:"completed"`
}

// Critical reports whether the activity is flagged as must-not-miss.
func (a *Activity) Critical() bool {
	return a.Notes == NoteCritical
}

// Minutes returns the scheduled duration with overnight wrap applied.
func (a *Activity) Minutes() int {
	return DurationMinutes(a.Start, a.End)
}

// NavigationURL returns the authored maps link, or a directions link to the
// activity's coordinate.
func (a *Activity) NavigationURL() string {
	if a.GoogleMapsURL != "" {
		return a.GoogleMapsURL
	}

	return fmt.Sprintf(
		"%s&destination=%s",
		directionsURL,
		url.QueryEscape(a.Coords.String()),
	)
}

// Waypoint is an authored point of interest that is not an activity.
type Waypoint struct {
	ID             string `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string `json:"name"         yaml:"name"`
	geo.Coordinate `yaml:",inline"`
}

// Phrase is a local-language expression with pronunciation help.
type Phrase struct {
	Word       string `json:"word"       yaml:"word"`
	Phonetic   string `json:"phonetic"   yaml:"phonetic"`
	Simplified string `json:"simplified" yaml:"simplified"`
	Meaning    string `json:"meaning"    yaml:"meaning"`
}

// Trip holds the metadata of the day.
type Trip struct {
	Name        string `json:"name"         yaml:"name"`
	Date        string `json:"date"         yaml:"date"`
	Port        string `json:"port"         yaml:"port"`
	City        string `json:"city"         yaml:"city"`
	OnboardTime string `json:"onboard_time" yaml:"onboard_time"`
}

// Plan is a loaded itinerary file. Activities keep their authored order.
type Plan struct {
	Trip       Trip             `json:"trip"                yaml:"trip"`
	Activities []Activity       `json:"activities"          yaml:"activities"`
	Waypoints  []Waypoint       `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
	Track      []geo.Coordinate `json:"track,omitempty"     yaml:"track,omitempty"`
	Phrases    []Phrase         `json:"phrases,omitempty"   yaml:"phrases,omitempty"`
}

// Find returns the activity with the given id.
func (p *Plan) Find(id string) (*Activity, bool) {
	for i := range p.Activities {
		if p.Activities[i].ID == id {
			return &p.Activities[i], true
		}
	}

	return nil, false
}

// Toggle flips the completion flag of an activity and returns the new value.
func (p *Plan) Toggle(id string) (bool, error) {
	a, ok := p.Find(id)
	if !ok {
		return false, ErrUnknownActivity.Fmt(id)
	}

	a.Completed = !a.Completed

	return a.Completed, nil
}

// Places converts activities and waypoints to exportable map places.
func (p *Plan) Places() []geo.Place {
	places := make([]geo.Place, 0, len(p.Activities)+len(p.Waypoints))

	for i := range p.Activities {
		a := &p.Activities[i]

		places = append(places, geo.Place{
			ID:         a.ID,
			Name:       a.Title,
			Kind:       string(a.Kind),
			Coordinate: a.Coords,
			Properties: map[string]any{
				"start":     a.Start,
				"end":       a.End,
				"location":  a.LocationName,
				"completed": a.Completed,
			},
		})
	}

	for _, w := range p.Waypoints {
		places = append(places, geo.Place{
			ID:         w.ID,
			Name:       w.Name,
			Kind:       "waypoint",
			Coordinate: w.Coordinate,
		})
	}

	return places
}
