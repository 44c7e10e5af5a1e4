// Package models holds records persisted by the store.
package models

import (
	"slices"
	"time"

	"github.com/maruel/natural"

	"github.com/shoreday/shoreday/internal/geo"
)

// Marker is a point the user saved on the map during the day.
type Marker struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	geo.Coordinate
}

// Place converts the marker to an exportable map place.
func (m *Marker) Place() geo.Place {
	return geo.Place{
		ID:         m.ID,
		Name:       m.Name,
		Kind:       "marker",
		Coordinate: m.Coordinate,
		Properties: map[string]any{
			"created_at": m.CreatedAt.Format(time.RFC3339),
		},
	}
}

// SortByName returns the markers in natural name order, so that "Stop 2"
// precedes "Stop 10". Markers with equal names keep their creation order.
func SortByName(markers []Marker) []Marker {
	sorted := slices.Clone(markers)

	slices.SortStableFunc(sorted, func(a, b Marker) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	return sorted
}
