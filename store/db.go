package store

import "github.com/shoreday/shoreday/internal/models"

// DB is the database storage interface.
type DB interface {
	// AddMarker saves a new marker, assigning its id and creation time when
	// they are unset
	AddMarker(m *models.Marker) error
	// Markers returns all saved markers in creation order
	Markers() ([]models.Marker, error)
	// DeleteMarker deletes the marker with the given id
	DeleteMarker(id string) error
	// DeleteAllMarkers removes every saved marker
	DeleteAllMarkers() error
	// Close ends the database connection
	Close() error
}
