// Package store persists user-created map markers in a local bbolt database
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/shoreday/shoreday/internal/apperr"
	"github.com/shoreday/shoreday/internal/models"
	"github.com/shoreday/shoreday/internal/timeutil"
)

const markerBucket = "markers"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is shoreday already running? Only one instance can be active at a time",
	}

	// ErrMarkerNotFound is returned when deleting an unknown marker.
	ErrMarkerNotFound = &apperr.Error{
		Message: "marker not found: %s",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	now func() time.Time
}

// markerKey orders markers by creation time. The id suffix keeps keys
// unique when two markers share a timestamp.
func markerKey(m *models.Marker) []byte {
	return append(timeutil.ToKey(m.CreatedAt.UTC()), []byte("/"+m.ID)...)
}

func (c *Client) AddMarker(m *models.Marker) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = c.now()
	}

	value, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(markerBucket)).Put(markerKey(m), value)
	})
}

func (c *Client) Markers() ([]models.Marker, error) {
	var markers []models.Marker

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(markerBucket)).ForEach(func(_, v []byte) error {
			var m models.Marker

			err := json.Unmarshal(v, &m)
			if err != nil {
				return err
			}

			markers = append(markers, m)

			return nil
		})
	})

	return markers, err
}

func (c *Client) DeleteMarker(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(markerBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var m models.Marker

			err := json.Unmarshal(v, &m)
			if err != nil {
				return err
			}

			if m.ID == id {
				return cur.Delete()
			}
		}

		return ErrMarkerNotFound.Fmt(id)
	})
}

func (c *Client) DeleteAllMarkers() error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(markerBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		_, err = tx.CreateBucket([]byte(markerBucket))

		return err
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(markerBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:  db,
		now: time.Now,
	}, nil
}
