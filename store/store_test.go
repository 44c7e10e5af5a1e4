package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "shoreday.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestAddAndListMarkers(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2026, time.April, 16, 10, 0, 0, 0, time.UTC)
	tick := base

	c.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	second := &models.Marker{Name: "Gelato", Coordinate: geo.Coordinate{Lat: 41.9, Lng: 12.47}}
	first := &models.Marker{
		Name:       "Meeting point",
		Coordinate: geo.Coordinate{Lat: 41.89, Lng: 12.49},
		CreatedAt:  base,
	}

	require.NoError(t, c.AddMarker(second))
	require.NoError(t, c.AddMarker(first))

	assert.NotEmpty(t, second.ID)
	assert.Equal(t, base.Add(time.Minute), second.CreatedAt)

	got, err := c.Markers()
	require.NoError(t, err)

	want := []models.Marker{*first, *second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteMarker(t *testing.T) {
	c := newTestClient(t)

	a := &models.Marker{Name: "a"}
	b := &models.Marker{Name: "b"}

	require.NoError(t, c.AddMarker(a))
	require.NoError(t, c.AddMarker(b))

	require.NoError(t, c.DeleteMarker(a.ID))

	got, err := c.Markers()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	err = c.DeleteMarker(a.ID)
	require.ErrorIs(t, err, ErrMarkerNotFound)
}

func TestDeleteAllMarkers(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.AddMarker(&models.Marker{Name: "a"}))
	require.NoError(t, c.DeleteAllMarkers())

	got, err := c.Markers()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, c.AddMarker(&models.Marker{Name: "b"}))

	got, err = c.Markers()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoreday.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	require.ErrorIs(t, err, errAlreadyRunning)
}
