package sensor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bridge(t *testing.T, frames ...string) string {
	t.Helper()

	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}

		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocketRun(t *testing.T) {
	url := bridge(
		t,
		`{"lat": 41.8902, "lng": 12.4922}`,
		`{"heading": 10, "compass_heading": 350}`,
		`{"heading": -90}`,
		`{}`,
		`not json`,
		`{"error": "permission denied"}`,
	)

	src := &WebSocket{URL: url}
	out := make(chan Reading, 16)

	err := src.Run(context.Background(), out)
	require.NoError(t, err)
	close(out)

	var got []Reading
	for r := range out {
		got = append(got, r)
	}

	require.Len(t, got, 5)

	require.NotNil(t, got[0].Position)
	assert.InDelta(t, 41.8902, got[0].Position.Lat, 1e-9)
	assert.Nil(t, got[0].Heading)

	require.NotNil(t, got[1].Heading)
	assert.InDelta(t, 350, *got[1].Heading, 1e-9)

	require.NotNil(t, got[2].Heading)
	assert.InDelta(t, 270, *got[2].Heading, 1e-9)

	require.ErrorIs(t, got[3].Err, errDecodeFrame)
	require.ErrorIs(t, got[4].Err, errBridgeReported)
	assert.Contains(t, got[4].Err.Error(), "permission denied")
}

func TestWebSocketDialFailure(t *testing.T) {
	src := &WebSocket{URL: "ws://127.0.0.1:1/sensors"}

	err := src.Run(context.Background(), make(chan Reading, 1))
	require.ErrorIs(t, err, errDialSensor)
}

func TestDecodeFrameIgnoresInvalidPosition(t *testing.T) {
	_, ok := decodeFrame(context.Background(), "test", []byte(`{"lat": 123, "lng": 0}`))
	assert.False(t, ok)
}
