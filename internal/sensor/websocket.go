package sensor

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/logging"
)

// WebSocket receives readings from a phone-side sensor bridge that streams
// JSON frames.
type WebSocket struct {
	Dialer *websocket.Dialer
	URL    string
}

// frame is the bridge's wire format. compass_heading, when present, is the
// platform-corrected heading and takes precedence over heading.
type frame struct {
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Heading        *float64 `json:"heading"`
	CompassHeading *float64 `json:"compass_heading"`
	Error          string   `json:"error"`
}

func (w *WebSocket) Name() string {
	return w.URL
}

func (w *WebSocket) Run(ctx context.Context, out chan<- Reading) error {
	dialer := w.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	conn, _, err := dialer.DialContext(ctx, w.URL, nil)
	if err != nil {
		return errDialSensor.Fmt(w.URL).Wrap(err)
	}

	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil ||
				websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return errReadSensor.Wrap(err)
		}

		reading, ok := decodeFrame(ctx, w.Name(), msg)
		if !ok {
			continue
		}

		if !send(ctx, out, reading) {
			return nil
		}
	}
}

func decodeFrame(ctx context.Context, source string, msg []byte) (Reading, bool) {
	var f frame

	err := sonic.Unmarshal(msg, &f)
	if err != nil {
		return Reading{Source: source, Err: errDecodeFrame.Wrap(err)}, true
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("sensor frame", slog.String("frame", logging.Dump(f)))
	}

	if f.Error != "" {
		return Reading{Source: source, Err: errBridgeReported.Fmt(f.Error)}, true
	}

	r := Reading{Source: source}

	if f.Lat != nil && f.Lng != nil {
		pos := geo.Coordinate{Lat: *f.Lat, Lng: *f.Lng}
		if pos.Valid() {
			r.Position = &pos
		}
	}

	heading := f.Heading
	if f.CompassHeading != nil {
		heading = f.CompassHeading
	}

	if heading != nil {
		h := normalizeHeading(*heading)
		r.Heading = &h
	}

	if r.Position == nil && r.Heading == nil {
		return Reading{}, false
	}

	return r, true
}
