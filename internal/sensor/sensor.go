// Package sensor acquires the user's position and device heading from
// external sources and fans them into a single stream of readings.
package sensor

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/shoreday/shoreday/internal/geo"
)

const readingBuffer = 16

// Reading is a single update from a source. Position and Heading are nil when
// the update does not carry them. A reading with Err set carries no values
// and must not change the last known position or heading.
type Reading struct {
	Err      error
	Position *geo.Coordinate
	Heading  *float64
	Source   string
}

// Source produces readings until ctx is cancelled or the source is exhausted.
type Source interface {
	Name() string
	Run(ctx context.Context, out chan<- Reading) error
}

// Subscribe runs every source concurrently and merges their readings. The
// returned channel is closed once all sources have returned. stop cancels
// the sources and blocks until they have all exited; it is safe to call more
// than once.
func Subscribe(
	ctx context.Context,
	sources ...Source,
) (readings <-chan Reading, stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan Reading, readingBuffer)

	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := src.Run(ctx, out)
			if err == nil || errors.Is(err, context.Canceled) {
				return
			}

			slog.Warn(
				"position source stopped",
				slog.String("source", src.Name()),
				slog.Any("error", err),
			)

			send(ctx, out, Reading{Source: src.Name(), Err: err})
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var once sync.Once

	stop = func() {
		once.Do(func() {
			cancel()

			// Drain so that blocked senders can observe cancellation.
			for range out {
			}
		})
	}

	return out, stop
}

// send delivers r unless ctx is done first.
func send(ctx context.Context, out chan<- Reading, r Reading) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

func normalizeHeading(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

// Parse builds a source from a spec string of the form nmea:<path>,
// ws://… or wss://…, or fixed:<lat>,<lng>[,<heading>].
func Parse(spec string, follow bool) (Source, error) {
	switch {
	case strings.HasPrefix(spec, "nmea:"):
		path := strings.TrimPrefix(spec, "nmea:")
		if path == "" {
			return nil, errUnknownSource.Fmt(spec)
		}

		return &NMEA{Path: path, Follow: follow}, nil
	case strings.HasPrefix(spec, "ws://"), strings.HasPrefix(spec, "wss://"):
		return &WebSocket{URL: spec}, nil
	case strings.HasPrefix(spec, "fixed:"):
		return parseFixed(strings.TrimPrefix(spec, "fixed:"))
	}

	return nil, errUnknownSource.Fmt(spec)
}

func parseFixed(s string) (*Fixed, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, errInvalidFixed.Fmt(s)
	}

	values := make([]float64, len(parts))

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errInvalidFixed.Fmt(s).Wrap(err)
		}

		values[i] = v
	}

	f := &Fixed{
		Position: geo.Coordinate{Lat: values[0], Lng: values[1]},
	}

	if !f.Position.Valid() {
		return nil, errInvalidFixed.Fmt(s)
	}

	if len(values) == 3 {
		h := normalizeHeading(values[2])
		f.Heading = &h
	}

	return f, nil
}
