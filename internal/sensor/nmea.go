package sensor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/fsnotify/fsnotify"

	"github.com/shoreday/shoreday/internal/geo"
)

// NMEA reads NMEA-0183 sentences from a log file or serial device. Position
// comes from RMC, GGA and GLL sentences and heading from HDT and HDG. With
// Follow set, the file is tailed for appended sentences.
type NMEA struct {
	Path   string
	Follow bool
}

func (n *NMEA) Name() string {
	return "nmea:" + n.Path
}

func (n *NMEA) Run(ctx context.Context, out chan<- Reading) error {
	f, err := os.Open(n.Path)
	if err != nil {
		return errOpenNMEA.Fmt(n.Path).Wrap(err)
	}

	defer f.Close()

	if !n.Follow {
		// Device reads block until data arrives.
		stop := context.AfterFunc(ctx, func() {
			_ = f.Close()
		})
		defer stop()

		err = n.scan(ctx, f, out)
		if ctx.Err() != nil {
			return nil
		}

		return err
	}

	return n.follow(ctx, f, out)
}

func (n *NMEA) scan(ctx context.Context, r io.Reader, out chan<- Reading) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		reading, ok := parseSentence(n.Name(), scanner.Text())
		if !ok {
			continue
		}

		if !send(ctx, out, reading) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return errReadNMEA.Wrap(err)
	}

	return nil
}

func (n *NMEA) follow(ctx context.Context, f *os.File, out chan<- Reading) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errWatchNMEA.Fmt(n.Path).Wrap(err)
	}

	defer watcher.Close()

	err = watcher.Add(n.Path)
	if err != nil {
		return errWatchNMEA.Fmt(n.Path).Wrap(err)
	}

	r := bufio.NewReader(f)

	var partial string

	for {
		partial, err = n.drain(ctx, r, partial, out)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Info("NMEA source moved away", slog.String("path", n.Path))
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn(
				"watching NMEA source failed",
				slog.String("path", n.Path),
				slog.Any("error", err),
			)
		}
	}
}

// drain reads every complete line currently available. An incomplete
// trailing line is returned so that it can be finished on the next write.
func (n *NMEA) drain(
	ctx context.Context,
	r *bufio.Reader,
	partial string,
	out chan<- Reading,
) (string, error) {
	for {
		line, err := r.ReadString('\n')
		partial += line

		if errors.Is(err, io.EOF) {
			return partial, nil
		}

		if err != nil {
			return "", errReadNMEA.Wrap(err)
		}

		reading, ok := parseSentence(n.Name(), partial)
		partial = ""

		if !ok {
			continue
		}

		if !send(ctx, out, reading) {
			return "", nil
		}
	}
}

// parseSentence converts one NMEA sentence into a reading. Sentences that
// carry neither position nor heading are skipped.
func parseSentence(source, line string) (Reading, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Reading{}, false
	}

	s, err := nmea.Parse(line)
	if err != nil {
		return Reading{Source: source, Err: errParseNMEA.Wrap(err)}, true
	}

	switch m := s.(type) {
	case nmea.RMC:
		if m.Validity != nmea.ValidRMC {
			return Reading{Source: source, Err: errNoFix.Fmt(nmea.TypeRMC)}, true
		}

		return positionReading(source, m.Latitude, m.Longitude), true
	case nmea.GGA:
		if m.FixQuality == nmea.Invalid {
			return Reading{Source: source, Err: errNoFix.Fmt(nmea.TypeGGA)}, true
		}

		return positionReading(source, m.Latitude, m.Longitude), true
	case nmea.GLL:
		if m.Validity != nmea.ValidGLL {
			return Reading{Source: source, Err: errNoFix.Fmt(nmea.TypeGLL)}, true
		}

		return positionReading(source, m.Latitude, m.Longitude), true
	case nmea.HDT:
		return headingReading(source, m.Heading), true
	case nmea.HDG:
		return headingReading(source, m.Heading), true
	}

	return Reading{}, false
}

func positionReading(source string, lat, lng float64) Reading {
	return Reading{
		Source:   source,
		Position: &geo.Coordinate{Lat: lat, Lng: lng},
	}
}

func headingReading(source string, heading float64) Reading {
	h := normalizeHeading(heading)

	return Reading{
		Source:  source,
		Heading: &h,
	}
}
