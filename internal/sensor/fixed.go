package sensor

import (
	"context"

	"github.com/shoreday/shoreday/internal/geo"
)

// Fixed reports a single static position, and optionally a heading.
type Fixed struct {
	Heading  *float64
	Position geo.Coordinate
}

func (f *Fixed) Name() string {
	return "fixed"
}

func (f *Fixed) Run(ctx context.Context, out chan<- Reading) error {
	pos := f.Position

	send(ctx, out, Reading{
		Source:   f.Name(),
		Position: &pos,
		Heading:  f.Heading,
	})

	return nil
}
