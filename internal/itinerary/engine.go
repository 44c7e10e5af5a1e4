package itinerary

import (
	"time"

	"github.com/shoreday/shoreday/internal/geo"
)

// FreeGapMinutes is the gap length above which a gap is shown as free time
// rather than a transfer.
const FreeGapMinutes = 30

// Signals carries the latest value of each input the engine depends on.
// A nil Position means no fix is known. A nil Heading is treated as 0, so
// the arrow then points at the raw bearing.
type Signals struct {
	Now      time.Time
	Position *geo.Coordinate
	Heading  *float64
}

// HeadingOrZero returns the known heading or 0.
func (s Signals) HeadingOrZero() float64 {
	if s.Heading == nil {
		return 0
	}

	return *s.Heading
}

// GapView is the interval preceding an activity.
type GapView struct {
	Minutes  int     `json:"minutes"`
	Progress float64 `json:"progress"`
}

// Label renders the gap length.
func (g GapView) Label() string {
	return FormatMinutes(g.Minutes)
}

// Free reports whether the gap is long enough to count as free time.
func (g GapView) Free() bool {
	return g.Minutes > FreeGapMinutes
}

// View is the display-ready state of one activity at a point in time.
type View struct {
	Gap       *GapView   `json:"gap,omitempty"`
	Indicator *Indicator `json:"indicator,omitempty"`
	Activity  Activity   `json:"activity"`
	Duration  string     `json:"duration"`
	Progress  float64    `json:"progress"`
}

// Snapshot derives the view of every activity, in itinerary order, from the
// given signals. Gap is set only when the preceding gap is positive and
// Indicator only when a position is known.
func Snapshot(activities []Activity, sig Signals) []View {
	views := make([]View, 0, len(activities))

	for i := range activities {
		a := activities[i]

		v := View{
			Activity: a,
			Progress: TimeProgress(sig.Now, a.Start, a.End),
			Duration: CalculateDuration(a.Start, a.End),
		}

		if i > 0 {
			prev := activities[i-1]

			if gap := Gap(prev.End, a.Start); gap > 0 {
				v.Gap = &GapView{
					Minutes:  gap,
					Progress: TimeProgress(sig.Now, prev.End, a.Start),
				}
			}
		}

		if sig.Position != nil {
			ind := Direction(*sig.Position, a.Coords, sig.HeadingOrZero())
			v.Indicator = &ind
		}

		views = append(views, v)
	}

	return views
}

// Current returns the index of the first activity that has not finished at
// now, or -1 when the day is over.
func Current(views []View) int {
	for i := range views {
		if views[i].Progress < 100 {
			return i
		}
	}

	return -1
}
