package app

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/shoreday/shoreday/internal/geo"
	"github.com/shoreday/shoreday/internal/guide"
	"github.com/shoreday/shoreday/internal/itinerary"
	"github.com/shoreday/shoreday/internal/ui"
	"github.com/shoreday/shoreday/timeline"
)

const (
	noPricesMsg = "Nothing to pay for on this itinerary"
)

// planReport is the JSON form of the plan command.
type planReport struct {
	Now       time.Time        `json:"now"`
	Position  *geo.Coordinate  `json:"position,omitempty"`
	Heading   *float64         `json:"heading,omitempty"`
	Trip      itinerary.Trip   `json:"trip"`
	Countdown string           `json:"countdown,omitempty"`
	Stops     []itinerary.View `json:"stops"`
	Current   int              `json:"current"`
	Aboard    bool             `json:"aboard"`
}

func newPlanReport(
	plan *itinerary.Plan,
	sig itinerary.Signals,
	views []itinerary.View,
) planReport {
	r := planReport{
		Now:      sig.Now,
		Position: sig.Position,
		Heading:  sig.Heading,
		Trip:     plan.Trip,
		Stops:    views,
		Current:  itinerary.Current(views),
	}

	if plan.Trip.OnboardTime != "" {
		r.Countdown, r.Aboard = itinerary.FormatCountdown(
			itinerary.Countdown(sig.Now, plan.Trip.OnboardTime),
		)
	}

	return r
}

func printPlanHeader(plan *itinerary.Plan, now time.Time) {
	title := firstNonEmptyString(plan.Trip.Name, plan.Trip.City, "Itinerary")

	pterm.DefaultSection.Println(title)

	if plan.Trip.OnboardTime == "" {
		return
	}

	left, aboard := itinerary.FormatCountdown(
		itinerary.Countdown(now, plan.Trip.OnboardTime),
	)

	if aboard {
		pterm.Warning.Printfln("All aboard time %s has passed", plan.Trip.OnboardTime)
		return
	}

	pterm.Info.Printfln("All aboard %s in %s", plan.Trip.OnboardTime, left)
}

func indicatorText(ind *itinerary.Indicator) string {
	if ind == nil {
		return ""
	}

	if ind.Arrived {
		return ui.Green("arrived")
	}

	return ind.Distance() + " " + timeline.Arrow(ind.Rotation)
}

func notesText(a *itinerary.Activity) string {
	if a.Critical() {
		return ui.Red(itinerary.NoteCritical)
	}

	return a.Notes
}

// printPlanTable prints the itinerary snapshot. Gaps get a row of their own
// above the activity they precede.
func printPlanTable(w io.Writer, views []itinerary.View, current int) {
	tableBody := [][]string{
		{"#", "TIME", "ACTIVITY", "KIND", "PROGRESS", "DISTANCE", "NOTES"},
	}

	for i := range views {
		v := &views[i]
		a := &v.Activity

		if v.Gap != nil {
			label := "transfer"
			if v.Gap.Free() {
				label = "free time"
			}

			tableBody = append(tableBody, []string{
				"",
				"",
				ui.Magenta(v.Gap.Label() + " " + label),
				"",
				ui.Progress(v.Gap.Progress),
				"",
				"",
			})
		}

		num := strconv.Itoa(i + 1)
		if i == current {
			num = "▸ " + num
		}

		title := a.Title
		if a.Completed {
			title += " " + ui.Green("✓")
		}

		tableBody = append(tableBody, []string{
			num,
			fmt.Sprintf("%s-%s (%s)", a.Start, a.End, v.Duration),
			title,
			ui.Kind(string(a.Kind)),
			ui.Progress(v.Progress),
			indicatorText(v.Indicator),
			notesText(a),
		})
	}

	ui.PrintTable(tableBody, w)
}

func printBudgetTable(w io.Writer, b itinerary.Budget) {
	tableBody := [][]string{
		{"#", "ACTIVITY", "KIND", "PRICE"},
	}

	for i := range b.Items {
		a := &b.Items[i]

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			a.Title,
			ui.Kind(string(a.Kind)),
			itinerary.FormatEUR(a.PriceEUR),
		})
	}

	tableBody = append(tableBody, []string{
		"", ui.Highlight("TOTAL"), "", ui.Highlight(itinerary.FormatEUR(b.Total)),
	})

	ui.PrintTable(tableBody, w)
}

func printGuide(w io.Writer, plan *itinerary.Plan) {
	sum := guide.Summarize(plan)

	fmt.Fprintf(
		w,
		"Ashore %s to %s (%s)\nSightseeing %s, transport %s, walking %s\n\n",
		sum.Arrive,
		sum.Depart,
		itinerary.FormatMinutes(sum.PortMinutes),
		itinerary.FormatMinutes(sum.SightseeingMinutes),
		itinerary.FormatMinutes(sum.TransportMinutes),
		geo.FormatDistance(sum.WalkKM),
	)

	if len(plan.Phrases) == 0 {
		return
	}

	tableBody := [][]string{
		{"PHRASE", "PRONUNCIATION", "SAY IT", "MEANING"},
	}

	for _, p := range plan.Phrases {
		tableBody = append(tableBody, []string{
			ui.Cyan(p.Word),
			p.Phonetic,
			p.Simplified,
			p.Meaning,
		})
	}

	ui.PrintTable(tableBody, w)
}
