package itinerary

import "strconv"

// Budget summarises the priced activities of a plan.
type Budget struct {
	ByKind map[Kind]float64 `json:"by_kind"`
	Items  []Activity       `json:"items"`
	Total  float64          `json:"total"`
}

// NewBudget totals the prices of the given activities. Items lists only the
// activities with a positive price.
func NewBudget(activities []Activity) Budget {
	b := Budget{
		ByKind: make(map[Kind]float64),
	}

	for i := range activities {
		a := activities[i]

		b.Total += a.PriceEUR

		if a.PriceEUR > 0 {
			b.Items = append(b.Items, a)
			b.ByKind[a.Kind] += a.PriceEUR
		}
	}

	return b
}

// FormatEUR renders an amount in euros without trailing zeros.
func FormatEUR(v float64) string {
	return "€" + strconv.FormatFloat(v, 'f', -1, 64)
}
