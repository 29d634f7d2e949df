package tickreport

import "sort"

// A Change is the price movement between two observations.
type Change struct {
	Absolute float64
	Percent  Percent
}

// ChangeOf compares two observations. It returns ok=false when either price
// is absent: a ticker without two comparable observations is excluded from
// ranking, not reported as a zero move. A zero previous price is a defined
// edge case, not an error: the percent change is 0.
func ChangeOf(previous, current Observation) (Change, bool) {
	if !previous.HasPrice || !current.HasPrice {
		return Change{}, false
	}
	return Change{
		Absolute: current.Price - previous.Price,
		Percent:  percentChange(previous.Price, current.Price),
	}, true
}

// percentChange applies the zero-baseline rule shared by both pipelines.
func percentChange(previous, current float64) Percent {
	if previous == 0 {
		return 0
	}
	return Percent((current - previous) / previous * 100)
}

// A ChangeRecord is the movement of one ticker between the two compared
// revisions.
type ChangeRecord struct {
	Ticker        string
	PreviousPrice float64
	CurrentPrice  float64
	Change        float64 // CurrentPrice - PreviousPrice
	Percent       Percent
	PreviousTime  string // "Updated:" field of the older snapshot, may be empty
	CurrentTime   string // "Updated:" field of the newer snapshot, may be empty
}

// sortByMagnitude orders records by descending absolute percent change,
// biggest movers first. The sort is stable so equal magnitudes keep their
// discovery order.
func sortByMagnitude(records []ChangeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Percent.Abs() > records[j].Percent.Abs()
	})
}
