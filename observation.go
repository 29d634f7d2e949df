package tickreport

import (
	"strconv"
	"strings"
)

// Line prefixes recognized in ticker files.
const (
	pricePrefix     = "Price:"
	timestampPrefix = "Updated:"
)

// An Observation is the structured content of one ticker snapshot: the
// price and an opaque update timestamp, either of which may be absent. The
// zero value is the fully absent observation.
type Observation struct {
	Price     float64
	HasPrice  bool
	Timestamp string // raw string following "Updated:", empty when absent
}

// ParseObservation extracts an observation from a snapshot's text content.
//
// The format is a line-prefix convention: a line starting with "Price:"
// carries the price, parsed as a float from the trimmed remainder; a line
// starting with "Updated:" carries the timestamp, kept as-is after
// trimming, with no date validation. The last well-formed occurrence wins.
// Parsing is deliberately best-effort: a malformed price line leaves the
// price untouched without aborting the scan, and unrecognized lines are
// ignored, so partially written or legacy files produce partial
// observations rather than failures.
func ParseObservation(content string) Observation {
	var obs Observation
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, pricePrefix):
			raw := strings.TrimSpace(strings.TrimPrefix(line, pricePrefix))
			if price, err := strconv.ParseFloat(raw, 64); err == nil {
				obs.Price = price
				obs.HasPrice = true
			}
		case strings.HasPrefix(line, timestampPrefix):
			obs.Timestamp = strings.TrimSpace(strings.TrimPrefix(line, timestampPrefix))
		}
	}
	return obs
}

// timestampOr returns the observation's timestamp, falling back to the
// revision stamp when the file carried none.
func (o Observation) timestampOr(fallback string) string {
	if o.Timestamp != "" {
		return o.Timestamp
	}
	return fallback
}
