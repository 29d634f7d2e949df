package tickreport

import (
	"fmt"
	"slices"
	"sort"
)

// A TickerHistory is the sampled price series of one ticker, ready for
// charting: labels and prices run oldest to newest, revisions where the
// ticker had no parsable price are skipped.
type TickerHistory struct {
	Ticker string
	Labels []string // chart labels, oldest first
	Prices []float64
	Stats  Statistics
}

// An OverviewReport samples the recent history of every tracked ticker and
// ranks tickers by the magnitude of their latest move.
type OverviewReport struct {
	RunID     string
	Stamp     string     // generation time, stampLayout format
	Revisions []Revision // sampled revisions, newest first
	Total     int        // tickers discovered
	Gainers   int
	Losers    int
	Unchanged int
	Histories []TickerHistory // sorted by descending absolute percent change
}

// NewOverviewReport samples the last sample revisions (DefaultSample when
// sample is not positive) and builds the price series and statistics of
// every tracked ticker.
//
// The gainer/loser/unchanged counts deliberately follow the two newest
// revisions only, so they describe the latest move of the whole universe: a
// ticker priced in just one of the two counts as unchanged, and a ticker
// priced in neither is not counted, even when its longer history earns it a
// chart. It fails with ErrNoRevisions on an empty history and
// ErrNoTickerFiles on an empty universe.
func (u *Universe) NewOverviewReport(sample int) (*OverviewReport, error) {
	if sample <= 0 {
		sample = DefaultSample
	}
	revisions, err := u.src.Revisions(sample)
	if err != nil {
		return nil, fmt.Errorf("cannot read revisions: %w", err)
	}
	if len(revisions) == 0 {
		return nil, ErrNoRevisions
	}

	files, err := u.Files()
	if err != nil {
		return nil, err
	}

	report := &OverviewReport{
		RunID:     newRunID(),
		Stamp:     Now().Format(stampLayout),
		Revisions: revisions,
		Total:     len(files),
	}

	for _, file := range files {
		obs := u.observations(file, revisions)

		if latest, ok := Aggregate(obs[:min(DiffSample, len(obs))]); ok {
			switch {
			case latest.Percent > 0:
				report.Gainers++
			case latest.Percent < 0:
				report.Losers++
			default:
				report.Unchanged++
			}
		}

		stats, ok := Aggregate(obs)
		if !ok {
			continue
		}
		history := TickerHistory{Ticker: TickerOf(file), Stats: stats}
		for i, o := range obs {
			if !o.HasPrice {
				continue
			}
			history.Prices = append(history.Prices, o.Price)
			history.Labels = append(history.Labels, chartLabel(o.timestampOr(revisions[i].Stamp)))
		}
		slices.Reverse(history.Prices)
		slices.Reverse(history.Labels)
		report.Histories = append(report.Histories, history)
	}

	sort.SliceStable(report.Histories, func(i, j int) bool {
		return report.Histories[i].Stats.Percent.Abs() > report.Histories[j].Stats.Percent.Abs()
	})
	return report, nil
}

// Top returns up to the n biggest movers.
func (r *OverviewReport) Top(n int) []TickerHistory {
	if n > len(r.Histories) {
		n = len(r.Histories)
	}
	return r.Histories[:n]
}
