package tickreport

// Statistics summarizes the sampled price history of one ticker.
type Statistics struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Average  float64 `json:"average"`
	Change   float64 `json:"change"`
	Percent  Percent `json:"percent"`
}

// Aggregate derives statistics from a sequence of observations ordered
// newest first. Observations without a price are dropped; ok is false when
// nothing remains. A single surviving observation compares the current
// price to itself (previous == current), a degenerate case, not an error.
func Aggregate(observations []Observation) (stats Statistics, ok bool) {
	prices := make([]float64, 0, len(observations))
	for _, obs := range observations {
		if obs.HasPrice {
			prices = append(prices, obs.Price)
		}
	}
	if len(prices) == 0 {
		return Statistics{}, false
	}

	stats.Current = prices[0]
	stats.Previous = stats.Current
	if len(prices) > 1 {
		stats.Previous = prices[1]
	}

	stats.Min, stats.Max = prices[0], prices[0]
	var sum float64
	for _, p := range prices {
		if p < stats.Min {
			stats.Min = p
		}
		if p > stats.Max {
			stats.Max = p
		}
		sum += p
	}
	stats.Average = sum / float64(len(prices))

	stats.Change = stats.Current - stats.Previous
	stats.Percent = percentChange(stats.Previous, stats.Current)
	return stats, true
}
