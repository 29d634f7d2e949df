package renderer

import (
	"fmt"

	"github.com/etnz/tickreport"
)

// stampOr guards header stamps: a revision without a timestamp renders as
// "N/A" rather than an empty column.
func stampOr(stamp string) string {
	if stamp == "" {
		return "N/A"
	}
	return stamp
}

// usd formats a raw price the way the report cells show it.
func usd(v float64) string { return fmt.Sprintf("$%.2f", v) }

// signedUSD prefixes a plus on non-negative amounts. The minus stays with
// the number, "$-5.00", keeping the historical cell format.
func signedUSD(v float64) string {
	if v >= 0 {
		return "+" + usd(v)
	}
	return usd(v)
}

func signedPercent(p tickreport.Percent) string {
	if p >= 0 {
		return fmt.Sprintf("+%.2f%%", float64(p))
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

// signClass maps a movement direction to the report's CSS class. Zero
// counts as positive, matching the sign the cells print.
func signClass(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
