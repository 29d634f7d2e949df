package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tickreport"
)

// topMovers is how many gainer and loser rows the text artifact shows.
const topMovers = 10

var (
	ruleHeavy = strings.Repeat("=", 80)
	ruleLight = strings.Repeat("-", 80)
)

// DiffText renders the fixed-width text artifact of a diff report. Every
// width is fixed and every section is present even when empty, so archived
// artifacts line up and diff cleanly run over run.
func DiffText(r *tickreport.DiffReport) string {
	lines := []string{
		ruleHeavy,
		"STOCK PRICE CHANGES REPORT",
		ruleHeavy,
		"Previous Update: " + stampOr(r.Previous.Stamp),
		"Current Update:  " + stampOr(r.Current.Stamp),
		fmt.Sprintf("Total Stocks:    %d", r.Total),
		"",
		"SUMMARY:",
		fmt.Sprintf("  Gainers:   %d stocks", len(r.Gainers())),
		fmt.Sprintf("  Losers:    %d stocks", len(r.Losers())),
		fmt.Sprintf("  Unchanged: %d stocks", len(r.Unchanged())),
		"",
		ruleHeavy,
		"",
		fmt.Sprintf("TOP %d GAINERS:", topMovers),
		ruleLight,
	}
	for i, rec := range capRecords(r.Gainers(), topMovers) {
		lines = append(lines, fmt.Sprintf("%2d. %-6s +%6.2f%%  New: $%8.2f  Last: $%8.2f",
			i+1, rec.Ticker, float64(rec.Percent), rec.CurrentPrice, rec.PreviousPrice))
	}

	lines = append(lines, "", fmt.Sprintf("TOP %d LOSERS:", topMovers), ruleLight)
	for i, rec := range capRecords(r.Losers(), topMovers) {
		lines = append(lines, fmt.Sprintf("%2d. %-6s %7.2f%%  New: $%8.2f  Last: $%8.2f",
			i+1, rec.Ticker, float64(rec.Percent), rec.CurrentPrice, rec.PreviousPrice))
	}

	lines = append(lines, "", ruleHeavy, "", "DETAILED CHANGES (All Stocks):", ruleLight)
	for _, rec := range r.Records {
		sign := ""
		if rec.Percent >= 0 {
			sign = "+"
		}
		lines = append(lines, fmt.Sprintf("%-6s %s%7.2f%%  New: $%8.2f  Last: $%8.2f  Change: $%+8.2f",
			rec.Ticker, sign, float64(rec.Percent), rec.CurrentPrice, rec.PreviousPrice, rec.Change))
	}
	return strings.Join(lines, "\n")
}

func capRecords(records []tickreport.ChangeRecord, n int) []tickreport.ChangeRecord {
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}
