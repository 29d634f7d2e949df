package tickreport

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

// WriteSummary writes the summary.json artifact of an overview report: run
// metadata, universe counts, and the ranked movers with their statistics.
// Keys keep their insertion order and the document is pretty-printed, so
// consecutive runs diff cleanly.
func WriteSummary(w io.Writer, r *OverviewReport) error {
	movers := make([]json.RawMessage, 0, len(r.Histories))
	for _, h := range r.Histories {
		var mover jsonObjectWriter
		mover.Append("ticker", h.Ticker)
		mover.EmbedFrom(h.Stats)
		raw, err := mover.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode mover %q: %w", h.Ticker, err)
		}
		movers = append(movers, raw)
	}

	var totals jsonObjectWriter
	totals.Append("tickers", r.Total)
	totals.Append("gainers", r.Gainers)
	totals.Append("losers", r.Losers)
	totals.Append("unchanged", r.Unchanged)

	var doc jsonObjectWriter
	doc.Append("run_id", r.RunID)
	doc.Append("generated_at", r.Stamp)
	doc.Append("revisions", len(r.Revisions))
	doc.Append("totals", &totals)
	doc.Append("movers", movers)

	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode summary: %w", err)
	}
	if _, err := w.Write(pretty.Pretty(data)); err != nil {
		return fmt.Errorf("cannot write summary: %w", err)
	}
	return nil
}

// ChartData encodes the label/price series of the given histories as a
// single JSON object keyed by ticker, preserving mover order. The HTML
// renderer embeds it as the client-side charting payload.
func ChartData(histories []TickerHistory) ([]byte, error) {
	var doc jsonObjectWriter
	for _, h := range histories {
		var series jsonObjectWriter
		series.Append("labels", h.Labels)
		series.Append("prices", h.Prices)
		doc.Append(h.Ticker, &series)
	}
	return doc.MarshalJSON()
}
