package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/etnz/tickreport"
)

// How much of the ranking the HTML report shows.
const (
	ChartLimit = 12
	TableLimit = 20
)

//go:embed report.html.tmpl
var templates embed.FS

var reportTemplate = template.Must(template.ParseFS(templates, "report.html.tmpl"))

// overviewPage is the template's view of an overview report, with every
// cell preformatted.
type overviewPage struct {
	Stamp     string
	Total     int
	Gainers   int
	Losers    int
	Unchanged int
	Charts    []chartView
	Rows      []rowView
	ChartData template.JS
	RunID     string
}

type chartView struct {
	Ticker  string
	Current string
	Change  string
	Class   string
}

type rowView struct {
	Ticker   string
	Current  string
	Previous string
	Change   string
	Percent  string
	Min      string
	Max      string
	Average  string
	Class    string
}

// OverviewHTML renders the self-contained HTML report: stat cards, one
// chart per top mover, the summary table, and the embedded chart payload
// consumed by Chart.js from the CDN.
//
// The change cell's sign tracks the absolute change while the percent cell
// and the CSS class track the percent; under the zero-baseline rule they
// can differ.
func OverviewHTML(r *tickreport.OverviewReport) (string, error) {
	charted := r.Top(ChartLimit)
	chartData, err := tickreport.ChartData(charted)
	if err != nil {
		return "", fmt.Errorf("cannot encode chart data: %w", err)
	}

	page := overviewPage{
		Stamp:     r.Stamp,
		Total:     r.Total,
		Gainers:   r.Gainers,
		Losers:    r.Losers,
		Unchanged: r.Unchanged,
		ChartData: template.JS(chartData),
		RunID:     r.RunID,
	}
	for _, h := range charted {
		page.Charts = append(page.Charts, chartView{
			Ticker:  h.Ticker,
			Current: usd(h.Stats.Current),
			Change:  signedPercent(h.Stats.Percent),
			Class:   signClass(h.Stats.Percent >= 0),
		})
	}
	for _, h := range r.Top(TableLimit) {
		s := h.Stats
		page.Rows = append(page.Rows, rowView{
			Ticker:   h.Ticker,
			Current:  usd(s.Current),
			Previous: usd(s.Previous),
			Change:   signedUSD(s.Change),
			Percent:  signedPercent(s.Percent),
			Min:      usd(s.Min),
			Max:      usd(s.Max),
			Average:  usd(s.Average),
			Class:    signClass(s.Percent >= 0),
		})
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, page); err != nil {
		return "", fmt.Errorf("cannot render report: %w", err)
	}
	return b.String(), nil
}
