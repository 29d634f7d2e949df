package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/tickreport"
	md "github.com/nao1215/markdown"
)

// digestRows is how many movers the markdown digests list.
const digestRows = 10

// DiffMarkdown renders the console digest of a diff report.
func DiffMarkdown(r *tickreport.DiffReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price Changes")
	doc.PlainText(fmt.Sprintf("Comparing %s (%s) to %s (%s).",
		md.Code(r.Previous.ShortID()), stampOr(r.Previous.Stamp),
		md.Code(r.Current.ShortID()), stampOr(r.Current.Stamp)))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Stocks"),
			md.Bold(strconv.Itoa(r.Total)),
		},
		Rows: [][]string{
			{"Gainers", strconv.Itoa(len(r.Gainers()))},
			{"Losers", strconv.Itoa(len(r.Losers()))},
			{"Unchanged", strconv.Itoa(len(r.Unchanged()))},
		},
	})

	if len(r.Records) > 0 {
		doc.H2("Top Movers")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Price", "Change", "Percent"},
		}
		for _, rec := range r.Top(digestRows) {
			table.Rows = append(table.Rows, []string{
				rec.Ticker,
				tickreport.USD(rec.CurrentPrice).String(),
				tickreport.USD(rec.Change).SignedString(),
				rec.Percent.SignedString(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// OverviewMarkdown renders the console digest of an overview report. It is
// also the digest.md artifact published next to the HTML report.
func OverviewMarkdown(r *tickreport.OverviewReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Overview")
	doc.PlainText(fmt.Sprintf("Sampled %d revisions, generated %s.", len(r.Revisions), r.Stamp))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Stocks"),
			md.Bold(strconv.Itoa(r.Total)),
		},
		Rows: [][]string{
			{"Gainers", strconv.Itoa(r.Gainers)},
			{"Losers", strconv.Itoa(r.Losers)},
			{"Unchanged", strconv.Itoa(r.Unchanged)},
		},
	})

	if len(r.Histories) > 0 {
		doc.H2("Top Movers")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Current", "Change", "Percent", "Min", "Max", "Avg"},
		}
		for _, h := range r.Top(digestRows) {
			s := h.Stats
			table.Rows = append(table.Rows, []string{
				h.Ticker,
				tickreport.USD(s.Current).String(),
				tickreport.USD(s.Change).SignedString(),
				s.Percent.SignedString(),
				tickreport.USD(s.Min).String(),
				tickreport.USD(s.Max).String(),
				tickreport.USD(s.Average).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
