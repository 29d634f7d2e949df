package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tickreport/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	outputDir string
	sample    int
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "build the HTML overview of the recent price history"
}
func (*reportCmd) Usage() string {
	return `tkr report [-o <dir>] [-n <revisions>]

  Samples the recent revisions of every tracked ticker, computes per-ticker
  statistics, and writes the self-contained report.html page with charts of
  the top movers.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Output directory for the report (defaults to the configured one)")
	f.IntVar(&c.sample, "n", 0, "Number of revisions to sample (defaults to the configured sample)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, cfg, done, err := openUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer done()

	sample := c.sample
	if sample <= 0 {
		sample = cfg.Sample
	}

	fmt.Println("Generating HTML report...")
	files, err := u.Files()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Processing %d stocks for charts...\n", len(files))

	report, err := u.NewOverviewReport(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	html, err := renderer.OverviewHTML(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	dir := c.outputDir
	if dir == "" {
		dir = cfg.Output
	}
	p, err := writeArtifact(dir, "report.html", []byte(html))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("HTML report generated: %s\n", p)
	fmt.Printf("Charts created for %d stocks\n", min(renderer.ChartLimit, len(report.Histories)))
	fmt.Printf("Table includes %d stocks\n", min(renderer.TableLimit, len(report.Histories)))

	printMarkdown(renderer.OverviewMarkdown(report))
	return subcommands.ExitSuccess
}
