package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tickreport"
	"github.com/etnz/tickreport/renderer"
	"github.com/google/subcommands"
)

type diffCmd struct {
	outputDir string
}

func (*diffCmd) Name() string { return "diff" }
func (*diffCmd) Synopsis() string {
	return "compare ticker prices between the two newest revisions"
}
func (*diffCmd) Usage() string {
	return `tkr diff [-o <dir>]

  Compares every tracked ticker file between the two newest revisions,
  ranks the movers, and writes the fixed-width changes.diff report.
`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Output directory for the report (defaults to the configured one)")
}

func (c *diffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, cfg, done, err := openUniverse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer done()

	report, err := u.NewDiffReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, tickreport.ErrNotEnoughRevisions) {
			fmt.Fprintln(os.Stderr, "Record or commit at least two revisions first.")
		}
		return subcommands.ExitFailure
	}

	fmt.Println("Comparing revisions:")
	fmt.Printf("  Current:  %s\n", report.Current.ShortID())
	fmt.Printf("  Previous: %s\n", report.Previous.ShortID())

	dir := c.outputDir
	if dir == "" {
		dir = cfg.Output
	}
	p, err := writeArtifact(dir, "changes.diff", []byte(renderer.DiffText(report)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("\nDiff report generated: %s\n", p)
	fmt.Printf("Total stocks analyzed: %d\n", report.Total)
	fmt.Printf("Gainers: %d | Losers: %d | Unchanged: %d\n",
		len(report.Gainers()), len(report.Losers()), len(report.Unchanged()))

	printMarkdown(renderer.DiffMarkdown(report))
	return subcommands.ExitSuccess
}
