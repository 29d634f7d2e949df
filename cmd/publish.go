package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/tickreport"
	"github.com/etnz/tickreport/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	outputDir string
	sample    int
}

func (*publishCmd) Name() string { return "publish" }
func (*publishCmd) Synopsis() string {
	return "run both pipelines and write every artifact into one output tree"
}
func (*publishCmd) Usage() string {
	return `tkr publish [-o <dir>] [-n <revisions>]

  Runs the diff and overview pipelines and writes changes.diff,
  report.html, summary.json and digest.md into the output directory.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Output directory for the artifacts (defaults to the configured one)")
	f.IntVar(&c.sample, "n", 0, "Number of revisions to sample (defaults to the configured sample)")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := runPublish(c.outputDir, c.sample); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runPublish is the publish pipeline proper, shared with the watch command:
// it opens the universe fresh, so every run sees the newest revisions.
func runPublish(outputDir string, sample int) error {
	u, cfg, done, err := openUniverse()
	if err != nil {
		return err
	}
	defer done()

	if outputDir == "" {
		outputDir = cfg.Output
	}
	if sample <= 0 {
		sample = cfg.Sample
	}

	diff, err := u.NewDiffReport()
	if err != nil {
		return err
	}
	overview, err := u.NewOverviewReport(sample)
	if err != nil {
		return err
	}

	html, err := renderer.OverviewHTML(overview)
	if err != nil {
		return err
	}
	var summary bytes.Buffer
	if err := tickreport.WriteSummary(&summary, overview); err != nil {
		return err
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{"changes.diff", []byte(renderer.DiffText(diff))},
		{"report.html", []byte(html)},
		{"summary.json", summary.Bytes()},
		{"digest.md", []byte(renderer.OverviewMarkdown(overview))},
	}
	for _, a := range artifacts {
		p, err := writeArtifact(outputDir, a.name, a.data)
		if err != nil {
			return err
		}
		log.Printf("Generated %s", p)
	}
	return nil
}
