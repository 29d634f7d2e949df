package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/tickreport"
	"github.com/etnz/tickreport/gitrev"
	"github.com/etnz/tickreport/snaplog"
	"github.com/google/subcommands"
)

type mirrorCmd struct {
	sample int
}

func (*mirrorCmd) Name() string { return "mirror" }
func (*mirrorCmd) Synopsis() string {
	return "copy recent git revisions into the snapshot log"
}
func (*mirrorCmd) Usage() string {
	return `tkr mirror [-n <revisions>]

  Copies the last n git revisions into the snapshot log, oldest first,
  preserving the commit stamps. Revisions already mirrored are skipped, so
  the command is safe to re-run. Use it to seed a log-backed deployment
  from an existing repository history.
`
}

func (c *mirrorCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.sample, "n", 0, "Number of recent git revisions to mirror (defaults to the configured sample)")
}

func (c *mirrorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	sample := c.sample
	if sample <= 0 {
		sample = cfg.Sample
	}

	repo, err := gitrev.Open(cfg.Repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	revisions, err := repo.Revisions(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(revisions) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", tickreport.ErrNoRevisions)
		return subcommands.ExitFailure
	}

	files, err := repo.TrackedFiles(cfg.Tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", tickreport.ErrNoTickerFiles)
		return subcommands.ExitFailure
	}

	l, err := snaplog.Open(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer l.Close()

	copied, skipped := 0, 0
	for i := len(revisions) - 1; i >= 0; i-- {
		rev := revisions[i]
		seen, err := l.Mirrored(rev.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if seen {
			skipped++
			continue
		}

		snapshot := make(map[string]string, len(files))
		for _, f := range files {
			if content, ok := repo.Content(rev.ID, f); ok {
				snapshot[f] = content
			}
		}
		if _, err := l.AppendMirrored(rev.ID, rev.Stamp, snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		log.Printf("Mirrored revision %s (%d files)", rev.ShortID(), len(snapshot))
		copied++
	}

	fmt.Printf("Mirrored %d revisions into %s (%d already present)\n", copied, cfg.Log, skipped)
	return subcommands.ExitSuccess
}
