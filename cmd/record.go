package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/tickreport"
	"github.com/etnz/tickreport/snaplog"
	"github.com/google/subcommands"
)

// revStampLayout matches the stamps a git history produces, so labels and
// headers read the same whichever store backs a report.
const revStampLayout = "2006-01-02 15:04:05 -0700"

type recordCmd struct {
	ticker string
	price  string
	at     string
	dir    string
}

func (*recordCmd) Name() string { return "record" }
func (*recordCmd) Synopsis() string {
	return "append a revision of ticker prices to the snapshot log"
}
func (*recordCmd) Usage() string {
	return `tkr record -t <ticker> -price <price> [-at <stamp>]
tkr record -dir <dir> [-at <stamp>]

  Appends one revision to the snapshot log: either a single ticker priced
  on the command line, or every ticker file found in a directory. Files not
  part of the revision keep reading their previously recorded content.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to record")
	f.StringVar(&c.price, "price", "", "Price of the ticker")
	f.StringVar(&c.at, "at", "", "Timestamp of the revision (defaults to now)")
	f.StringVar(&c.dir, "dir", "", "Directory of ticker files to record as one revision")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.ticker == "") == (c.dir == "") {
		fmt.Fprintln(os.Stderr, "either -t or -dir must be provided")
		return subcommands.ExitUsageError
	}

	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stamp := c.at
	if stamp == "" {
		stamp = tickreport.Now().Format(revStampLayout)
	}

	files, status := c.revisionFiles(cfg, stamp)
	if status != subcommands.ExitSuccess {
		return status
	}

	l, err := snaplog.Open(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer l.Close()

	id, err := l.Append(stamp, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded revision %d (%d files) in %s\n", id, len(files), cfg.Log)
	return subcommands.ExitSuccess
}

// revisionFiles assembles the path-to-content map of the new revision. A
// priced ticker is written in the canonical two-line file format; a
// directory contributes its matching files verbatim.
func (c *recordCmd) revisionFiles(cfg *Config, stamp string) (map[string]string, subcommands.ExitStatus) {
	files := make(map[string]string)

	if c.ticker != "" {
		if c.price == "" {
			fmt.Fprintln(os.Stderr, "-price is required with -t")
			return nil, subcommands.ExitUsageError
		}
		if _, err := strconv.ParseFloat(c.price, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q\n", c.price)
			return nil, subcommands.ExitUsageError
		}
		files[c.ticker+".txt"] = "Price: " + c.price + "\nUpdated: " + stamp + "\n"
		return files, subcommands.ExitSuccess
	}

	matches, err := filepath.Glob(filepath.Join(c.dir, cfg.Tickers))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid ticker pattern %q: %v\n", cfg.Tickers, err)
		return nil, subcommands.ExitFailure
	}
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read %q: %v\n", m, err)
			return nil, subcommands.ExitFailure
		}
		files[filepath.Base(m)] = string(data)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v in %q\n", tickreport.ErrNoTickerFiles, c.dir)
		return nil, subcommands.ExitFailure
	}
	return files, subcommands.ExitSuccess
}
