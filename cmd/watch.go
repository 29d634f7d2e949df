package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

// scheduleParser reads six-field cron expressions with a leading seconds
// field (plus @every-style descriptors), shared by the configuration
// validation and the watch loop.
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type watchCmd struct {
	schedule  string
	outputDir string
	sample    int
}

func (*watchCmd) Name() string { return "watch" }
func (*watchCmd) Synopsis() string {
	return "publish the reports on a cron schedule until interrupted"
}
func (*watchCmd) Usage() string {
	return `tkr watch [-schedule <cron>] [-o <dir>] [-n <revisions>]

  Runs the publish pipeline immediately and then on every tick of the cron
  schedule, until interrupted. The schedule has a leading seconds field;
  the default publishes at the top of every hour. A failing run is logged
  and the next tick tries again.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.schedule, "schedule", "", "Cron schedule with seconds field (defaults to the configured one)")
	f.StringVar(&c.outputDir, "o", "", "Output directory for the artifacts (defaults to the configured one)")
	f.IntVar(&c.sample, "n", 0, "Number of revisions to sample (defaults to the configured sample)")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	schedule := c.schedule
	if schedule == "" {
		schedule = cfg.Schedule
	}

	run := func() {
		if err := runPublish(c.outputDir, c.sample); err != nil {
			log.Printf("publish failed: %v", err)
		}
	}

	// DelayIfStillRunning serializes the runs: a tick firing while the
	// previous publish is still writing waits its turn.
	sched := cron.New(
		cron.WithParser(scheduleParser),
		cron.WithChain(cron.DelayIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := sched.AddFunc(schedule, run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", schedule, err)
		return subcommands.ExitUsageError
	}

	run()
	sched.Start()
	log.Printf("Watching on schedule %q, interrupt to stop", schedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		log.Printf("%s received, stopping", s)
	case <-ctx.Done():
	}

	// Let a publish in flight finish writing its artifacts.
	<-sched.Stop().Done()
	return subcommands.ExitSuccess
}
