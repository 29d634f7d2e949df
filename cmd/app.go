// Package cmd implements the CLI application to generate ticker reports.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tickreport"
	"github.com/etnz/tickreport/gitrev"
	"github.com/etnz/tickreport/snaplog"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	register(c, c.HelpCommand(), "")
	register(c, c.FlagsCommand(), "")
	register(c, c.CommandsCommand(), "")
	register(c, &topicCmd{}, "")

	register(c, &diffCmd{}, "reports")
	register(c, &reportCmd{}, "reports")
	register(c, &publishCmd{}, "reports")
	register(c, &watchCmd{}, "reports")

	register(c, &recordCmd{}, "snapshot log")
	register(c, &mirrorCmd{}, "snapshot log")
}

var builtins = make(map[string]bool)

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	builtins[cmd.Name()] = true
	c.Register(cmd, group)
}

// Builtin reports whether name is a registered subcommand. An unknown name
// may still resolve to a tkr-<name> extension, see RunExtension.
func Builtin(name string) bool { return builtins[name] }

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configPath = flag.String("config", defaultConfigPath, "Path to the configuration file")
	storeName  = flag.String("store", "", "History store, git or log (overrides the configuration)")
	repoDir    = flag.String("repo", "", "Git repository holding the ticker files (overrides the configuration)")
	logPath    = flag.String("log", "", "Snapshot log database file (overrides the configuration)")
	tickerGlob = flag.String("tickers", "", "Glob matching the ticker files (overrides the configuration)")
)

// appConfig loads the configuration file and applies the global flag
// overrides, so every command sees the same effective settings.
func appConfig() (*Config, error) {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	if *storeName != "" {
		cfg.Store = *storeName
	}
	if *repoDir != "" {
		cfg.Repo = *repoDir
	}
	if *logPath != "" {
		cfg.Log = *logPath
	}
	if *tickerGlob != "" {
		cfg.Tickers = *tickerGlob
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSource opens the configured history store. done releases it; only
// the snapshot log holds resources.
func openSource(cfg *Config) (src tickreport.Source, done func(), err error) {
	switch cfg.Store {
	case StoreLog:
		l, err := snaplog.Open(cfg.Log)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { l.Close() }, nil
	default:
		repo, err := gitrev.Open(cfg.Repo)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

// openUniverse is the central helper commands use to reach the tracked
// ticker files of the configured store.
func openUniverse() (*tickreport.Universe, *Config, func(), error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	src, done, err := openSource(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return tickreport.NewUniverse(src, cfg.Tickers, cfg.Exclude...), cfg, done, nil
}

// writeArtifact writes one report artifact under dir, creating the
// directory on demand, and returns the artifact path.
func writeArtifact(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("cannot write %q: %w", p, err)
	}
	return p, nil
}

// printMarkdown renders markdown with glamour when stdout is a terminal,
// and prints it raw otherwise (pipes, CI logs).
func printMarkdown(md string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if rendered, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(rendered)
			return
		}
	}
	fmt.Println(md)
}
