package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/tickreport"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is where the configuration file is looked up, relative
// to the working directory the tool runs in.
const defaultConfigPath = ".tickreport.yaml"

// History store kinds.
const (
	StoreGit = "git"
	StoreLog = "log"
)

// Config holds the application configuration: where the ticker history
// lives and how reports are produced.
type Config struct {
	Store    string   `yaml:"store"`    // history store, git or log
	Repo     string   `yaml:"repo"`     // git repository directory
	Log      string   `yaml:"log"`      // snapshot log database file
	Tickers  string   `yaml:"tickers"`  // glob matching the ticker files
	Exclude  []string `yaml:"exclude"`  // file names excluded from the universe
	Output   string   `yaml:"output"`   // artifact output directory
	Sample   int      `yaml:"sample"`   // revisions sampled by the overview
	Schedule string   `yaml:"schedule"` // cron schedule of the watch command
}

// LoadConfig reads the YAML configuration file, then applies TICKREPORT_*
// environment overrides and fills defaults. A missing file is not an error:
// the defaults describe a git repository in the working directory.
func LoadConfig(path string) (*Config, error) {
	// .env values become visible both to the overrides below and to
	// executed extensions.
	godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	}

	// Environment overrides.
	if v := os.Getenv("TICKREPORT_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("TICKREPORT_REPO"); v != "" {
		cfg.Repo = v
	}
	if v := os.Getenv("TICKREPORT_LOG"); v != "" {
		cfg.Log = v
	}
	if v := os.Getenv("TICKREPORT_TICKERS"); v != "" {
		cfg.Tickers = v
	}
	if v := os.Getenv("TICKREPORT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("TICKREPORT_SAMPLE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sample = n
		}
	}
	if v := os.Getenv("TICKREPORT_SCHEDULE"); v != "" {
		cfg.Schedule = v
	}

	// Defaults.
	if cfg.Store == "" {
		cfg.Store = StoreGit
	}
	if cfg.Repo == "" {
		cfg.Repo = "."
	}
	if cfg.Log == "" {
		cfg.Log = "prices.db"
	}
	if cfg.Tickers == "" {
		cfg.Tickers = "*.txt"
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{"main.txt"}
	}
	if cfg.Output == "" {
		cfg.Output = "artifacts"
	}
	if cfg.Sample == 0 {
		cfg.Sample = tickreport.DefaultSample
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Store != StoreGit && c.Store != StoreLog {
		return fmt.Errorf("store must be %q or %q, got %q", StoreGit, StoreLog, c.Store)
	}
	if c.Sample < tickreport.DiffSample {
		return fmt.Errorf("sample must be at least %d, got %d", tickreport.DiffSample, c.Sample)
	}
	if _, err := scheduleParser.Parse(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	return nil
}
