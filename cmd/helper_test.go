package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/tickreport/snaplog"
	"github.com/google/subcommands"
)

// executeCmd runs one subcommand the way the commander would: flags bound,
// arguments parsed, Execute called.
func executeCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), fs)
}

// setFlag overrides a global flag for the duration of one test.
func setFlag(t *testing.T, p *string, value string) {
	t.Helper()
	old := *p
	*p = value
	t.Cleanup(func() { *p = old })
}

// seedLog creates a snapshot log holding three revisions of a two-ticker
// universe (AAA rising, BBB falling) and points the configuration at it
// through the environment. main.txt is a perfectly parsable file that only
// the default exclusion list keeps out of the reports.
func seedLog(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "prices.db")
	l, err := snaplog.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer l.Close()

	appends := []struct {
		stamp string
		files map[string]string
	}{
		{"2025-07-13 10:00:00 +0000", map[string]string{
			"AAA.txt":  "Price: 90\nUpdated: 2025-07-13 09:30:00\n",
			"BBB.txt":  "Price: 40\nUpdated: 2025-07-13 09:30:00\n",
			"main.txt": "Price: 999\nUpdated: 2025-07-13 09:30:00\n",
		}},
		{"2025-07-14 10:00:00 +0000", map[string]string{
			"AAA.txt": "Price: 100\nUpdated: 2025-07-14 09:30:00\n",
			"BBB.txt": "Price: 50\nUpdated: 2025-07-14 09:30:00\n",
		}},
		{"2025-07-15 10:00:00 +0000", map[string]string{
			"AAA.txt": "Price: 110\nUpdated: 2025-07-15 09:30:00\n",
			"BBB.txt": "Price: 45\nUpdated: 2025-07-15 09:30:00\n",
		}},
	}
	for _, a := range appends {
		if _, err := l.Append(a.stamp, a.files); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	t.Setenv("TICKREPORT_STORE", StoreLog)
	t.Setenv("TICKREPORT_LOG", dbPath)
	return dbPath
}
