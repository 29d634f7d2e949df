package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tickreport/snaplog"
	"github.com/google/subcommands"
)

func TestRecordTickerThenDiff(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prices.db")
	t.Setenv("TICKREPORT_STORE", StoreLog)
	t.Setenv("TICKREPORT_LOG", dbPath)

	records := []struct {
		price string
		at    string
	}{
		{"100", "2025-07-14 10:00:00 +0000"},
		{"110", "2025-07-15 10:00:00 +0000"},
	}
	for _, r := range records {
		got := executeCmd(t, &recordCmd{}, "-t", "AAA", "-price", r.price, "-at", r.at)
		if got != subcommands.ExitSuccess {
			t.Fatalf("record -t AAA -price %s = %v, want ExitSuccess", r.price, got)
		}
	}

	out := t.TempDir()
	if got := executeCmd(t, &diffCmd{}, "-o", out); got != subcommands.ExitSuccess {
		t.Fatalf("diff after record = %v, want ExitSuccess", got)
	}
	data, err := os.ReadFile(filepath.Join(out, "changes.diff"))
	if err != nil {
		t.Fatal(err)
	}
	want := "AAA    +  10.00%  New: $  110.00  Last: $  100.00  Change: $  +10.00"
	if !strings.Contains(string(data), want) {
		t.Errorf("changes.diff missing %q\n%s", want, data)
	}
}

func TestRecordDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prices.db")
	t.Setenv("TICKREPORT_STORE", StoreLog)
	t.Setenv("TICKREPORT_LOG", dbPath)

	dir := t.TempDir()
	writes := map[string]string{
		"AAA.txt":  "Price: 12.5\nUpdated: 2025-07-15 09:30:00\n",
		"BBB.txt":  "Price: 7\nUpdated: 2025-07-15 09:30:00\n",
		"notes.md": "not a ticker file\n",
	}
	for name, content := range writes {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := executeCmd(t, &recordCmd{}, "-dir", dir, "-at", "2025-07-15 10:00:00 +0000")
	if got != subcommands.ExitSuccess {
		t.Fatalf("record -dir = %v, want ExitSuccess", got)
	}

	l, err := snaplog.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	revisions, err := l.Revisions(1)
	if err != nil || len(revisions) != 1 {
		t.Fatalf("Revisions(1) = %v, %v, want one revision", revisions, err)
	}
	if revisions[0].Stamp != "2025-07-15 10:00:00 +0000" {
		t.Errorf("Stamp = %q, want the -at value", revisions[0].Stamp)
	}

	files, err := l.TrackedFiles("*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("TrackedFiles(*.txt) = %v, want the two ticker files", files)
	}
	if content, ok := l.Content(revisions[0].ID, "AAA.txt"); !ok || content != writes["AAA.txt"] {
		t.Errorf("Content(AAA.txt) = %q, %v", content, ok)
	}
}

func TestRecordUsageErrors(t *testing.T) {
	t.Setenv("TICKREPORT_STORE", StoreLog)
	t.Setenv("TICKREPORT_LOG", filepath.Join(t.TempDir(), "prices.db"))

	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"neither mode", nil, subcommands.ExitUsageError},
		{"both modes", []string{"-t", "AAA", "-dir", "."}, subcommands.ExitUsageError},
		{"missing price", []string{"-t", "AAA"}, subcommands.ExitUsageError},
		{"bad price", []string{"-t", "AAA", "-price", "ten"}, subcommands.ExitUsageError},
		{"empty dir", []string{"-dir", t.TempDir()}, subcommands.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := executeCmd(t, &recordCmd{}, tt.args...); got != tt.want {
				t.Errorf("record %v = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
