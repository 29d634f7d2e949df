package tickreport

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for the fatal environment conditions. They abort a run
// before any artifact is produced; everything else degrades to absence.
var (
	// ErrNoRevisions reports a history source with no revision at all.
	ErrNoRevisions = errors.New("history source has no revisions")
	// ErrNotEnoughRevisions reports a history too short to compare the two
	// newest revisions.
	ErrNotEnoughRevisions = errors.New("not enough revisions to compare")
	// ErrNoTickerFiles reports that no tracked file matches the ticker
	// pattern once exclusions are applied.
	ErrNoTickerFiles = errors.New("no ticker files found")
)

// DiffSample is the number of revisions compared by the diff pipeline.
const DiffSample = 2

// DefaultSample is the number of revisions sampled by the overview pipeline.
const DefaultSample = 10

// stampLayout is the generation timestamp format stamped on reports.
const stampLayout = "2006-01-02 15:04:05"

// Now returns the current time, honoring the TICKREPORT_TESTING_NOW
// override (stampLayout format) used to make generated artifacts
// reproducible in tests and CI.
func Now() time.Time {
	if fake := os.Getenv("TICKREPORT_TESTING_NOW"); fake != "" {
		if t, err := time.Parse(stampLayout, fake); err == nil {
			return t
		}
	}
	return time.Now()
}

// newRunID tags every generated report so the artifacts of one pipeline run
// can be correlated.
func newRunID() string { return uuid.NewString() }

// A Universe is the set of ticker files tracked in a revision source: a
// glob pattern minus an exclusion list of file names. Both report pipelines
// operate on a Universe.
type Universe struct {
	src     Source
	pattern string
	exclude map[string]struct{}
}

// NewUniverse tracks the files of src matching pattern, skipping the
// excluded base names (index or readme files living among the tickers).
func NewUniverse(src Source, pattern string, exclude ...string) *Universe {
	u := &Universe{
		src:     src,
		pattern: pattern,
		exclude: make(map[string]struct{}, len(exclude)),
	}
	for _, name := range exclude {
		u.exclude[name] = struct{}{}
	}
	return u
}

// Files returns the tracked ticker files in source order, with exclusions
// applied. It returns ErrNoTickerFiles when nothing remains.
func (u *Universe) Files() ([]string, error) {
	all, err := u.src.TrackedFiles(u.pattern)
	if err != nil {
		return nil, fmt.Errorf("cannot list ticker files: %w", err)
	}
	files := make([]string, 0, len(all))
	for _, f := range all {
		if f == "" {
			continue
		}
		if _, skip := u.exclude[path.Base(f)]; skip {
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, ErrNoTickerFiles
	}
	return files, nil
}

// observations fetches and parses the snapshots of one file at each given
// revision, preserving revision order. A missing snapshot yields the zero
// observation at its position.
func (u *Universe) observations(file string, revisions []Revision) []Observation {
	list := make([]Observation, len(revisions))
	for i, rev := range revisions {
		if content, ok := u.src.Content(rev.ID, file); ok {
			list[i] = ParseObservation(content)
		}
	}
	return list
}

// chartLabel shortens a timestamp for chart display, dropping seconds and
// zone from the usual "2006-01-02 15:04:05 -0700" form.
func chartLabel(stamp string) string {
	runes := []rune(stamp)
	if len(runes) > 16 {
		return string(runes[:16])
	}
	return stamp
}
