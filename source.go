package tickreport

import (
	"path"
	"strings"
)

// A Revision is one immutable point of the history source from which file
// content can be retrieved.
type Revision struct {
	ID    string // opaque identifier (commit hash, snapshot log id)
	Stamp string // the source's own timestamp string for this revision
}

// ShortID returns the identifier truncated for console output, the way git
// abbreviates commit hashes.
func (r Revision) ShortID() string {
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}

// A Source is an ordered, append-only history of file snapshots. It is the
// only thing the report pipelines know about where ticker data comes from:
// a git repository (gitrev) and an append-only SQLite log (snaplog) both
// implement it.
type Source interface {
	// Revisions returns up to n revisions, newest first. A history with
	// fewer than n revisions returns what it has; only a failing query is
	// an error.
	Revisions(n int) ([]Revision, error)

	// Content returns the exact content of path as recorded at the given
	// revision. Absence, whether the path did not exist there, the revision
	// is unknown, or the lookup failed, is a normal outcome reported as
	// ok=false, never an error.
	Content(revID, path string) (content string, ok bool)

	// TrackedFiles returns the paths known to the source that match the
	// glob pattern, in the source's stable order.
	TrackedFiles(pattern string) ([]string, error)
}

// TickerOf derives the ticker name from a tracked file path: the base name
// stripped of its extension, so "prices/AAPL.txt" becomes "AAPL".
func TickerOf(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
