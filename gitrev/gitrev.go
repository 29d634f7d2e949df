// Package gitrev reads ticker file history from a git repository.
//
// It shells out to the local git binary rather than reimplementing the
// object store: the repositories it reads are working clones kept fresh by
// whatever pulls the price updates, and git itself is the most faithful
// reader of them.
package gitrev

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/etnz/tickreport"
)

// Repository is a tickreport.Source backed by a local git clone.
type Repository struct {
	dir string
}

var _ tickreport.Source = (*Repository)(nil)

// Open validates that dir is inside a git work tree and that a git binary
// is available, and returns the repository.
func Open(dir string) (*Repository, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git binary not found: %w", err)
	}
	r := &Repository{dir: dir}
	if _, err := r.git("rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, fmt.Errorf("%q is not a git repository: %w", dir, err)
	}
	return r, nil
}

// Dir returns the directory the repository was opened on.
func (r *Repository) Dir() string { return r.dir }

// git runs one git command against the repository and returns its stdout.
func (r *Repository) git(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", r.dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}

// Revisions returns up to n commits of the current branch, newest first,
// stamped with their author date. A repository with no commits yet is an
// empty history, not an error.
func (r *Repository) Revisions(n int) ([]tickreport.Revision, error) {
	if _, err := r.git("rev-parse", "--verify", "HEAD"); err != nil {
		return nil, nil
	}
	out, err := r.git("log", "-n", strconv.Itoa(n), "--pretty=format:%H|%ai")
	if err != nil {
		return nil, err
	}
	return parseLog(out), nil
}

// parseLog splits "hash|stamp" lines into revisions, skipping anything
// malformed.
func parseLog(out string) []tickreport.Revision {
	var revisions []tickreport.Revision
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		id, stamp, found := strings.Cut(line, "|")
		if !found || id == "" {
			continue
		}
		revisions = append(revisions, tickreport.Revision{ID: id, Stamp: strings.TrimSpace(stamp)})
	}
	return revisions
}

// Content returns the blob recorded for path at the given revision. Any
// git failure, typically a path absent from that commit, reports absence.
func (r *Repository) Content(revID, path string) (string, bool) {
	out, err := r.git("show", revID+":"+path)
	if err != nil {
		return "", false
	}
	return out, true
}

// TrackedFiles returns the tracked paths matching the glob pattern, in git's
// sorted order. The pattern matches anywhere in the tree, the way
// "git ls-files" pathspecs do.
func (r *Repository) TrackedFiles(pattern string) ([]string, error) {
	out, err := r.git("ls-files", "--", pattern)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
