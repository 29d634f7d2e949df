package tickreport

import (
	"path"
	"sort"
	"testing"
)

// memSource is an in-memory Source for tests. Revisions are held
// newest-first, like every real Source implementation returns them.
type memSource struct {
	revisions []Revision
	// files maps revision ID to path to content. A path absent from a
	// revision's map means the file did not exist at that revision.
	files map[string]map[string]string
}

func (s *memSource) Revisions(n int) ([]Revision, error) {
	if n > len(s.revisions) {
		n = len(s.revisions)
	}
	return s.revisions[:n], nil
}

func (s *memSource) Content(revID, p string) (string, bool) {
	content, ok := s.files[revID][p]
	return content, ok
}

func (s *memSource) TrackedFiles(pattern string) ([]string, error) {
	seen := make(map[string]bool)
	var tracked []string
	for _, rev := range s.revisions {
		for p := range s.files[rev.ID] {
			if seen[p] {
				continue
			}
			if ok, _ := path.Match(pattern, path.Base(p)); !ok {
				continue
			}
			seen[p] = true
			tracked = append(tracked, p)
		}
	}
	sort.Strings(tracked)
	return tracked, nil
}

// obs builds the canonical two-field ticker file content.
func obs(price, updated string) string {
	return "Price: " + price + "\nUpdated: " + updated + "\n"
}

// checkFloat fails the test when got and want differ by more than 1e-9.
func checkFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
