// Package snaplog stores ticker file history in an append-only SQLite log.
//
// It is the store for setups that do not keep their price files under git:
// every Append creates a new revision, and reading a file at a revision
// returns the latest content appended at or before it, the same
// carry-forward a git commit gives to the files it does not touch.
package snaplog

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/etnz/tickreport"
)

// Log is a tickreport.Source backed by a SQLite file. It supports one
// writer and any number of readers.
type Log struct {
	db *sql.DB
	mu sync.Mutex
}

var _ tickreport.Source = (*Log)(nil)

// Open opens (or creates) the log database and runs migrations.
func Open(dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reports can read while a watch loop appends.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	l := &Log{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return l, nil
}

func (l *Log) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS revisions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			stamp     TEXT NOT NULL,
			source_id TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_revisions_source ON revisions(source_id)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			revision_id INTEGER NOT NULL,
			path        TEXT NOT NULL,
			content     TEXT NOT NULL,
			PRIMARY KEY (revision_id, path)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_path ON snapshots(path, revision_id)`,
	}
	for _, s := range stmts {
		if _, err := l.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Append records a new revision holding the given file contents and returns
// its id. Files absent from the map keep reading their previously appended
// content at this revision.
func (l *Log) Append(stamp string, files map[string]string) (int64, error) {
	return l.append("", stamp, files)
}

// AppendMirrored is Append for revisions copied from another source,
// remembering the source's own revision identifier so a mirror run can skip
// what it already copied.
func (l *Log) AppendMirrored(sourceID, stamp string, files map[string]string) (int64, error) {
	return l.append(sourceID, stamp, files)
}

// Mirrored reports whether a revision with the given source identifier was
// already appended.
func (l *Log) Mirrored(sourceID string) (bool, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM revisions WHERE source_id = ?`, sourceID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query mirrored revision: %w", err)
	}
	return n > 0, nil
}

func (l *Log) append(sourceID, stamp string, files map[string]string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO revisions (stamp, source_id) VALUES (?, ?)`, stamp, sourceID)
	if err != nil {
		return 0, fmt.Errorf("insert revision: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("revision id: %w", err)
	}
	for path, content := range files {
		if _, err := tx.Exec(`INSERT INTO snapshots (revision_id, path, content) VALUES (?, ?, ?)`, id, path, content); err != nil {
			return 0, fmt.Errorf("insert snapshot %q: %w", path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit append: %w", err)
	}
	return id, nil
}

// Revisions returns up to n revisions, newest first.
func (l *Log) Revisions(n int) ([]tickreport.Revision, error) {
	rows, err := l.db.Query(`SELECT id, stamp FROM revisions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revisions []tickreport.Revision
	for rows.Next() {
		var id int64
		var stamp string
		if err := rows.Scan(&id, &stamp); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, tickreport.Revision{ID: strconv.FormatInt(id, 10), Stamp: stamp})
	}
	return revisions, rows.Err()
}

// Content returns the content of path as visible at the given revision: the
// latest snapshot appended at or before it. A path never appended, or an
// unparsable revision id, is reported absent.
func (l *Log) Content(revID, path string) (string, bool) {
	id, err := strconv.ParseInt(revID, 10, 64)
	if err != nil {
		return "", false
	}
	var content string
	err = l.db.QueryRow(
		`SELECT content FROM snapshots WHERE path = ? AND revision_id <= ? ORDER BY revision_id DESC LIMIT 1`,
		path, id,
	).Scan(&content)
	if err != nil {
		return "", false
	}
	return content, true
}

// TrackedFiles returns every path ever appended that matches the glob
// pattern, sorted.
func (l *Log) TrackedFiles(pattern string) ([]string, error) {
	rows, err := l.db.Query(`SELECT DISTINCT path FROM snapshots WHERE path GLOB ? ORDER BY path`, pattern)
	if err != nil {
		return nil, fmt.Errorf("query tracked files: %w", err)
	}
	defer rows.Close()

	var files []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		files = append(files, p)
	}
	return files, rows.Err()
}

// Close closes the underlying database.
func (l *Log) Close() error { return l.db.Close() }
