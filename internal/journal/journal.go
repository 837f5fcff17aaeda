// Package journal persists executed rename runs to a SQLite database so they
// can be listed (history) and reverted (undo). Dry runs are never recorded.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrRunNotFound is returned when a run ID is absent from the journal.
var ErrRunNotFound = errors.New("run not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	directory  TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	renamed    INTEGER NOT NULL DEFAULT 0,
	skipped    INTEGER NOT NULL DEFAULT 0,
	failed     INTEGER NOT NULL DEFAULT 0,
	reverted   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS renames (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	seq      INTEGER NOT NULL,
	old_path TEXT NOT NULL,
	new_path TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`

// Run is one recorded rename run.
type Run struct {
	ID        string
	Directory string
	StartedAt time.Time
	Renamed   int
	Skipped   int
	Failed    int
	Reverted  bool
}

// Rename is one recorded rename within a run.
type Rename struct {
	Seq     int
	OldPath string
	NewPath string
}

// Journal wraps the SQLite database. It satisfies the pipeline's Recorder
// interface.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if necessary) the journal database at path and
// ensures the schema exists. The parent directory is created as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create journal directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// StartRun records the start of an execute run and returns its ID.
func (j *Journal) StartRun(ctx context.Context, dir string) (string, error) {
	id := uuid.NewString()
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO runs (id, directory, started_at) VALUES (?, ?, ?)",
		id, dir, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("cannot record run: %w", err)
	}
	return id, nil
}

// RecordRename appends one executed rename to a run.
func (j *Journal) RecordRename(ctx context.Context, runID, oldPath, newPath string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO renames (run_id, seq, old_path, new_path)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM renames WHERE run_id = ?), ?, ?)`,
		runID, runID, oldPath, newPath,
	)
	if err != nil {
		return fmt.Errorf("cannot record rename: %w", err)
	}
	return nil
}

// FinishRun stores the final counters for a run.
func (j *Journal) FinishRun(ctx context.Context, runID string, renamed, skipped, failed int) error {
	_, err := j.db.ExecContext(ctx,
		"UPDATE runs SET renamed = ?, skipped = ?, failed = ? WHERE id = ?",
		renamed, skipped, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("cannot finish run: %w", err)
	}
	return nil
}

// GetRun retrieves one run by ID.
func (j *Journal) GetRun(ctx context.Context, runID string) (*Run, error) {
	r := &Run{}
	err := j.db.QueryRowContext(ctx,
		"SELECT id, directory, started_at, renamed, skipped, failed, reverted FROM runs WHERE id = ?",
		runID,
	).Scan(&r.ID, &r.Directory, &r.StartedAt, &r.Renamed, &r.Skipped, &r.Failed, &r.Reverted)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read run: %w", err)
	}
	return r, nil
}

// Runs lists recorded runs, newest first. limit <= 0 means no limit.
func (j *Journal) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means unlimited.
	}
	rows, err := j.db.QueryContext(ctx,
		"SELECT id, directory, started_at, renamed, skipped, failed, reverted FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Directory, &r.StartedAt, &r.Renamed, &r.Skipped, &r.Failed, &r.Reverted); err != nil {
			return nil, fmt.Errorf("cannot read run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Entries returns a run's renames in execution order.
func (j *Journal) Entries(ctx context.Context, runID string) ([]Rename, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT seq, old_path, new_path FROM renames WHERE run_id = ? ORDER BY seq",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot list renames: %w", err)
	}
	defer rows.Close()

	var entries []Rename
	for rows.Next() {
		var e Rename
		if err := rows.Scan(&e.Seq, &e.OldPath, &e.NewPath); err != nil {
			return nil, fmt.Errorf("cannot read rename: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// markReverted flags a run as undone.
func (j *Journal) markReverted(ctx context.Context, runID string) error {
	_, err := j.db.ExecContext(ctx, "UPDATE runs SET reverted = 1 WHERE id = ?", runID)
	if err != nil {
		return fmt.Errorf("cannot mark run reverted: %w", err)
	}
	return nil
}
