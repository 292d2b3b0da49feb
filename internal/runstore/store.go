// Package runstore persists the history of Grin program runs in SQLite: one
// row per run plus one row per PRINT/INNUM/INSTR I/O event emitted during
// that run.
package runstore

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Run records a single program execution.
type Run struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // "running", "ok", "error"
	ErrorMsg   string
}

// IOEvent records one line of program output or input consumed during a run.
type IOEvent struct {
	ID        int64
	RunID     string
	Line      int
	Kind      string // "print", "innum", "instr"
	Text      string
	Timestamp time.Time
}

// Store wraps a SQLite database holding run history.
type Store struct {
	db *sql.DB
}

// New opens (creating if necessary) the SQLite database at dbPath and
// ensures its schema exists.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite requires single-connection mode for :memory: databases (each
	// pool connection otherwise gets its own DB); it also avoids
	// "database is locked" errors against a file-based DB.
	db.SetMaxOpenConns(1)

	schema := `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    started_at TEXT NOT NULL,
    finished_at TEXT,
    status TEXT NOT NULL,
    error_msg TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS io_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL REFERENCES runs(id),
    line INTEGER NOT NULL,
    kind TEXT NOT NULL,
    text TEXT NOT NULL,
    timestamp TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRun inserts a new running-status row for id.
func (s *Store) CreateRun(id, source string) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, source, started_at, status) VALUES (?, ?, ?, 'running')`,
		id, source, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// FinishRun marks a run's terminal status and finish time.
func (s *Store) FinishRun(id, status, errMsg string) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, status = ?, error_msg = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), status, errMsg, id,
	)
	return err
}

// RecordIOEvent appends one I/O event for a run.
func (s *Store) RecordIOEvent(runID string, line int, kind, text string) error {
	_, err := s.db.Exec(
		`INSERT INTO io_events (run_id, line, kind, text, timestamp) VALUES (?, ?, ?, ?, ?)`,
		runID, line, kind, text, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// GetRun fetches a single run by id.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, source, started_at, finished_at, status, error_msg FROM runs WHERE id = ?`, id)

	var r Run
	var started string
	var finished sql.NullString
	if err := row.Scan(&r.ID, &r.Source, &started, &finished, &r.Status, &r.ErrorMsg); err != nil {
		return nil, err
	}
	r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
	if finished.Valid {
		t, _ := time.Parse(time.RFC3339Nano, finished.String)
		r.FinishedAt = &t
	}
	return &r, nil
}

// ListIOEvents returns every I/O event recorded for a run, in the order the
// events were recorded.
func (s *Store) ListIOEvents(runID string) ([]IOEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, line, kind, text, timestamp FROM io_events WHERE run_id = ? ORDER BY id ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []IOEvent
	for rows.Next() {
		var e IOEvent
		var ts string
		if err := rows.Scan(&e.ID, &e.RunID, &e.Line, &e.Kind, &e.Text, &ts); err != nil {
			return nil, err
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		events = append(events, e)
	}
	return events, rows.Err()
}
