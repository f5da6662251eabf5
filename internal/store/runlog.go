package store

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema

const runLogSchema = `
CREATE TABLE IF NOT EXISTS run_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	event       TEXT NOT NULL,
	detail      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES analysis_runs(run_id)
);
`

const runLogIndex = `
CREATE INDEX IF NOT EXISTS idx_run_log_run
ON run_log(run_id, id);
`

// #endregion schema

// #region runlog-struct

// RunLog appends and reads per-run provenance events on a shared database.
type RunLog struct {
	db *sql.DB
}

// NewRunLog initializes the run_log table and returns a RunLog.
func NewRunLog(db *sql.DB) (*RunLog, error) {
	if _, err := db.Exec(runLogSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(runLogIndex); err != nil {
		return nil, err
	}
	return &RunLog{db: db}, nil
}

// #endregion runlog-struct

// #region append

// Append records one event for a run.
func (l *RunLog) Append(runID, event, detail string) error {
	_, err := l.db.Exec(
		`INSERT INTO run_log (run_id, event, detail, created_at) VALUES (?, ?, ?, ?)`,
		runID, event, detail, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// #endregion append

// #region entries

// Entries returns a run's events in append order.
func (l *RunLog) Entries(runID string) ([]LogEntry, error) {
	rows, err := l.db.Query(
		`SELECT run_id, event, detail, created_at FROM run_log
		 WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.Event, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		if detail.Valid {
			e.Detail = detail.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion entries
