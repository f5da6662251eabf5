package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	run_id        TEXT PRIMARY KEY,
	case_name     TEXT NOT NULL,
	mode_number   INTEGER NOT NULL,
	started_at    TEXT NOT NULL,
	finished_at   TEXT,
	summary_json  TEXT
);

CREATE TABLE IF NOT EXISTS mode_records (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id              TEXT NOT NULL,
	segment_id          INTEGER NOT NULL,
	sub_mode            TEXT NOT NULL,
	frequency           REAL NOT NULL,
	mac_value           REAL NOT NULL,
	z_score             REAL NOT NULL DEFAULT 0,
	trend_distance      REAL NOT NULL DEFAULT 0,
	joint_distance      REAL NOT NULL DEFAULT 0,
	is_outlier          INTEGER NOT NULL DEFAULT 0,
	outlier_type        TEXT NOT NULL,
	distance_from_mean  REAL NOT NULL DEFAULT 0,
	FOREIGN KEY (run_id) REFERENCES analysis_runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_mode_records_run
ON mode_records(run_id, segment_id, sub_mode);
`

// #endregion schema

// #region store-struct
// Store persists analysis runs and their records in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other components (e.g. the
// run log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-run
// CreateRun registers a new analysis run and returns its record.
func (s *Store) CreateRun(caseName string, modeNumber int) (RunRecord, error) {
	rec := RunRecord{
		RunID:      uuid.New().String(),
		CaseName:   caseName,
		ModeNumber: modeNumber,
		StartedAt:  time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO analysis_runs (run_id, case_name, mode_number, started_at)
		 VALUES (?, ?, ?, ?)`,
		rec.RunID, rec.CaseName, rec.ModeNumber, rec.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// #endregion create-run

// #region finish-run
// FinishRun stamps the run finished and stores its summary.
func (s *Store) FinishRun(runID string, summary report.Summary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE analysis_runs SET finished_at = ?, summary_json = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), string(summaryJSON), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// #endregion finish-run

// #region insert-records
// InsertRecords stores a run's report rows in one transaction.
func (s *Store) InsertRecords(runID string, records []report.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO mode_records
		 (run_id, segment_id, sub_mode, frequency, mac_value, z_score,
		  trend_distance, joint_distance, is_outlier, outlier_type, distance_from_mean)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		isOutlier := 0
		if r.IsOutlier {
			isOutlier = 1
		}
		_, err := stmt.Exec(
			runID, r.SegmentID, r.SubModeLabel, r.Frequency, r.MACValue, r.ZScore,
			r.TrendDistance, r.JointDistance, isOutlier, r.OutlierType, r.DistanceFromMean,
		)
		if err != nil {
			return fmt.Errorf("insert record segment %d: %w", r.SegmentID, err)
		}
	}
	return tx.Commit()
}

// #endregion insert-records

// #region get-run
// GetRun retrieves one run by ID, including its summary when finished.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var startedStr string
	var finishedStr sql.NullString
	var summaryJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT run_id, case_name, mode_number, started_at, finished_at, summary_json
		 FROM analysis_runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.CaseName, &rec.ModeNumber, &startedStr, &finishedStr, &summaryJSON)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if finishedStr.Valid {
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr.String)
	}
	if summaryJSON.Valid {
		var summary report.Summary
		if err := json.Unmarshal([]byte(summaryJSON.String), &summary); err != nil {
			return RunRecord{}, fmt.Errorf("unmarshal summary: %w", err)
		}
		rec.Summary = &summary
	}
	return rec, nil
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, case_name, mode_number, started_at, finished_at, summary_json
		 FROM analysis_runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedStr string
		var finishedStr sql.NullString
		var summaryJSON sql.NullString

		if err := rows.Scan(&rec.RunID, &rec.CaseName, &rec.ModeNumber, &startedStr, &finishedStr, &summaryJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if finishedStr.Valid {
			rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr.String)
		}
		if summaryJSON.Valid {
			var summary report.Summary
			if err := json.Unmarshal([]byte(summaryJSON.String), &summary); err != nil {
				return nil, fmt.Errorf("unmarshal summary: %w", err)
			}
			rec.Summary = &summary
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-runs

// #region get-records
// GetRecords returns a run's report rows in report order.
func (s *Store) GetRecords(runID string) ([]report.Record, error) {
	rows, err := s.db.Query(
		`SELECT segment_id, sub_mode, frequency, mac_value, z_score,
		        trend_distance, joint_distance, is_outlier, outlier_type, distance_from_mean
		 FROM mode_records WHERE run_id = ?
		 ORDER BY segment_id, sub_mode`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}
	defer rows.Close()

	var records []report.Record
	for rows.Next() {
		var r report.Record
		var isOutlier int
		if err := rows.Scan(&r.SegmentID, &r.SubModeLabel, &r.Frequency, &r.MACValue, &r.ZScore,
			&r.TrendDistance, &r.JointDistance, &isOutlier, &r.OutlierType, &r.DistanceFromMean); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.IsOutlier = isOutlier != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// #endregion get-records
