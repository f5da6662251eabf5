package store

import (
	"time"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
)

// #region types
// RunRecord is one persisted analysis run. FinishedAt stays zero and Summary
// nil until the run completes.
type RunRecord struct {
	RunID      string
	CaseName   string
	ModeNumber int
	StartedAt  time.Time
	FinishedAt time.Time
	Summary    *report.Summary
}

// LogEntry is one run-log event.
type LogEntry struct {
	RunID     string
	Event     string
	Detail    string
	CreatedAt time.Time
}

// #endregion types
