package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTableRecords() []report.Record {
	return []report.Record{
		{SegmentID: 1, SubModeLabel: "6.1", Frequency: 25.01, MACValue: 0.96, ZScore: -0.31, OutlierType: "None"},
		{SegmentID: 2, SubModeLabel: "6.1", Frequency: 30.0, MACValue: 0.65, ZScore: 2.85,
			TrendDistance: 1.36, JointDistance: 3.61, IsOutlier: true, OutlierType: "Combined", DistanceFromMean: 2.85},
		{SegmentID: 2, SubModeLabel: "6.2", Frequency: 27.8, MACValue: 0.99, OutlierType: "None"},
	}
}

func TestCreateAndGetRun(t *testing.T) {
	s := tempStore(t)

	rec, err := s.CreateRun("bridge-a-2024", 6)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if rec.RunID == "" {
		t.Fatal("expected a run ID")
	}
	if rec.StartedAt.IsZero() {
		t.Fatal("expected a start timestamp")
	}

	got, err := s.GetRun(rec.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.CaseName != "bridge-a-2024" || got.ModeNumber != 6 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !got.FinishedAt.IsZero() {
		t.Fatal("expected an unfinished run")
	}
	if got.Summary != nil {
		t.Fatal("expected no summary before finish")
	}
}

func TestFinishRunRoundTripsSummary(t *testing.T) {
	s := tempStore(t)

	rec, err := s.CreateRun("bridge-a-2024", 6)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	summary := report.Summary{
		ModeNumber: 6,
		Candidates: 22,
		Matched:    19,
		Outliers:   1,
		Unmatched:  []report.Exclusion{{SegmentID: 19, Reason: "best MAC 0.175 below minimum 0.50"}},
		Selector:   report.SelectorStats{TotalRemoved: 1, WinsPerLabel: map[string]int{"6.1": 15, "6.2": 3}},
		Skips:      []report.MethodEvent{{SubModeLabel: "6.2", Method: "TrendFit", Detail: "insufficient data"}},
	}
	if err := s.FinishRun(rec.RunID, summary); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := s.GetRun(rec.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.FinishedAt.IsZero() {
		t.Fatal("expected a finish timestamp")
	}
	if got.Summary == nil {
		t.Fatal("expected a summary")
	}
	if got.Summary.Candidates != 22 || got.Summary.Outliers != 1 {
		t.Fatalf("summary not round-tripped: %+v", got.Summary)
	}
	if got.Summary.Selector.WinsPerLabel["6.1"] != 15 {
		t.Fatalf("selector stats lost: %+v", got.Summary.Selector)
	}
	if len(got.Summary.Skips) != 1 || got.Summary.Skips[0].Method != "TrendFit" {
		t.Fatalf("skips lost: %+v", got.Summary.Skips)
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	s := tempStore(t)
	if err := s.FinishRun("no-such-run", report.Summary{}); err == nil {
		t.Fatal("expected an error for an unknown run")
	}
}

func TestInsertAndGetRecords(t *testing.T) {
	s := tempStore(t)

	rec, err := s.CreateRun("bridge-a-2024", 6)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.InsertRecords(rec.RunID, sampleTableRecords()); err != nil {
		t.Fatalf("InsertRecords: %v", err)
	}

	got, err := s.GetRecords(rec.RunID)
	if err != nil {
		t.Fatalf("GetRecords: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	// Ordered by segment then label.
	if got[0].SegmentID != 1 || got[1].SubModeLabel != "6.1" || got[2].SubModeLabel != "6.2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got[1].IsOutlier || got[1].OutlierType != "Combined" {
		t.Fatalf("outlier row not round-tripped: %+v", got[1])
	}
	if got[1].JointDistance != 3.61 {
		t.Fatalf("metric lost: %+v", got[1])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := tempStore(t)

	first, err := s.CreateRun("case-a", 6)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := s.CreateRun("case-b", 7)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != second.RunID || runs[1].RunID != first.RunID {
		t.Fatalf("unexpected order: %s then %s", runs[0].CaseName, runs[1].CaseName)
	}

	limited, err := s.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(limited) != 1 || limited[0].RunID != second.RunID {
		t.Fatalf("limit not applied: %+v", limited)
	}
}

func TestRunLogAppendAndRead(t *testing.T) {
	s := tempStore(t)
	log, err := NewRunLog(s.DB())
	if err != nil {
		t.Fatalf("NewRunLog: %v", err)
	}

	rec, err := s.CreateRun("bridge-a-2024", 6)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	if err := log.Append(rec.RunID, "matched", "19 of 22 candidates"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append(rec.RunID, "detected", "1 outlier"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := log.Entries(rec.RunID)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Event != "matched" || entries[1].Event != "detected" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if entries[0].Detail != "19 of 22 candidates" {
		t.Fatalf("detail lost: %+v", entries[0])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("expected a timestamp")
	}
}
