package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to analysis.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	showLog := flag.Bool("log", false, "include run-log events in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/analysis.db [--last N] [--run id] [--log] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *runID != "" {
		if err := runDetailMode(st, *runID, *showLog, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID      string `json:"run_id"`
	CaseName   string `json:"case_name"`
	ModeNumber int    `json:"mode_number"`
	StartedAt  string `json:"started_at"`
	Finished   bool   `json:"finished"`
	Candidates int    `json:"candidates,omitempty"`
	Matched    int    `json:"matched,omitempty"`
	Outliers   int    `json:"outliers,omitempty"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	runs, err := st.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	// Build rows (store returns DESC, reverse for chronological)
	rows := make([]listRow, len(runs))
	for i, r := range runs {
		lr := listRow{
			RunID:      r.RunID,
			CaseName:   r.CaseName,
			ModeNumber: r.ModeNumber,
			StartedAt:  r.StartedAt.Format("2006-01-02T15:04:05Z"),
			Finished:   !r.FinishedAt.IsZero(),
		}
		if r.Summary != nil {
			lr.Candidates = r.Summary.Candidates
			lr.Matched = r.Summary.Matched
			lr.Outliers = r.Summary.Outliers
		}
		rows[len(runs)-1-i] = lr
	}

	if jsonOut {
		return printJSON(rows)
	}
	return printListTable(rows)
}

func printListTable(rows []listRow) error {
	fmt.Printf("%-12s  %-16s  %4s  %10s  %7s  %8s  %s\n",
		"Run", "Case", "Mode", "Candidates", "Matched", "Outliers", "Started")
	fmt.Printf("%-12s+-%-16s+-%4s+-%10s+-%7s+-%8s+-%s\n",
		"------------", "----------------", "----", "----------", "-------", "--------", "--------------------")

	for _, r := range rows {
		cand, matched, outliers := "—", "—", "—"
		if r.Finished {
			cand = fmt.Sprintf("%d", r.Candidates)
			matched = fmt.Sprintf("%d", r.Matched)
			outliers = fmt.Sprintf("%d", r.Outliers)
		}
		fmt.Printf("%-12s  %-16s  %4d  %10s  %7s  %8s  %s\n",
			shortID(r.RunID), r.CaseName, r.ModeNumber, cand, matched, outliers, r.StartedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	RunID      string          `json:"run_id"`
	CaseName   string          `json:"case_name"`
	ModeNumber int             `json:"mode_number"`
	StartedAt  string          `json:"started_at"`
	FinishedAt string          `json:"finished_at,omitempty"`
	Summary    *report.Summary `json:"summary,omitempty"`
	Records    []report.Record `json:"records"`
	Log        []logRow        `json:"log,omitempty"`
}

type logRow struct {
	Event     string `json:"event"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runDetailMode(st *store.Store, runID string, showLog, jsonOut bool) error {
	rec, err := st.GetRun(runID)
	if err != nil {
		return err
	}
	records, err := st.GetRecords(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		RunID:      rec.RunID,
		CaseName:   rec.CaseName,
		ModeNumber: rec.ModeNumber,
		StartedAt:  rec.StartedAt.Format("2006-01-02T15:04:05Z"),
		Summary:    rec.Summary,
		Records:    records,
	}
	if !rec.FinishedAt.IsZero() {
		out.FinishedAt = rec.FinishedAt.Format("2006-01-02T15:04:05Z")
	}

	if showLog {
		runLog, err := store.NewRunLog(st.DB())
		if err != nil {
			return err
		}
		entries, err := runLog.Entries(runID)
		if err != nil {
			return err
		}
		out.Log = make([]logRow, len(entries))
		for i, e := range entries {
			out.Log[i] = logRow{
				Event:     e.Event,
				Detail:    e.Detail,
				CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
			}
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:      %s\n", out.RunID)
	fmt.Printf("Case:     %s\n", out.CaseName)
	fmt.Printf("Mode:     %d\n", out.ModeNumber)
	fmt.Printf("Started:  %s\n", out.StartedAt)
	if out.FinishedAt != "" {
		fmt.Printf("Finished: %s\n", out.FinishedAt)
	}

	if s := out.Summary; s != nil {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Candidates: %d\n", s.Candidates)
		fmt.Printf("  Matched:    %d\n", s.Matched)
		fmt.Printf("  Outliers:   %d\n", s.Outliers)
		fmt.Printf("  Unmatched:  %d\n", len(s.Unmatched))
		fmt.Printf("  Excluded:   %d\n", len(s.Excluded))
		if s.Selector.TotalRemoved > 0 {
			fmt.Printf("  Duplicates removed: %d\n", s.Selector.TotalRemoved)
		}
		printEvents("skip", s.Skips)
		printEvents("warning", s.Warnings)
		printEvents("fallback", s.Fallbacks)
	}

	if len(out.Records) > 0 {
		fmt.Printf("\nRecords:\n")
		printRecordTable(out.Records)
	}

	if len(out.Log) > 0 {
		fmt.Printf("\nLog:\n")
		for _, e := range out.Log {
			fmt.Printf("  %s  %-20s %s\n", e.CreatedAt, e.Event, e.Detail)
		}
	}
	return nil
}

func printEvents(kind string, events []report.MethodEvent) {
	for _, ev := range events {
		fmt.Printf("  %s: %s %s: %s\n", kind, ev.SubModeLabel, ev.Method, ev.Detail)
	}
}

func printRecordTable(records []report.Record) {
	fmt.Printf("  %7s  %-8s  %10s  %6s  %7s  %-7s  %-14s  %8s\n",
		"Segment", "Sub-Mode", "Frequency", "MAC", "Z", "Outlier", "Type", "Distance")
	for _, r := range records {
		fmt.Printf("  %7d  %-8s  %10.4f  %6.4f  %7.3f  %-7v  %-14s  %8.3f\n",
			r.SegmentID, r.SubModeLabel, r.Frequency, r.MACValue, r.ZScore,
			r.IsOutlier, r.OutlierType, r.DistanceFromMean)
	}
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
