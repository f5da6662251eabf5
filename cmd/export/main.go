package main

import (
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
	runID := flag.String("run", "", "run to export (default most recent finished run)")
	outPath := flag.String("out", "", "output CSV path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: export --db path/to/analysis.db --out path/to/report.csv [--run id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, runID, outPath string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	if runID == "" {
		runID, err = latestFinishedRun(st)
		if err != nil {
			return err
		}
	}

	rec, err := st.GetRun(runID)
	if err != nil {
		return err
	}

	records, err := st.GetRecords(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run %s has no records", runID)
	}

	table := report.NewTable(records)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	fmt.Printf("Exported run %s (case %s, mode %d): %d records to %s\n",
		shortID(rec.RunID), rec.CaseName, rec.ModeNumber, len(records), outPath)
	return nil
}

func latestFinishedRun(st *store.Store) (string, error) {
	runs, err := st.ListRuns(20)
	if err != nil {
		return "", err
	}
	for _, r := range runs {
		if !r.FinishedAt.IsZero() {
			return r.RunID, nil
		}
	}
	return "", fmt.Errorf("no finished runs found")
}

// #endregion export

// #region helpers

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
