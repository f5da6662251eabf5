package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/config"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/oma"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/pipeline"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	caseName := flag.String("case", "", "measurement case name (default from config)")
	modeNumber := flag.Int("mode", 0, "analyze a single mode number (default all configured)")
	inputPath := flag.String("input", "", "candidate set JSON (default <candidate_dir>/<case>.json)")
	fetch := flag.Bool("fetch", false, "fetch candidates from the identification service")
	workers := flag.Int("workers", 2, "parallel mode analyses")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze --config config.yaml [--case name] [--mode N] [--input candidates.json] [--fetch] [--workers N]")
		os.Exit(2)
	}

	if err := run(*configPath, *caseName, *modeNumber, *inputPath, *fetch, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(configPath, caseName string, modeNumber int, inputPath string, fetch bool, workers int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if caseName == "" {
		caseName = cfg.CaseName
	}
	if caseName == "" {
		return fmt.Errorf("no case name: set --case or case_name in %s", configPath)
	}

	modes := cfg.ModeNumbers()
	if modeNumber != 0 {
		modes = []int{modeNumber}
	}
	if len(modes) == 0 {
		return fmt.Errorf("no modes configured in %s", configPath)
	}

	candidates, err := loadCandidates(cfg, caseName, inputPath, fetch)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d candidates for case %s\n", len(candidates), caseName)

	jobs := make([]pipeline.ModeJob, 0, len(modes))
	for _, m := range modes {
		pc, err := cfg.PipelineConfig(m)
		if err != nil {
			return err
		}
		jobs = append(jobs, pipeline.ModeJob{ModeNumber: m, Candidates: candidates, Config: pc})
	}

	results := pipeline.RunModes(jobs, workers)

	dbPath := envOr("ANALYSIS_DB", cfg.Paths.Database)
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runLog, err := store.NewRunLog(st.DB())
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	failed := 0
	for _, res := range results {
		if err := persist(st, runLog, caseName, cfg.Paths.OutputDir, res); err != nil {
			fmt.Fprintf(os.Stderr, "mode %d: %v\n", res.ModeNumber, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d mode analyses failed", failed, len(results))
	}
	return nil
}

// persist stores one mode's results, writes its CSV report, and records
// run-log events for everything the analysis skipped or degraded.
func persist(st *store.Store, runLog *store.RunLog, caseName, outDir string, res pipeline.ModeResult) error {
	rec, err := st.CreateRun(caseName, res.ModeNumber)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	if err := runLog.Append(rec.RunID, "analysis_started", fmt.Sprintf("case %s mode %d", caseName, res.ModeNumber)); err != nil {
		return fmt.Errorf("run log: %w", err)
	}

	if res.Err != nil {
		if err := runLog.Append(rec.RunID, "analysis_failed", res.Err.Error()); err != nil {
			return fmt.Errorf("run log: %w", err)
		}
		return res.Err
	}

	if err := logEvents(runLog, rec.RunID, res.Summary); err != nil {
		return fmt.Errorf("run log: %w", err)
	}

	if err := st.InsertRecords(rec.RunID, res.Table.Records); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}

	outPath := filepath.Join(outDir, fmt.Sprintf("%s_mode%d_analysis.csv", caseName, res.ModeNumber))
	if err := writeCSV(res.Table, outPath); err != nil {
		return err
	}
	if err := runLog.Append(rec.RunID, "csv_written", outPath); err != nil {
		return fmt.Errorf("run log: %w", err)
	}

	if err := st.FinishRun(rec.RunID, res.Summary); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	fmt.Printf("[mode %d] %d candidates, %d matched, %d outliers -> %s (run %s)\n",
		res.ModeNumber, res.Summary.Candidates, res.Summary.Matched, res.Summary.Outliers,
		outPath, shortID(rec.RunID))
	return nil
}

func logEvents(runLog *store.RunLog, runID string, s report.Summary) error {
	for _, ex := range s.Excluded {
		if err := runLog.Append(runID, "candidate_excluded", fmt.Sprintf("segment %d: %s", ex.SegmentID, ex.Reason)); err != nil {
			return err
		}
	}
	for _, ex := range s.Unmatched {
		if err := runLog.Append(runID, "candidate_unmatched", fmt.Sprintf("segment %d: %s", ex.SegmentID, ex.Reason)); err != nil {
			return err
		}
	}
	for _, ev := range s.Skips {
		if err := runLog.Append(runID, "method_skipped", eventDetail(ev)); err != nil {
			return err
		}
	}
	for _, ev := range s.Warnings {
		if err := runLog.Append(runID, "method_warning", eventDetail(ev)); err != nil {
			return err
		}
	}
	for _, ev := range s.Fallbacks {
		if err := runLog.Append(runID, "covariance_fallback", eventDetail(ev)); err != nil {
			return err
		}
	}
	return nil
}

func eventDetail(ev report.MethodEvent) string {
	return fmt.Sprintf("%s %s: %s", ev.SubModeLabel, ev.Method, ev.Detail)
}

// #endregion run

// #region input

func loadCandidates(cfg config.Config, caseName, inputPath string, fetch bool) ([]mode.Candidate, error) {
	if fetch {
		addr := envOr("OMA_ADDR", cfg.OMA.ServiceAddress)
		client, err := oma.NewClient(addr)
		if err != nil {
			return nil, fmt.Errorf("connect to identification service at %s: %w", addr, err)
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return client.FetchCase(ctx, caseName, cfg.SignalProcessing.SamplingFrequency, cfg.OMA.Geometry.SensorNames)
	}

	if inputPath == "" {
		inputPath = filepath.Join(cfg.Paths.CandidateDir, caseName+".json")
	}
	set, err := pipeline.LoadCandidateSet(inputPath)
	if err != nil {
		return nil, err
	}
	return set.Flatten(), nil
}

// #endregion input

// #region output

func writeCSV(table report.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// #endregion output

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
