package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/detect"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/ensemble"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/selector"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/shape"
)

// #region run
// Run analyzes one mode number's candidates end to end: shape matching,
// optional best-candidate selection, per-sub-mode detection, and report
// assembly. Candidate-level problems exclude the candidate with a recorded
// reason; method-level problems skip the method for that group. The run
// itself fails only on configuration defects.
func Run(modeNumber int, candidates []mode.Candidate, config Config) (report.Table, report.Summary, error) {
	refs := shape.ForMode(config.References, modeNumber)
	if len(refs) == 0 {
		return report.Table{}, report.Summary{}, fmt.Errorf("no references configured for mode %d", modeNumber)
	}

	summary := report.Summary{
		ModeNumber: modeNumber,
		Candidates: len(candidates),
	}

	// 1. Match candidates against the mode's references.
	matcher := shape.NewMatcher(refs, config.Match)
	observations := make([]mode.Observation, 0, len(candidates))
	for _, c := range candidates {
		if reason := validate(c); reason != "" {
			summary.Excluded = append(summary.Excluded, report.Exclusion{SegmentID: c.SegmentID, Reason: reason})
			continue
		}
		m, err := matcher.Match(c.ModeShape)
		if err != nil {
			summary.Excluded = append(summary.Excluded, report.Exclusion{SegmentID: c.SegmentID, Reason: err.Error()})
			continue
		}
		if !m.Matched {
			summary.Unmatched = append(summary.Unmatched, report.Exclusion{
				SegmentID: c.SegmentID,
				Reason:    fmt.Sprintf("best MAC %.3f below minimum %.2f", m.MAC, config.Match.MinMatch),
			})
			continue
		}
		observations = append(observations, observe(c, m))
	}
	summary.Matched = len(observations)

	// 2. Optionally keep only the best candidate per segment.
	if config.BestOnly {
		var stats selector.Stats
		observations, stats = selector.Apply(observations)
		summary.Selector = report.SelectorStats{
			TotalRemoved:      stats.TotalRemoved,
			RemovedPerSegment: stats.RemovedPerSegment,
			WinsPerLabel:      stats.WinsPerLabel,
		}
	}

	// 3. Detect and combine per sub-mode group, in label order.
	groups := mode.GroupByLabel(observations)
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	methods := detect.Methods(config.Deviation, config.TrendFit, config.Joint)
	var records []report.Record
	for _, label := range labels {
		group := groups[label]
		ran, failures := detect.RunAll(methods, group)

		for _, f := range failures {
			summary.Skips = append(summary.Skips, report.MethodEvent{
				SubModeLabel: label,
				Method:       string(f.Method),
				Detail:       f.Err.Error(),
			})
		}
		for _, r := range ran {
			if r.Warning != "" {
				summary.Warnings = append(summary.Warnings, report.MethodEvent{
					SubModeLabel: label,
					Method:       string(r.Method),
					Detail:       r.Warning,
				})
			}
			if r.UsedFallback {
				summary.Fallbacks = append(summary.Fallbacks, report.MethodEvent{
					SubModeLabel: label,
					Method:       string(r.Method),
					Detail:       "standardized Euclidean fallback on singular covariance",
				})
			}
		}

		combined, err := ensemble.Combine(group, ran)
		if err != nil {
			return report.Table{}, report.Summary{}, fmt.Errorf("combine %s: %w", label, err)
		}
		records = append(records, assemble(group, ran, combined)...)
	}

	// 4. Final table order and outlier count.
	table := report.NewTable(records)
	for _, r := range table.Records {
		if r.IsOutlier {
			summary.Outliers++
		}
	}
	return table, summary, nil
}

// validate screens one candidate before matching. An empty reason means the
// candidate is usable.
func validate(c mode.Candidate) string {
	if c.Frequency <= 0 || math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) {
		return fmt.Sprintf("invalid frequency %v", c.Frequency)
	}
	if len(c.ModeShape) == 0 {
		return "empty mode shape"
	}
	return ""
}

// observe builds the enriched record carried through the rest of the run.
func observe(c mode.Candidate, m shape.Match) mode.Observation {
	return mode.Observation{
		SegmentID:           c.SegmentID,
		SubModeLabel:        m.Label,
		Frequency:           c.Frequency,
		DampingRatio:        c.DampingRatio,
		MACValue:            m.MAC,
		DetectionPercentage: c.DetectionPercentage,
		SegmentStart:        c.SegmentStart,
		SegmentEnd:          c.SegmentEnd,
	}
}

// assemble flattens one group's verdicts into report records. Methods that
// did not run leave their metric at zero.
func assemble(group []mode.Observation, ran []detect.Result, combined []ensemble.Result) []report.Record {
	var zScores, trend, joint []detect.Flag
	for _, r := range ran {
		switch r.Method {
		case detect.NameDeviationScore:
			zScores = r.Flags
		case detect.NameTrendFit:
			trend = r.Flags
		case detect.NameJointDistance:
			joint = r.Flags
		}
	}

	records := make([]report.Record, len(group))
	for i, o := range group {
		rec := report.Record{
			SegmentID:        o.SegmentID,
			SubModeLabel:     o.SubModeLabel,
			Frequency:        o.Frequency,
			MACValue:         o.MACValue,
			IsOutlier:        combined[i].IsOutlier,
			OutlierType:      combined[i].OutlierType,
			DistanceFromMean: combined[i].DistanceFromMean,
		}
		if zScores != nil {
			rec.ZScore = zScores[i].Metric
		}
		if trend != nil {
			rec.TrendDistance = trend[i].Metric
		}
		if joint != nil {
			rec.JointDistance = joint[i].Metric
		}
		records[i] = rec
	}
	return records
}

// #endregion run
