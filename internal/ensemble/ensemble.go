package ensemble

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/detect"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// Outlier types reported for a combined verdict. A single flagging method
// contributes its own name instead.
const (
	TypeNone     = "None"
	TypeCombined = "Combined"
)

// #region result
// Result is the combined verdict for one observation. An observation is an
// outlier when any method flagged it; OutlierType names the method, or
// Combined when two or more agree.
type Result struct {
	SegmentID        int
	SubModeLabel     string
	IsOutlier        bool
	OutlierType      string
	DistanceFromMean float64 // signed frequency distance in sigma units
}

// #endregion result

// #region combine
// Combine merges per-method verdicts into one result per observation.
// Results are independent of the order methods are listed in: the type
// depends only on which methods flagged, and with more than one it
// collapses to Combined.
func Combine(group []mode.Observation, results []detect.Result) ([]Result, error) {
	for _, r := range results {
		if len(r.Flags) != len(group) {
			return nil, fmt.Errorf("method %s returned %d flag(s) for %d observation(s)", r.Method, len(r.Flags), len(group))
		}
	}

	distances, err := standardizedDistances(group)
	if err != nil {
		return nil, err
	}

	combined := make([]Result, len(group))
	for i, o := range group {
		var flaggedBy []detect.Name
		for _, r := range results {
			if r.Flags[i].IsOutlier {
				flaggedBy = append(flaggedBy, r.Method)
			}
		}

		outlierType := TypeNone
		switch {
		case len(flaggedBy) == 1:
			outlierType = string(flaggedBy[0])
		case len(flaggedBy) >= 2:
			outlierType = TypeCombined
		}

		combined[i] = Result{
			SegmentID:        o.SegmentID,
			SubModeLabel:     o.SubModeLabel,
			IsOutlier:        len(flaggedBy) > 0,
			OutlierType:      outlierType,
			DistanceFromMean: distances[i],
		}
	}
	return combined, nil
}

// standardizedDistances computes (f - mean) / stddev per observation over
// the group's frequencies. Groups without spread report zero distances.
func standardizedDistances(group []mode.Observation) ([]float64, error) {
	distances := make([]float64, len(group))
	if len(group) < 2 {
		return distances, nil
	}

	freqs := mode.Frequencies(group)
	mean, err := stats.Mean(freqs)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	sigma, err := stats.StandardDeviationSample(freqs)
	if err != nil {
		return nil, fmt.Errorf("sample stddev: %w", err)
	}
	if sigma == 0 {
		return distances, nil
	}

	for i, f := range freqs {
		distances[i] = (f - mean) / sigma
	}
	return distances, nil
}

// #endregion combine
