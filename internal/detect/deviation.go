package detect

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region deviation-score
// DeviationScore flags observations whose frequency z-score exceeds a
// threshold. Uses the sample standard deviation (n-1 denominator).
type DeviationScore struct {
	config DeviationConfig
}

// NewDeviationScore creates the method with the given configuration.
func NewDeviationScore(config DeviationConfig) *DeviationScore {
	return &DeviationScore{config: config}
}

// Name returns the method identifier.
func (d *DeviationScore) Name() Name {
	return NameDeviationScore
}

// Evaluate scores the group's frequencies. A group with fewer than 2 points
// or zero variance flags nothing and records a warning instead of failing.
func (d *DeviationScore) Evaluate(group []mode.Observation) (Result, error) {
	result := Result{
		Method: NameDeviationScore,
		Flags:  make([]Flag, len(group)),
	}

	if len(group) < 2 {
		result.Warning = fmt.Sprintf("group has %d point(s); need 2 for a deviation score", len(group))
		return result, nil
	}

	freqs := mode.Frequencies(group)
	mean, err := stats.Mean(freqs)
	if err != nil {
		return Result{}, fmt.Errorf("mean: %w", err)
	}
	sigma, err := stats.StandardDeviationSample(freqs)
	if err != nil {
		return Result{}, fmt.Errorf("sample stddev: %w", err)
	}

	if sigma == 0 {
		result.Warning = "zero frequency variance; no points flagged"
		return result, nil
	}

	for i, f := range freqs {
		z := (f - mean) / sigma
		result.Flags[i] = Flag{
			IsOutlier: math.Abs(z) > d.config.Threshold,
			Metric:    z,
		}
	}
	return result, nil
}

// #endregion deviation-score
