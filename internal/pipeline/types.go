package pipeline

import (
	"github.com/structhealth/modal-tracking/go-analyzer/internal/detect"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/report"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/shape"
)

// #region types
// Config bundles matching, selection, and detection parameters for one mode
// number's analysis run.
type Config struct {
	References []shape.Reference
	Match      shape.MatchConfig
	BestOnly   bool // keep only the highest-MAC candidate per segment
	Deviation  detect.DeviationConfig
	TrendFit   detect.TrendFitConfig
	Joint      detect.JointDistanceConfig
}

// DefaultConfig returns standard thresholds for every stage. References
// must still be supplied per mode.
func DefaultConfig() Config {
	return Config{
		Match:     shape.DefaultMatchConfig(),
		BestOnly:  true,
		Deviation: detect.DefaultDeviationConfig(),
		TrendFit:  detect.DefaultTrendFitConfig(),
		Joint:     detect.DefaultJointDistanceConfig(),
	}
}

// ModeJob is one mode number's unit of work for RunModes.
type ModeJob struct {
	ModeNumber int
	Candidates []mode.Candidate
	Config     Config
}

// ModeResult pairs a mode number with its completed run.
type ModeResult struct {
	ModeNumber int
	Table      report.Table
	Summary    report.Summary
	Err        error
}

// #endregion types
