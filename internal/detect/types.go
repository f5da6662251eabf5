package detect

import (
	"errors"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region names
// Name identifies a detection method in flags, summaries, and reports.
type Name string

const (
	NameDeviationScore Name = "DeviationScore"
	NameTrendFit       Name = "TrendFit"
	NameJointDistance  Name = "JointDistance"
)

// #endregion names

// #region errors
// ErrInsufficientData marks a group too small or too degenerate for a method.
// The caller skips the method for that group; other methods still vote.
var ErrInsufficientData = errors.New("insufficient data")

// #endregion errors

// #region method
// Method scores one read-only observation group. Implementations must not
// retain or mutate the group; a group holds one sub-mode of one mode family.
type Method interface {
	Name() Name
	Evaluate(group []mode.Observation) (Result, error)
}

// Flag is one method's verdict on one observation.
type Flag struct {
	IsOutlier bool
	Metric    float64
}

// Result is a method's verdict over a whole group. Flags run parallel to the
// input group.
type Result struct {
	Method       Name
	Flags        []Flag
	Warning      string // recoverable condition, e.g. zero variance
	UsedFallback bool   // joint distance degraded to standardized Euclidean
}

// Failure records a method that could not run for a group.
type Failure struct {
	Method Name
	Err    error
}

// #endregion method

// #region deviation-config
// DeviationConfig holds the z-score flagging threshold.
type DeviationConfig struct {
	Threshold float64 // flag when |z| exceeds this
}

// DefaultDeviationConfig returns the standard two-sigma threshold.
func DefaultDeviationConfig() DeviationConfig {
	return DeviationConfig{
		Threshold: 2.0,
	}
}

// #endregion deviation-config

// #region trendfit-config
// TrendFitConfig holds polynomial trend band parameters.
type TrendFitConfig struct {
	PolynomialDegree int     // least-squares fit degree (default 2)
	ConfidenceLevel  float64 // two-sided band coverage (default 0.95)
}

// DefaultTrendFitConfig returns the standard quadratic 95% band.
func DefaultTrendFitConfig() TrendFitConfig {
	return TrendFitConfig{
		PolynomialDegree: 2,
		ConfidenceLevel:  0.95,
	}
}

// #endregion trendfit-config

// #region jointdistance-config
// JointDistanceConfig holds Mahalanobis flagging parameters over
// (frequency, MAC) pairs.
type JointDistanceConfig struct {
	DistanceThreshold float64 // flag when d exceeds this
	MACThreshold      float64 // flag when mac falls below this, regardless of d
}

// DefaultJointDistanceConfig returns the standard thresholds.
func DefaultJointDistanceConfig() JointDistanceConfig {
	return JointDistanceConfig{
		DistanceThreshold: 3.0,
		MACThreshold:      0.5,
	}
}

// #endregion jointdistance-config

// #region methods
// Methods builds the full detection set in canonical order.
func Methods(dc DeviationConfig, tc TrendFitConfig, jc JointDistanceConfig) []Method {
	return []Method{
		NewDeviationScore(dc),
		NewTrendFit(tc),
		NewJointDistance(jc),
	}
}

// #endregion methods
