package detect

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// minCovarianceDet is the smallest determinant accepted for covariance
// inversion; below it the method falls back to standardized Euclidean.
const minCovarianceDet = 1e-12

// #region joint-distance
// JointDistance flags observations by Mahalanobis distance over the 2-D
// sample (frequency, MAC). A point is also flagged, regardless of distance,
// when its MAC falls below the configured minimum: a poor shape match is
// always suspect.
type JointDistance struct {
	config JointDistanceConfig
}

// NewJointDistance creates the method with the given configuration.
func NewJointDistance(config JointDistanceConfig) *JointDistance {
	return &JointDistance{config: config}
}

// Name returns the method identifier.
func (j *JointDistance) Name() Name {
	return NameJointDistance
}

// Evaluate scores the group. Singular or near-singular covariance triggers a
// recorded fallback to per-dimension z-scores combined as Euclidean distance;
// it never fails the method.
func (j *JointDistance) Evaluate(group []mode.Observation) (Result, error) {
	n := len(group)
	result := Result{
		Method: NameJointDistance,
		Flags:  make([]Flag, n),
	}

	if n < 2 {
		// No distribution to measure against; only the MAC floor applies.
		result.Warning = "group too small for a covariance estimate"
		for i, o := range group {
			result.Flags[i] = Flag{IsOutlier: o.MACValue < j.config.MACThreshold}
		}
		return result, nil
	}

	freqs := make([]float64, n)
	macs := make([]float64, n)
	for i, o := range group {
		freqs[i] = o.Frequency
		macs[i] = o.MACValue
	}

	meanF := stat.Mean(freqs, nil)
	meanM := stat.Mean(macs, nil)
	varF := stat.Variance(freqs, nil)
	varM := stat.Variance(macs, nil)
	cov := stat.Covariance(freqs, macs, nil)

	det := varF*varM - cov*cov
	result.UsedFallback = det < minCovarianceDet

	sdF := math.Sqrt(varF)
	sdM := math.Sqrt(varM)

	for i, o := range group {
		dx := o.Frequency - meanF
		dy := o.MACValue - meanM

		var d float64
		if result.UsedFallback {
			// Standardized Euclidean over whichever dimensions still carry
			// variance.
			var zf, zm float64
			if sdF > 0 {
				zf = dx / sdF
			}
			if sdM > 0 {
				zm = dy / sdM
			}
			d = math.Sqrt(zf*zf + zm*zm)
		} else {
			// Quadratic form of the centered pair with the 2x2 inverse expanded.
			q := (dx*dx*varM - 2*dx*dy*cov + dy*dy*varF) / det
			if q < 0 {
				q = 0
			}
			d = math.Sqrt(q)
		}

		result.Flags[i] = Flag{
			IsOutlier: d > j.config.DistanceThreshold || o.MACValue < j.config.MACThreshold,
			Metric:    d,
		}
	}
	return result, nil
}

// #endregion joint-distance
