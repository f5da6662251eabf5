package detect

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region trend-fit
// TrendFit fits a polynomial of frequency over segment number and flags
// observations outside a t-distribution confidence band around the fit.
// Slow drift (temperature, loading) follows the trend; damage-like jumps
// leave the band.
type TrendFit struct {
	config TrendFitConfig
}

// NewTrendFit creates the method with the given configuration.
func NewTrendFit(config TrendFitConfig) *TrendFit {
	return &TrendFit{config: config}
}

// Name returns the method identifier.
func (t *TrendFit) Name() Name {
	return NameTrendFit
}

// Evaluate fits the band and scores each observation. Fails with
// ErrInsufficientData when the regression is underdetermined (n <= degree+1)
// or the design matrix is singular.
func (t *TrendFit) Evaluate(group []mode.Observation) (Result, error) {
	n := len(group)
	terms := t.config.PolynomialDegree + 1
	if n <= terms {
		return Result{}, fmt.Errorf("%w: %d point(s) for degree-%d fit", ErrInsufficientData, n, t.config.PolynomialDegree)
	}

	// Vandermonde design matrix over segment number.
	design := mat.NewDense(n, terms, nil)
	resp := mat.NewVecDense(n, mode.Frequencies(group))
	for i, o := range group {
		x := float64(o.SegmentID)
		v := 1.0
		for j := 0; j < terms; j++ {
			design.Set(i, j, v)
			v *= x
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, resp); err != nil {
		return Result{}, fmt.Errorf("%w: singular design matrix: %v", ErrInsufficientData, err)
	}

	// Residual standard error with dof = n - (degree+1).
	predictions := make([]float64, n)
	var rss float64
	for i, o := range group {
		p := evalPolynomial(&coef, float64(o.SegmentID))
		predictions[i] = p
		r := o.Frequency - p
		rss += r * r
	}
	dof := float64(n - terms)
	stderr := math.Sqrt(rss / dof)

	// Two-sided band half-width from the t quantile at the configured level.
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	tCrit := tDist.Quantile(0.5 + t.config.ConfidenceLevel/2)
	band := tCrit * stderr

	result := Result{
		Method: NameTrendFit,
		Flags:  make([]Flag, n),
	}
	for i, o := range group {
		lower := predictions[i] - band
		upper := predictions[i] + band
		switch {
		case o.Frequency > upper:
			result.Flags[i] = Flag{IsOutlier: true, Metric: o.Frequency - upper}
		case o.Frequency < lower:
			result.Flags[i] = Flag{IsOutlier: true, Metric: o.Frequency - lower}
		default:
			result.Flags[i] = Flag{Metric: 0}
		}
	}
	return result, nil
}

// evalPolynomial evaluates sum(coef[j] * x^j) by Horner's rule.
func evalPolynomial(coef *mat.VecDense, x float64) float64 {
	acc := 0.0
	for j := coef.Len() - 1; j >= 0; j-- {
		acc = acc*x + coef.AtVec(j)
	}
	return acc
}

// #endregion trend-fit
