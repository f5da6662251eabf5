package detect

import (
	"errors"
	"testing"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// quadraticGroup builds n observations following a gentle quadratic drift,
// the kind temperature cycling produces.
func quadraticGroup(n int) []mode.Observation {
	group := make([]mode.Observation, n)
	for i := range group {
		x := float64(i + 1)
		group[i] = mode.Observation{
			SegmentID:    i + 1,
			SubModeLabel: "6.1",
			Frequency:    25.0 + 0.01*x + 0.002*x*x,
			MACValue:     0.95,
		}
	}
	return group
}

func TestTrendFitFlagsJumpOffTrend(t *testing.T) {
	group := quadraticGroup(15)
	group[7].Frequency += 3.0 // segment 8 jumps well clear of the band

	tf := NewTrendFit(DefaultTrendFitConfig())
	result, err := tf.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i, f := range result.Flags {
		if i == 7 {
			if !f.IsOutlier {
				t.Fatal("expected segment 8 outside the band")
			}
			if f.Metric <= 0 {
				t.Fatalf("expected positive distance above the band, got %.4f", f.Metric)
			}
		} else if f.IsOutlier {
			t.Fatalf("segment %d flagged unexpectedly, metric=%.4f", i+1, f.Metric)
		}
	}
}

func TestTrendFitFollowsDrift(t *testing.T) {
	// Measurement wiggle around the trend, no jump. Everything stays inside
	// the band because the fit follows the drift.
	group := quadraticGroup(15)
	for i := range group {
		if (i+1)%2 == 0 {
			group[i].Frequency += 0.05
		} else {
			group[i].Frequency -= 0.05
		}
	}

	tf := NewTrendFit(DefaultTrendFitConfig())
	result, err := tf.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i, f := range result.Flags {
		if f.IsOutlier {
			t.Fatalf("segment %d flagged on drift alone, metric=%.4f", i+1, f.Metric)
		}
		if f.Metric != 0 {
			t.Fatalf("expected zero metric inside the band, got %.4f", f.Metric)
		}
	}
}

func TestTrendFitInsufficientPoints(t *testing.T) {
	// A degree-2 fit needs more than 3 points.
	group := quadraticGroup(3)

	tf := NewTrendFit(DefaultTrendFitConfig())
	_, err := tf.Evaluate(group)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrendFitSingularDesign(t *testing.T) {
	// All observations share one segment number, so the design matrix has
	// rank 1 and the regression cannot be solved.
	group := quadraticGroup(5)
	for i := range group {
		group[i].SegmentID = 3
	}

	tf := NewTrendFit(DefaultTrendFitConfig())
	_, err := tf.Evaluate(group)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for singular design, got %v", err)
	}
}

func TestTrendFitLinearDegree(t *testing.T) {
	// A degree-1 fit over a clean line with one dropped point.
	group := make([]mode.Observation, 12)
	for i := range group {
		x := float64(i + 1)
		group[i] = mode.Observation{SegmentID: i + 1, SubModeLabel: "6.1", Frequency: 10.0 + 0.1*x}
	}
	for i := range group {
		if (i+1)%2 == 0 {
			group[i].Frequency += 0.02
		} else {
			group[i].Frequency -= 0.02
		}
	}
	group[5].Frequency -= 2.0

	tf := NewTrendFit(TrendFitConfig{PolynomialDegree: 1, ConfidenceLevel: 0.95})
	result, err := tf.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !result.Flags[5].IsOutlier {
		t.Fatal("expected dropped segment 6 below the band")
	}
	if result.Flags[5].Metric >= 0 {
		t.Fatalf("expected negative distance below the band, got %.4f", result.Flags[5].Metric)
	}
	for i, f := range result.Flags {
		if i != 5 && f.IsOutlier {
			t.Fatalf("segment %d flagged unexpectedly", i+1)
		}
	}
}
