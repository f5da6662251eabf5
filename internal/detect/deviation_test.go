package detect

import (
	"math"
	"testing"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

func freqGroup(freqs []float64) []mode.Observation {
	group := make([]mode.Observation, len(freqs))
	for i, f := range freqs {
		group[i] = mode.Observation{
			SegmentID:    i + 1,
			SubModeLabel: "6.1",
			Frequency:    f,
			MACValue:     0.95,
		}
	}
	return group
}

func TestDeviationScoreFlagsSpike(t *testing.T) {
	// Nine segments near 25 Hz, segment 7 jumps to 30 Hz. The spike sits at
	// z of roughly +2.85 against the two-sigma default.
	group := freqGroup([]float64{25.01, 24.98, 25.03, 24.99, 25.02, 24.97, 30.0, 25.0, 25.01, 24.99})
	d := NewDeviationScore(DefaultDeviationConfig())

	result, err := d.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning: %s", result.Warning)
	}
	for i, f := range result.Flags {
		if i == 6 {
			if !f.IsOutlier {
				t.Fatalf("expected segment 7 flagged, z=%.4f", f.Metric)
			}
			if f.Metric < 2.0 {
				t.Fatalf("expected z above threshold for segment 7, got %.4f", f.Metric)
			}
		} else if f.IsOutlier {
			t.Fatalf("segment %d flagged unexpectedly, z=%.4f", i+1, f.Metric)
		}
	}
}

func TestDeviationScoreThresholdRespected(t *testing.T) {
	// Same spike, stricter threshold: z of roughly 2.85 stays under 3.0.
	group := freqGroup([]float64{25.01, 24.98, 25.03, 24.99, 25.02, 24.97, 30.0, 25.0, 25.01, 24.99})
	d := NewDeviationScore(DeviationConfig{Threshold: 3.0})

	result, err := d.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i, f := range result.Flags {
		if f.IsOutlier {
			t.Fatalf("segment %d flagged at threshold 3.0, z=%.4f", i+1, f.Metric)
		}
	}
}

func TestDeviationScoreZeroVariance(t *testing.T) {
	group := freqGroup([]float64{25.0, 25.0, 25.0, 25.0})
	d := NewDeviationScore(DefaultDeviationConfig())

	result, err := d.Evaluate(group)
	if err != nil {
		t.Fatalf("expected zero variance to warn, not fail: %v", err)
	}
	if result.Warning == "" {
		t.Fatal("expected a warning for zero variance")
	}
	for i, f := range result.Flags {
		if f.IsOutlier {
			t.Fatalf("segment %d flagged despite zero variance", i+1)
		}
	}
	if len(result.Flags) != len(group) {
		t.Fatalf("expected %d flags, got %d", len(group), len(result.Flags))
	}
}

func TestDeviationScoreSingleObservation(t *testing.T) {
	group := freqGroup([]float64{25.0})
	d := NewDeviationScore(DefaultDeviationConfig())

	result, err := d.Evaluate(group)
	if err != nil {
		t.Fatalf("expected single point to warn, not fail: %v", err)
	}
	if result.Warning == "" {
		t.Fatal("expected a warning for a single observation")
	}
	if len(result.Flags) != 1 || result.Flags[0].IsOutlier {
		t.Fatal("expected one unflagged observation")
	}
}

func TestDeviationScoreMetricSigns(t *testing.T) {
	group := freqGroup([]float64{24.0, 25.0, 26.0})
	d := NewDeviationScore(DefaultDeviationConfig())

	result, err := d.Evaluate(group)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.Flags[0].Metric >= 0 {
		t.Fatalf("expected negative z below the mean, got %.4f", result.Flags[0].Metric)
	}
	if math.Abs(result.Flags[1].Metric) > 1e-12 {
		t.Fatalf("expected z=0 at the mean, got %.4f", result.Flags[1].Metric)
	}
	if result.Flags[2].Metric <= 0 {
		t.Fatalf("expected positive z above the mean, got %.4f", result.Flags[2].Metric)
	}
}
