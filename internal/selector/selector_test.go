package selector

import (
	"testing"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

func obsWith(segment int, label string, mac float64) mode.Observation {
	return mode.Observation{
		SegmentID:    segment,
		SubModeLabel: label,
		Frequency:    25.0,
		MACValue:     mac,
	}
}

func TestApplyKeepsHighestMAC(t *testing.T) {
	input := []mode.Observation{
		obsWith(3, "6.1", 0.4),
		obsWith(3, "6.2", 0.9),
		obsWith(3, "6.3", 0.6),
	}

	kept, stats := Apply(input)

	if len(kept) != 1 {
		t.Fatalf("expected 1 observation kept, got %d", len(kept))
	}
	if kept[0].MACValue != 0.9 {
		t.Fatalf("expected the 0.9 candidate to win, got MAC %f", kept[0].MACValue)
	}
	if kept[0].SubModeLabel != "6.2" {
		t.Fatalf("expected label 6.2, got %s", kept[0].SubModeLabel)
	}
	if stats.TotalRemoved != 2 {
		t.Fatalf("expected 2 removed, got %d", stats.TotalRemoved)
	}
	if stats.RemovedPerSegment[3] != 2 {
		t.Fatalf("expected 2 removed for segment 3, got %d", stats.RemovedPerSegment[3])
	}
	if stats.WinsPerLabel["6.2"] != 1 {
		t.Fatalf("expected one win for 6.2, got %d", stats.WinsPerLabel["6.2"])
	}
}

func TestApplyIndependentSegments(t *testing.T) {
	input := []mode.Observation{
		obsWith(1, "6.1", 0.8),
		obsWith(1, "6.2", 0.7),
		obsWith(2, "6.2", 0.95),
		obsWith(3, "6.3", 0.6),
	}

	kept, stats := Apply(input)

	if len(kept) != 3 {
		t.Fatalf("expected 3 observations kept, got %d", len(kept))
	}
	if stats.TotalRemoved != 1 {
		t.Fatalf("expected 1 removed, got %d", stats.TotalRemoved)
	}
	// Winners surface in input order.
	if kept[0].SegmentID != 1 || kept[1].SegmentID != 2 || kept[2].SegmentID != 3 {
		t.Fatalf("expected input order preserved, got %+v", kept)
	}
	if stats.WinsPerLabel["6.1"] != 1 || stats.WinsPerLabel["6.2"] != 1 || stats.WinsPerLabel["6.3"] != 1 {
		t.Fatalf("unexpected win distribution: %v", stats.WinsPerLabel)
	}
}

func TestApplyTieKeepsEarliest(t *testing.T) {
	input := []mode.Observation{
		obsWith(5, "6.1", 0.8),
		obsWith(5, "6.2", 0.8),
	}

	kept, _ := Apply(input)

	if len(kept) != 1 {
		t.Fatalf("expected 1 kept, got %d", len(kept))
	}
	if kept[0].SubModeLabel != "6.1" {
		t.Fatalf("tie should keep earliest candidate, got %s", kept[0].SubModeLabel)
	}
}

func TestApplyValuesUntouched(t *testing.T) {
	original := mode.Observation{
		SegmentID:           7,
		SubModeLabel:        "6.2",
		Frequency:           25.31,
		DampingRatio:        0.012,
		MACValue:            0.97,
		DetectionPercentage: 0.88,
		SegmentStart:        "2024-03-01T00:00:00Z",
		SegmentEnd:          "2024-03-01T00:25:00Z",
	}

	kept, _ := Apply([]mode.Observation{original, obsWith(7, "6.1", 0.2)})

	if len(kept) != 1 {
		t.Fatalf("expected 1 kept, got %d", len(kept))
	}
	if kept[0] != original {
		t.Fatalf("selector must not modify values: got %+v", kept[0])
	}
}

func TestApplyEmptyInput(t *testing.T) {
	kept, stats := Apply(nil)
	if len(kept) != 0 {
		t.Fatalf("expected no output, got %d", len(kept))
	}
	if stats.TotalRemoved != 0 {
		t.Fatalf("expected 0 removed, got %d", stats.TotalRemoved)
	}
}
