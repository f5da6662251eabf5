package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSet = `{
  "case_name": "bridge-a-2024",
  "sampling_frequency": 100.0,
  "channels": ["ch1", "ch2", "ch3", "ch4"],
  "segments": [
    {
      "segment_id": 1,
      "start_time": "2024-03-01T00:00:00Z",
      "end_time": "2024-03-01T00:30:00Z",
      "quality": 0.92,
      "candidates": [
        {"frequency": 25.01, "damping_ratio": 0.012, "mode_shape": [1.0, 1.01, 0.99, 1.0], "detection_percentage": 0.85},
        {"frequency": 27.7, "damping_ratio": 0.015, "mode_shape": [1.0, 0.52, -0.48, -1.02], "detection_percentage": 0.6}
      ]
    },
    {
      "segment_id": 2,
      "start_time": "2024-03-01T00:30:00Z",
      "end_time": "2024-03-01T01:00:00Z",
      "quality": 0.88,
      "candidates": [
        {"frequency": 24.98, "damping_ratio": 0.011, "mode_shape": [0.99, 1.0, 1.01, 0.98], "detection_percentage": 0.9}
      ]
    }
  ]
}`

func writeSampleSet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.json")
	if err := os.WriteFile(path, []byte(sampleSet), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestLoadCandidateSet(t *testing.T) {
	set, err := LoadCandidateSet(writeSampleSet(t))
	if err != nil {
		t.Fatalf("LoadCandidateSet: %v", err)
	}
	if set.CaseName != "bridge-a-2024" {
		t.Fatalf("unexpected case name: %s", set.CaseName)
	}
	if set.SamplingFrequency != 100.0 {
		t.Fatalf("unexpected sampling frequency: %v", set.SamplingFrequency)
	}
	if len(set.Channels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(set.Channels))
	}
	if len(set.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(set.Segments))
	}
	if len(set.Segments[0].Candidates) != 2 {
		t.Fatalf("expected 2 candidates in segment 1, got %d", len(set.Segments[0].Candidates))
	}
}

func TestLoadCandidateSetMissingFile(t *testing.T) {
	if _, err := LoadCandidateSet(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadCandidateSetBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCandidateSet(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFlattenAttachesSegmentIdentity(t *testing.T) {
	set, err := LoadCandidateSet(writeSampleSet(t))
	if err != nil {
		t.Fatalf("LoadCandidateSet: %v", err)
	}

	cands := set.Flatten()
	if len(cands) != 3 {
		t.Fatalf("expected 3 flattened candidates, got %d", len(cands))
	}
	if cands[0].SegmentID != 1 || cands[1].SegmentID != 1 || cands[2].SegmentID != 2 {
		t.Fatalf("unexpected segment ids: %d %d %d", cands[0].SegmentID, cands[1].SegmentID, cands[2].SegmentID)
	}
	if cands[0].SegmentStart != "2024-03-01T00:00:00Z" || cands[0].SegmentEnd != "2024-03-01T00:30:00Z" {
		t.Fatalf("segment timing not carried: %+v", cands[0])
	}
	if cands[2].Frequency != 24.98 || cands[2].DetectionPercentage != 0.9 {
		t.Fatalf("candidate values not carried: %+v", cands[2])
	}
	if len(cands[1].ModeShape) != 4 {
		t.Fatalf("mode shape not carried: %+v", cands[1])
	}
}
