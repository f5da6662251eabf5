package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region candidate-set

// CandidateSet is the top-level JSON structure written by the upstream
// identification step, one file per measurement case.
type CandidateSet struct {
	CaseName          string        `json:"case_name"`
	SamplingFrequency float64       `json:"sampling_frequency"`
	Channels          []string      `json:"channels"`
	Segments          []SegmentData `json:"segments"`
}

// SegmentData holds one measurement segment and its modal candidates.
type SegmentData struct {
	SegmentID  int                `json:"segment_id"`
	StartTime  string             `json:"start_time"`
	EndTime    string             `json:"end_time"`
	Quality    float64            `json:"quality"`
	Candidates []SegmentCandidate `json:"candidates"`
}

// SegmentCandidate is one modal estimate within a segment.
type SegmentCandidate struct {
	Frequency           float64   `json:"frequency"`
	DampingRatio        float64   `json:"damping_ratio"`
	ModeShape           []float64 `json:"mode_shape"`
	DetectionPercentage float64   `json:"detection_percentage"`
}

// #endregion candidate-set

// #region candidate-loader

// LoadCandidateSet reads and parses a JSON candidate-set file.
func LoadCandidateSet(path string) (*CandidateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidate set %s: %w", path, err)
	}
	var s CandidateSet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse candidate set %s: %w", path, err)
	}
	return &s, nil
}

// Flatten expands the per-segment layout into one candidate list, attaching
// segment identity and timing to every candidate.
func (s *CandidateSet) Flatten() []mode.Candidate {
	var out []mode.Candidate
	for _, seg := range s.Segments {
		for _, c := range seg.Candidates {
			out = append(out, mode.Candidate{
				SegmentID:           seg.SegmentID,
				Frequency:           c.Frequency,
				DampingRatio:        c.DampingRatio,
				ModeShape:           c.ModeShape,
				DetectionPercentage: c.DetectionPercentage,
				SegmentStart:        seg.StartTime,
				SegmentEnd:          seg.EndTime,
			})
		}
	}
	return out
}

// #endregion candidate-loader
