package selector

import (
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region types
// Stats reports what the selector removed, for downstream diagnostics.
type Stats struct {
	TotalRemoved      int
	RemovedPerSegment map[int]int    // segment_id -> dropped candidate count
	WinsPerLabel      map[string]int // winning sub-mode label -> segment count
}

// #endregion types

// #region apply
// Apply collapses each segment down to its single highest-MAC observation.
// It is a pure filter: observation values pass through untouched, dominated
// candidates are dropped. Ties keep the earliest candidate in input order.
func Apply(obs []mode.Observation) ([]mode.Observation, Stats) {
	stats := Stats{
		RemovedPerSegment: make(map[int]int),
		WinsPerLabel:      make(map[string]int),
	}
	if len(obs) == 0 {
		return nil, stats
	}

	// First pass: best index per segment.
	bestIdx := make(map[int]int)
	for i, o := range obs {
		j, seen := bestIdx[o.SegmentID]
		if !seen || o.MACValue > obs[j].MACValue {
			bestIdx[o.SegmentID] = i
		}
	}

	// Second pass: emit winners in input order, count the rest.
	kept := make([]mode.Observation, 0, len(bestIdx))
	for i, o := range obs {
		if bestIdx[o.SegmentID] == i {
			kept = append(kept, o)
			stats.WinsPerLabel[o.SubModeLabel]++
			continue
		}
		stats.RemovedPerSegment[o.SegmentID]++
		stats.TotalRemoved++
	}

	return kept, stats
}

// #endregion apply
