package mode

// #region candidate
// Candidate is one modal estimate produced for a measurement segment by the
// upstream identification service. Values are never mutated by the analyzer.
type Candidate struct {
	SegmentID           int
	Frequency           float64 // Hz
	DampingRatio        float64
	ModeShape           []float64 // one component per sensor channel
	DetectionPercentage float64   // fraction of the segment the mode was detected in, [0,1]

	// Optional segment metadata carried through for traceability.
	SegmentStart string
	SegmentEnd   string
}

// #endregion candidate

// #region observation
// Observation is a candidate enriched with its sub-mode assignment. Each
// pipeline stage produces new observations instead of mutating shared ones.
type Observation struct {
	SegmentID           int
	SubModeLabel        string
	Frequency           float64
	DampingRatio        float64
	MACValue            float64
	DetectionPercentage float64
	SegmentStart        string
	SegmentEnd          string
}

// #endregion observation

// #region grouping
// GroupByLabel buckets observations by sub-mode label, preserving input order
// within each group. Label iteration order is left to the caller.
func GroupByLabel(obs []Observation) map[string][]Observation {
	groups := make(map[string][]Observation)
	for _, o := range obs {
		groups[o.SubModeLabel] = append(groups[o.SubModeLabel], o)
	}
	return groups
}

// Frequencies extracts the frequency series from a group in order.
func Frequencies(obs []Observation) []float64 {
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Frequency
	}
	return out
}

// #endregion grouping
