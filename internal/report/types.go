package report

// #region record
// Record is one observation's row in the final report. Method metrics are
// present whether or not the observation was flagged.
type Record struct {
	SegmentID        int     `json:"segment_id"`
	SubModeLabel     string  `json:"sub_mode"`
	Frequency        float64 `json:"frequency"`
	MACValue         float64 `json:"mac_value"`
	ZScore           float64 `json:"z_score"`
	TrendDistance    float64 `json:"trend_distance"`
	JointDistance    float64 `json:"joint_distance"`
	IsOutlier        bool    `json:"is_outlier"`
	OutlierType      string  `json:"outlier_type"`
	DistanceFromMean float64 `json:"distance_from_mean"`
}

// #endregion record

// #region summary
// Exclusion records a candidate that never reached detection, with the
// reason it was dropped.
type Exclusion struct {
	SegmentID int    `json:"segment_id"`
	Reason    string `json:"reason"`
}

// MethodEvent records a method skipped, degraded, or warning for one
// sub-mode group.
type MethodEvent struct {
	SubModeLabel string `json:"sub_mode"`
	Method       string `json:"method"`
	Detail       string `json:"detail"`
}

// SelectorStats mirrors the best-candidate filter's side output.
type SelectorStats struct {
	TotalRemoved      int            `json:"total_removed"`
	RemovedPerSegment map[int]int    `json:"removed_per_segment,omitempty"`
	WinsPerLabel      map[string]int `json:"wins_per_label,omitempty"`
}

// Summary totals one analysis run over a single mode number. Unmatched
// candidates fell below the MAC minimum; excluded ones failed validation or
// shape matching outright.
type Summary struct {
	ModeNumber int           `json:"mode_number"`
	Candidates int           `json:"candidates"`
	Matched    int           `json:"matched"`
	Outliers   int           `json:"outliers"`
	Unmatched  []Exclusion   `json:"unmatched,omitempty"`
	Excluded   []Exclusion   `json:"excluded,omitempty"`
	Selector   SelectorStats `json:"selector"`
	Skips      []MethodEvent `json:"skips,omitempty"`
	Warnings   []MethodEvent `json:"warnings,omitempty"`
	Fallbacks  []MethodEvent `json:"fallbacks,omitempty"`
}

// #endregion summary
