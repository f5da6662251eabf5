package shape

import "errors"

// #region errors
// ErrShapeMismatch indicates a candidate shape whose length differs from the reference.
var ErrShapeMismatch = errors.New("mode shape length mismatch")

// ErrDegenerateShape indicates a shape whose norm is too small for a stable MAC.
var ErrDegenerateShape = errors.New("degenerate mode shape")

// #endregion errors

// #region reference
// Reference is an immutable reference mode shape for one tracked sub-mode.
type Reference struct {
	ModeNumber int       // parent mode family, e.g. 6
	Label      string    // sub-mode label, e.g. "6.2"
	Vector     []float64 // one component per sensor channel, fixed order
}

// ForMode filters references down to one mode family.
func ForMode(refs []Reference, modeNumber int) []Reference {
	out := make([]Reference, 0, len(refs))
	for _, r := range refs {
		if r.ModeNumber == modeNumber {
			out = append(out, r)
		}
	}
	return out
}

// #endregion reference

// #region match-config
// MatchConfig holds thresholds for reference matching.
type MatchConfig struct {
	MinMatch float64 // lowest MAC accepted as a valid sub-mode assignment
}

// DefaultMatchConfig returns the standard matching threshold.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinMatch: 0.5,
	}
}

// #endregion match-config

// #region match
// Match is the outcome of comparing one candidate shape against all references.
type Match struct {
	Label   string  // winning sub-mode label ("" when unmatched)
	MAC     float64 // MAC against the winning reference
	Matched bool    // false when the best MAC fell below MinMatch
}

// #endregion match
