package shape

import "fmt"

// #region matcher
// Matcher assigns sub-mode labels to candidate shapes by best MAC against a
// fixed reference set. References are read-only after construction.
type Matcher struct {
	refs   []Reference
	config MatchConfig
}

// NewMatcher creates a matcher over the given references.
func NewMatcher(refs []Reference, config MatchConfig) *Matcher {
	return &Matcher{refs: refs, config: config}
}

// Match compares a candidate shape against every reference and returns the
// best-MAC assignment. A best MAC below MinMatch yields Matched=false rather
// than an error; ShapeMismatch and DegenerateShape are candidate-fatal.
func (m *Matcher) Match(candidate []float64) (Match, error) {
	if len(m.refs) == 0 {
		return Match{}, fmt.Errorf("no references configured")
	}

	best := Match{}
	for _, ref := range m.refs {
		mac, err := MAC(candidate, ref.Vector)
		if err != nil {
			return Match{}, fmt.Errorf("match against %s: %w", ref.Label, err)
		}
		if mac > best.MAC {
			best.MAC = mac
			best.Label = ref.Label
		}
	}

	if best.MAC < m.config.MinMatch {
		return Match{MAC: best.MAC}, nil
	}
	best.Matched = true
	return best, nil
}

// #endregion matcher
