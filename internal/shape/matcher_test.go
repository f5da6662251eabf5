package shape

import (
	"errors"
	"testing"
)

// helper: three loosely orthogonal reference shapes under mode 6.
func testRefs() []Reference {
	return []Reference{
		{ModeNumber: 6, Label: "6.1", Vector: []float64{1, 1, 1, 1}},
		{ModeNumber: 6, Label: "6.2", Vector: []float64{1, 0.5, -0.5, -1}},
		{ModeNumber: 6, Label: "6.3", Vector: []float64{1, -1, -1, 1}},
	}
}

func TestMatcherAssignsBestLabel(t *testing.T) {
	m := NewMatcher(testRefs(), DefaultMatchConfig())

	// Close to 6.2 with slight measurement noise.
	match, err := m.Match([]float64{0.98, 0.52, -0.47, -1.02})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !match.Matched {
		t.Fatal("expected a match")
	}
	if match.Label != "6.2" {
		t.Fatalf("expected label 6.2, got %s", match.Label)
	}
	if match.MAC <= 0.9 {
		t.Fatalf("expected high MAC for near-reference shape, got %f", match.MAC)
	}
}

func TestMatcherExactReference(t *testing.T) {
	refs := testRefs()
	m := NewMatcher(refs, DefaultMatchConfig())

	for _, ref := range refs {
		match, err := m.Match(ref.Vector)
		if err != nil {
			t.Fatalf("Match(%s): %v", ref.Label, err)
		}
		if match.Label != ref.Label {
			t.Errorf("expected label %s, got %s", ref.Label, match.Label)
		}
		if match.MAC < 0.999999 {
			t.Errorf("%s: expected MAC ~1, got %f", ref.Label, match.MAC)
		}
	}
}

func TestMatcherBelowThresholdUnmatched(t *testing.T) {
	config := MatchConfig{MinMatch: 0.95}
	m := NewMatcher(testRefs(), config)

	// Not close to any reference.
	match, err := m.Match([]float64{0.1, -0.9, 0.8, 0.05})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if match.Matched {
		t.Fatalf("expected unmatched, got label %s MAC %f", match.Label, match.MAC)
	}
	if match.Label != "" {
		t.Fatalf("unmatched candidate must carry no label, got %s", match.Label)
	}
}

func TestMatcherShapeMismatch(t *testing.T) {
	m := NewMatcher(testRefs(), DefaultMatchConfig())

	_, err := m.Match([]float64{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for wrong-length candidate")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestMatcherDegenerateCandidate(t *testing.T) {
	m := NewMatcher(testRefs(), DefaultMatchConfig())

	_, err := m.Match([]float64{0, 0, 0, 0})
	if !errors.Is(err, ErrDegenerateShape) {
		t.Fatalf("expected ErrDegenerateShape, got %v", err)
	}
}

func TestMatcherNoReferences(t *testing.T) {
	m := NewMatcher(nil, DefaultMatchConfig())
	_, err := m.Match([]float64{1, 2, 3, 4})
	if err == nil {
		t.Fatal("expected error with no references")
	}
}

func TestForMode(t *testing.T) {
	refs := append(testRefs(), Reference{ModeNumber: 2, Label: "2.1", Vector: []float64{1, 2, 3, 4}})

	mode6 := ForMode(refs, 6)
	if len(mode6) != 3 {
		t.Fatalf("expected 3 mode-6 references, got %d", len(mode6))
	}
	for _, r := range mode6 {
		if r.ModeNumber != 6 {
			t.Fatalf("unexpected mode %d in filtered set", r.ModeNumber)
		}
	}

	if got := ForMode(refs, 9); len(got) != 0 {
		t.Fatalf("expected no mode-9 references, got %d", len(got))
	}
}
