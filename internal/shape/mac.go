package shape

import "fmt"

// normEpsilon guards the MAC denominator against numerically dead shapes.
const normEpsilon = 1e-12

// #region mac
// MAC computes the Modal Assurance Criterion between two real mode shapes:
// (a^T b)^2 / ((a^T a)(b^T b)). The result lies in [0, 1] and is invariant
// to the sign and scaling of either shape.
func MAC(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d components", ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: empty vector", ErrDegenerateShape)
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA < normEpsilon || normB < normEpsilon {
		return 0, fmt.Errorf("%w: near-zero norm", ErrDegenerateShape)
	}

	mac := (dot * dot) / (normA * normB)
	// Floating-point roundoff can nudge identical shapes past 1.
	if mac > 1 {
		mac = 1
	}
	return mac, nil
}

// #endregion mac
