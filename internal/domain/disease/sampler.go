package disease

import (
	"fmt"
	"math/rand"

	"github.com/mkret/seihrd/internal/domain/status"
)

// Choose draws one status from candidates using the given relative weights.
// Weights need not be normalized, but every weight must be non-negative and
// the total must be positive; degenerate weights fail loudly rather than
// produce an undefined draw.
func Choose(rng *rand.Rand, candidates []status.Status, weights []float64) (status.Status, error) {
	if len(candidates) == 0 || len(candidates) != len(weights) {
		return 0, fmt.Errorf("%w: %d candidates, %d weights", ErrWeightMismatch, len(candidates), len(weights))
	}

	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: weight %g for %s", ErrNegativeWeight, w, candidates[i])
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: candidates %v", ErrZeroWeights, candidates)
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return candidates[i], nil
		}
	}

	// Floating point underflow can leave r at exactly zero; fall back to
	// the last candidate with positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return candidates[i], nil
		}
	}
	return candidates[len(candidates)-1], nil
}
