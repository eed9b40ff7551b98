package logprob

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Softmax normalizes raw scores into log-space probabilities that sum to
// one: out[i] = scores[i] − log(Σ exp(scores[j])), computed with the usual
// shift by the maximum score so nothing overflows.
//
// Scores may be any float except NaN or +Inf (ErrNotFinite); a score of
// -Inf is allowed and maps to Impossible. At least one score must be above
// -Inf, otherwise there is no mass to normalize (ErrNoFiniteScore). An
// empty input yields an empty slice.
func Softmax[T constraints.Float](scores []T) ([]LogProb[T], error) {
	if len(scores) == 0 {
		return []LogProb[T]{}, nil
	}

	m := math.Inf(-1)
	for _, s := range scores {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 1) {
			return nil, ErrNotFinite
		}
		if f > m {
			m = f
		}
	}
	if math.IsInf(m, -1) {
		return nil, ErrNoFiniteScore
	}

	var sum float64
	for _, s := range scores {
		sum += math.Exp(float64(s) - m)
	}
	logZ := m + math.Log(sum)

	out := make([]LogProb[T], len(scores))
	for i, s := range scores {
		v := float64(s) - logZ
		if v > 0 {
			// Rounding can push the maximum score an ε past zero when
			// log(sum) vanishes next to m; the true value is ≤ 0.
			v = 0
		}
		lp, err := New(T(v))
		if err != nil {
			return nil, err
		}
		out[i] = lp
	}

	return out, nil
}
