package logprob

import (
	"math"

	"golang.org/x/exp/constraints"
)

// logAddExp computes log(exp(a) + exp(b)) without leaving log space.
// The larger operand anchors the computation so the exponential argument is
// never positive; equal operands short-circuit to a + ln 2, which also keeps
// Impossible + Impossible from producing exp(-Inf - -Inf) = exp(NaN).
func logAddExp[T constraints.Float](a, b T) T {
	switch {
	case a > b:
		return a + T(math.Log1p(math.Exp(float64(b-a))))
	case a < b:
		return b + T(math.Log1p(math.Exp(float64(a-b))))
	default:
		return a + T(math.Ln2)
	}
}

// LogAddExp returns the sum of the two probabilities, i.e.
// log(exp(x) + exp(y)) computed stably. Unlike Add, the domain is not closed
// under this operation: two probabilities may sum past one, in which case
// ErrSumExceedsOne is returned.
func (x LogProb[T]) LogAddExp(y LogProb[T]) (LogProb[T], error) {
	v, err := New(logAddExp(x.val, y.val))
	if err != nil {
		return LogProb[T]{}, ErrSumExceedsOne
	}

	return v, nil
}

// LogAddExpClamped returns the sum of the two probabilities, clamping any
// total above one to Zero.
func (x LogProb[T]) LogAddExpClamped(y LogProb[T]) LogProb[T] {
	v, err := New(logAddExp(x.val, y.val))
	if err != nil {
		return LogProb[T]{}
	}

	return v
}

// LogAddExpFloat returns the sum of the two probabilities as a raw
// log-space float, which may exceed zero. Use it when a caller normalizes
// the total itself.
func (x LogProb[T]) LogAddExpFloat(y LogProb[T]) T {
	return logAddExp(x.val, y.val)
}
