package logprob

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// LogProb is a probability stored as its natural logarithm.
//
// The wrapped value is always one of:
//   - exactly -Inf        → probability 0
//   - a finite negative   → probability in (0, 1)
//   - exactly +0.0        → probability 1
//
// NaN, positive values and +Inf are rejected by New, and -0.0 is
// canonicalized to +0.0 at construction. The invariant is enforced only at
// the boundary: every arithmetic operation below is closed over the valid
// domain, so results never need re-validation.
//
// Because NaN is unrepresentable and zero is canonical, LogProb values admit
// a total order and exact structural equality: comparing two values with the
// built-in == operator is always meaningful, and LogProb is usable as a map
// key. Values are immutable and freely copyable.
type LogProb[T constraints.Float] struct {
	val T
}

// New wraps raw as a validated log-probability.
//
// It succeeds iff raw is -Inf, exactly zero (either sign), or finite and
// strictly negative. NaN yields ErrNaN; any positive non-zero value
// (including +Inf) yields ErrPositive. New never panics.
func New[T constraints.Float](raw T) (LogProb[T], error) {
	if math.IsNaN(float64(raw)) {
		return LogProb[T]{}, ErrNaN
	}
	if raw > 0 {
		return LogProb[T]{}, ErrPositive
	}
	if raw == 0 {
		// Collapse -0.0 into the canonical +0.0 representation.
		return LogProb[T]{}, nil
	}

	return LogProb[T]{val: raw}, nil
}

// FromProb wraps a linear-space probability p ∈ [0, 1] by taking its
// natural logarithm. p = 0 maps to Impossible and p = 1 to Zero.
// Negative p yields ErrNaN (its logarithm is undefined); p > 1 yields
// ErrPositive.
func FromProb[T constraints.Float](p T) (LogProb[T], error) {
	return New(T(math.Log(float64(p))))
}

// Zero is the log-probability of 1: the identity element of Add and the
// result of any Pow(0).
func Zero[T constraints.Float]() LogProb[T] {
	return LogProb[T]{}
}

// Impossible is the log-probability of 0 (-Inf): the absorbing element of
// Add and the sum of an empty sequence.
func Impossible[T constraints.Float]() LogProb[T] {
	return LogProb[T]{val: T(math.Inf(-1))}
}

// Equal reports whether x and y wrap the same probability.
func (x LogProb[T]) Equal(y LogProb[T]) bool {
	return x.val == y.val
}

// Less reports whether x is a strictly smaller probability than y.
// Impossible sorts before every other value.
func (x LogProb[T]) Less(y LogProb[T]) bool {
	return x.val < y.val
}

// Compare returns -1 if x < y, 0 if x == y and +1 if x > y. The relation is
// total: exactly one of the three holds for any pair of valid values.
func (x LogProb[T]) Compare(y LogProb[T]) int {
	switch {
	case x.val < y.val:
		return -1
	case x.val > y.val:
		return +1
	default:
		return 0
	}
}

// Add returns the product of the two probabilities, i.e. the sum of their
// logarithms. The operation is total: negative plus negative stays negative,
// anything plus Impossible is Impossible, and only Zero+Zero preserves Zero.
// Together with Zero as identity this forms a commutative monoid.
func (x LogProb[T]) Add(y LogProb[T]) LogProb[T] {
	return LogProb[T]{val: x.val + y.val}
}

// Pow returns the probability raised to the n-th power, i.e. the logarithm
// scaled by n. Pow(0) is Zero for every base, including Impossible
// (any probability to the 0th power is 1). Negative exponents are excluded
// by the parameter type: they could lift a probability above one.
func (x LogProb[T]) Pow(n uint) LogProb[T] {
	if n == 0 {
		return LogProb[T]{}
	}

	return LogProb[T]{val: x.val * T(n)}
}

// Prob returns the linear-space probability exp(value) in [0, 1]. It is a
// lossy convenience for output; none of the arithmetic in this package goes
// through linear space.
func (x LogProb[T]) Prob() T {
	return T(math.Exp(float64(x.val)))
}

// Float returns the raw log-space value.
func (x LogProb[T]) Float() T {
	return x.val
}

// IsZero reports whether x is the probability 1.
func (x LogProb[T]) IsZero() bool {
	return x.val == 0
}

// IsImpossible reports whether x is the probability 0.
func (x LogProb[T]) IsImpossible() bool {
	return math.IsInf(float64(x.val), -1)
}

// String formats the underlying log-space value.
func (x LogProb[T]) String() string {
	return fmt.Sprintf("%v", x.val)
}
