package logprob

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// LogSumExp — numerically stable log-space summation
//
// Description:
//
//	Given log-probabilities x₁…xₙ, compute log(Σ exp(xᵢ)) without ever
//	exponentiating a value that could overflow, and without catastrophic
//	cancellation.
//
// Algorithm Outline (two-pass, materialized slice):
//  1. n = 0 → the sum of zero probabilities is Impossible (-Inf).
//  2. First pass: m = max(x₁…xₙ). If m = -Inf every term is probability
//     zero; return Impossible immediately (the shifted sum would hit the
//     indeterminate exp(-Inf - -Inf)).
//  3. Second pass: s = Σ exp(xᵢ − m). The shift pins the largest term to
//     exp(0) = 1, so no term overflows; terms far below m underflow to
//     zero, which is fine — they are negligible in the sum.
//  4. Result = m + log(s).
//
// Call Shapes:
//   - LogSumExp / LogSumExpClamped / LogSumExpFloat — random-access slice,
//     two passes.
//   - Accumulator, LogSumExpSeq — one-shot sequences, single pass. The
//     accumulator keeps (runningMax, partialSumAtMax) and rescales the
//     partial sum whenever a new maximum appears, so the input is never
//     iterated twice.
//
// Errors:
//   - ErrSumExceedsOne — strict variants only, when the probabilities total
//     more than one. The clamped variants map this to Zero; that clamp also
//     covers a result an ε above zero from floating-point rounding.

// logSumExpFloat is the shared two-pass kernel; the sum is carried in
// float64 regardless of T.
func logSumExpFloat[T constraints.Float](vals []LogProb[T]) T {
	if len(vals) == 0 {
		return T(math.Inf(-1))
	}

	m := vals[0].val
	for _, v := range vals[1:] {
		if v.val > m {
			m = v.val
		}
	}
	if math.IsInf(float64(m), -1) {
		return m
	}

	var s float64
	for _, v := range vals {
		s += math.Exp(float64(v.val - m))
	}

	return m + T(math.Log(s))
}

// LogSumExp computes log(Σ exp(xᵢ)) over vals. An empty slice yields
// Impossible. If the probabilities total more than one the result would
// leave the valid domain, and ErrSumExceedsOne is returned.
func LogSumExp[T constraints.Float](vals []LogProb[T]) (LogProb[T], error) {
	v, err := New(logSumExpFloat(vals))
	if err != nil {
		return LogProb[T]{}, ErrSumExceedsOne
	}

	return v, nil
}

// LogSumExpClamped computes log(Σ exp(xᵢ)) over vals, clamping any result
// above zero (whether genuine over-one mass or an ε of rounding) to Zero.
// It never fails.
func LogSumExpClamped[T constraints.Float](vals []LogProb[T]) LogProb[T] {
	v, err := New(logSumExpFloat(vals))
	if err != nil {
		return LogProb[T]{}
	}

	return v
}

// LogSumExpFloat computes log(Σ exp(xᵢ)) over vals as a raw log-space
// float, which may exceed zero.
func LogSumExpFloat[T constraints.Float](vals []LogProb[T]) T {
	return logSumExpFloat(vals)
}

// Accumulator is the single-pass form of LogSumExp for one-shot sequences.
// It holds only the running maximum and the partial sum of exp(xᵢ − max);
// when a value above the current maximum arrives, the partial sum is
// rescaled by exp(oldMax − newMax) before the new term's exp(0) = 1 is
// added. The zero value is ready to use.
//
// An Accumulator is not safe for concurrent use; give each goroutine its
// own, or aggregate disjoint sequences and combine the finalized values.
type Accumulator[T constraints.Float] struct {
	max  T
	sum  float64
	seen bool
}

// Observe folds one value into the running aggregation.
func (a *Accumulator[T]) Observe(x LogProb[T]) {
	if x.IsImpossible() {
		// Probability zero contributes nothing.
		return
	}
	switch {
	case !a.seen:
		a.max, a.sum, a.seen = x.val, 1, true
	case x.val > a.max:
		a.sum = a.sum*math.Exp(float64(a.max-x.val)) + 1
		a.max = x.val
	default:
		a.sum += math.Exp(float64(x.val - a.max))
	}
}

// SumFloat finalizes the aggregation as a raw log-space float, which may
// exceed zero. Observing nothing (or only Impossible values) yields -Inf.
func (a *Accumulator[T]) SumFloat() T {
	if !a.seen {
		return T(math.Inf(-1))
	}

	return a.max + T(math.Log(a.sum))
}

// Sum finalizes the aggregation, returning ErrSumExceedsOne if the
// probabilities total more than one.
func (a *Accumulator[T]) Sum() (LogProb[T], error) {
	v, err := New(a.SumFloat())
	if err != nil {
		return LogProb[T]{}, ErrSumExceedsOne
	}

	return v, nil
}

// SumClamped finalizes the aggregation, clamping any result above zero
// to Zero.
func (a *Accumulator[T]) SumClamped() LogProb[T] {
	v, err := New(a.SumFloat())
	if err != nil {
		return LogProb[T]{}
	}

	return v
}

// Reset returns the accumulator to its initial state for reuse.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{}
}

// LogSumExpSeq computes log(Σ exp(xᵢ)) over a one-shot sequence in a single
// pass. The sequence is consumed exactly once; it need not be restartable.
func LogSumExpSeq[T constraints.Float](seq iter.Seq[LogProb[T]]) (LogProb[T], error) {
	var acc Accumulator[T]
	for x := range seq {
		acc.Observe(x)
	}

	return acc.Sum()
}

// LogSumExpSeqClamped is LogSumExpSeq with over-one totals clamped to Zero.
func LogSumExpSeqClamped[T constraints.Float](seq iter.Seq[LogProb[T]]) LogProb[T] {
	var acc Accumulator[T]
	for x := range seq {
		acc.Observe(x)
	}

	return acc.SumClamped()
}
