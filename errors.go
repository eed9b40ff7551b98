// Package logprob: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and callers match them via errors.Is. No operation
// panics on user-supplied input; every invalid float is an ordinary rejected
// case at the construction boundary.

package logprob

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "logprob: ..." for consistency and to allow
// easy grepping across logs. Construction is the only fallible gate for the
// value type itself; the strict sum variants add one more kind on top.

var (
	// ErrNaN is returned when a raw input is NaN. NaN is excluded from the
	// domain entirely, which is what makes the total ordering possible.
	ErrNaN = errors.New("logprob: value is NaN")

	// ErrPositive is returned when a raw input is positive and non-zero
	// (including +Inf). A log-probability above zero would mean a probability
	// greater than one.
	ErrPositive = errors.New("logprob: value is positive (probability would exceed 1)")

	// ErrSumExceedsOne is returned by the strict sum variants (LogAddExp,
	// LogSumExp, Accumulator.Sum) when the summed probabilities total more
	// than one. The clamped variants map this case to Zero instead.
	ErrSumExceedsOne = errors.New("logprob: probabilities sum to more than one")

	// ErrNotFinite is returned by Softmax when a score is NaN or +Inf.
	// Scores of -Inf are allowed and yield probability zero.
	ErrNotFinite = errors.New("logprob: score is NaN or +Inf")

	// ErrNoFiniteScore is returned by Softmax when every score is -Inf,
	// leaving no mass to normalize.
	ErrNoFiniteScore = errors.New("logprob: softmax requires at least one score above -Inf")
)
