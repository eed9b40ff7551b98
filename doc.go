// Package logprob stores probabilities as their natural logarithms and
// keeps them valid by construction.
//
// 🚀 Why log space?
//
//	Multiplying many probabilities underflows float precision fast; adding
//	their logarithms does not. The price is that *summing* probabilities
//	becomes log(Σ exp(xᵢ)), which naively overflows — so this package pairs
//	a validated value type with a numerically stable LogSumExp.
//
// ✨ What you get:
//   - LogProb[T] — a float wrapper that only ever holds -Inf, a finite
//     negative, or exactly zero. NaN and positives are rejected at New,
//     which is what makes total ordering and exact equality possible.
//   - Add (probability product), Pow (integer power), Prob (back to
//     linear space) — all total, no error paths past construction.
//   - LogAddExp — stable pairwise probability sum, in strict, clamped
//     and raw-float flavors.
//   - LogSumExp — stable aggregation over slices (two passes) or one-shot
//     sequences via Accumulator / LogSumExpSeq (single pass, online
//     rescaling).
//   - Softmax — normalize raw scores into log-probabilities.
//   - JSON / YAML / text round-trips that re-validate on decode.
//
// ⚙️ Usage:
//
//	import "github.com/MichaelGoodale/logprob"
//
//	half, err := logprob.FromProb(0.5)
//	if err != nil {
//	  // handle ErrNaN / ErrPositive
//	}
//	both := half.Add(half)                 // probability 0.25
//	total, err := logprob.LogSumExp([]logprob.LogProb[float64]{half, both})
//
// Everything is a pure function over immutable values: no state, no
// goroutines, no locks. Values are freely shareable across goroutines;
// an Accumulator is the one mutable piece and belongs to a single caller.
//
// See examples in example_test.go.
package logprob
