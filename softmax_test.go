package logprob_test

import (
	"math"
	"testing"

	"github.com/MichaelGoodale/logprob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSoftmax_Uniform verifies that equal scores normalize to equal
// probabilities summing to one.
func TestSoftmax_Uniform(t *testing.T) {
	out, err := logprob.Softmax([]float64{1, 1, 1})
	require.NoError(t, err, "finite scores must be accepted")
	require.Len(t, out, 3, "softmax preserves length")

	var total float64
	for i, v := range out {
		assert.InDelta(t, math.Log(1.0/3.0), v.Float(), 1e-12, "out[%d] must be ln(1/3)", i)
		total += v.Prob()
	}
	assert.InDelta(t, 1.0, total, 1e-12, "softmax probabilities must sum to one")
}

// TestSoftmax_ShiftInvariance verifies that adding a constant to every
// score leaves the distribution unchanged.
func TestSoftmax_ShiftInvariance(t *testing.T) {
	base, err := logprob.Softmax([]float64{-1.5, 0.25, 3})
	require.NoError(t, err, "base scores must be accepted")
	shifted, err := logprob.Softmax([]float64{-1.5 + 100, 0.25 + 100, 3 + 100})
	require.NoError(t, err, "shifted scores must be accepted")

	for i := range base {
		assert.InDelta(t, base[i].Float(), shifted[i].Float(), 1e-12,
			"softmax must be invariant under a constant shift (index %d)", i)
	}
}

// TestSoftmax_LargeScores verifies the max-shift keeps huge scores from
// overflowing exp.
func TestSoftmax_LargeScores(t *testing.T) {
	out, err := logprob.Softmax([]float64{1000, 1000.5})
	require.NoError(t, err, "large finite scores must be accepted")

	for i, v := range out {
		assert.False(t, math.IsNaN(float64(v.Float())), "out[%d] must be finite, not NaN", i)
	}
	assert.InDelta(t, 1.0, out[0].Prob()+out[1].Prob(), 1e-12, "large-score softmax must still normalize")
	assert.True(t, out[0].Less(out[1]), "the larger score must carry the larger probability")
}

// TestSoftmax_NegInfScore verifies that a score of -Inf is allowed and maps
// to probability zero.
func TestSoftmax_NegInfScore(t *testing.T) {
	out, err := logprob.Softmax([]float64{0, math.Inf(-1)})
	require.NoError(t, err, "-Inf is a legal score")

	assert.True(t, out[0].IsZero(), "all mass must land on the finite score")
	assert.True(t, out[1].IsImpossible(), "a -Inf score must map to probability zero")
}

// TestSoftmax_Rejections covers the error taxonomy and the empty input.
func TestSoftmax_Rejections(t *testing.T) {
	_, err := logprob.Softmax([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, logprob.ErrNotFinite, "NaN scores must be rejected")

	_, err = logprob.Softmax([]float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, logprob.ErrNotFinite, "+Inf scores must be rejected")

	_, err = logprob.Softmax([]float64{math.Inf(-1), math.Inf(-1)})
	assert.ErrorIs(t, err, logprob.ErrNoFiniteScore, "all -Inf leaves nothing to normalize")

	out, err := logprob.Softmax([]float64{})
	require.NoError(t, err, "empty input is not an error")
	assert.Empty(t, out, "empty input yields an empty distribution")
}
