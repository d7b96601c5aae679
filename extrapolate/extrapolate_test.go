package extrapolate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/derivkit/extrapolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geometricSequence builds estimates s_i = limit + c·decay^i for
// i = 0..k-1, the error model Dea3 is designed to cancel.
func geometricSequence(limit, c, decay float64, k int) [][]float64 {
	seq := make([][]float64, k)
	term := c
	for i := range seq {
		seq[i] = []float64{limit + term}
		term *= decay
	}

	return seq
}

// TestDea3_CancelsGeometricError verifies that one Shanks transform of a
// purely geometric error sequence recovers the limit almost exactly.
func TestDea3_CancelsGeometricError(t *testing.T) {
	seq := geometricSequence(math.Pi, 0.5, 0.25, 3)

	res, abserr, err := extrapolate.Dea3(seq[0], seq[1], seq[2])
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.InDelta(t, math.Pi, res[0], 1e-12, "Shanks must cancel a pure geometric error term")
	assert.Greater(t, abserr[0], 0.0)
}

// TestDea3_ConvergedPassThrough verifies that an already-converged
// element passes through as the last member.
func TestDea3_ConvergedPassThrough(t *testing.T) {
	res, abserr, err := extrapolate.Dea3([]float64{2}, []float64{2}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res[0])
	assert.False(t, math.IsNaN(abserr[0]))
}

// TestDea3_ShapeMismatch verifies eager length checking.
func TestDea3_ShapeMismatch(t *testing.T) {
	_, _, err := extrapolate.Dea3([]float64{1}, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, extrapolate.ErrShapeMismatch)
}

// TestExtrapolate_TwoEstimatesFallback verifies the documented
// degradation: exactly two raw estimates return their average with an
// entirely NaN error estimate and stage index zero.
func TestExtrapolate_TwoEstimatesFallback(t *testing.T) {
	seq := [][]float64{{1, 10}, {3, 20}}

	res, err := extrapolate.Extrapolate(seq)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 15}, res.Estimate)
	for i, e := range res.ErrorEstimate {
		assert.True(t, math.IsNaN(e), "error estimate element %d must be NaN", i)
	}
	assert.Equal(t, []int{0, 0}, res.Index)
}

// TestExtrapolate_SingleEstimate verifies that one estimate is returned
// unchanged (average of first and last of a one-element sequence).
func TestExtrapolate_SingleEstimate(t *testing.T) {
	res, err := extrapolate.Extrapolate([][]float64{{4, -4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -4}, res.Estimate)
	assert.True(t, math.IsNaN(res.ErrorEstimate[0]))
}

// TestExtrapolate_GeometricConvergence verifies that a long geometric
// sequence extrapolates to the limit far more accurately than its best
// raw member.
func TestExtrapolate_GeometricConvergence(t *testing.T) {
	const limit = math.E
	seq := geometricSequence(limit, 1e-2, 0.25, 8)

	res, err := extrapolate.Extrapolate(seq)
	require.NoError(t, err)
	require.Len(t, res.Estimate, 1)

	rawBest := math.Abs(seq[len(seq)-1][0] - limit)
	got := math.Abs(res.Estimate[0] - limit)
	assert.Less(t, got, rawBest/100, "extrapolation must beat the best raw estimate")
	assert.Less(t, got, 1e-10)
	assert.False(t, math.IsNaN(res.ErrorEstimate[0]))
	assert.GreaterOrEqual(t, res.Index[0], 0)
}

// TestExtrapolate_ElementsIndependent verifies that selection happens per
// element: a column converging fast and a column converging slowly may
// pick different stages, and each still lands near its own limit.
func TestExtrapolate_ElementsIndependent(t *testing.T) {
	k := 8
	seq := make([][]float64, k)
	fast, slow := 1e-3, 1e-1
	for i := range seq {
		seq[i] = []float64{1 + fast, 5 + slow}
		fast *= 0.0625
		slow *= 0.5
	}

	res, err := extrapolate.Extrapolate(seq)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Estimate[0], 1e-9)
	assert.InDelta(t, 5.0, res.Estimate[1], 1e-6)
}

// TestExtrapolate_MedianOfTiedStages verifies the tie-break rule: when
// several stages report the same minimum error, the median tied stage
// index wins, not the first. An already-converged constant sequence
// makes every stage tie exactly, so eight rows reduce to three tied
// stages and the selected index must be the middle one.
func TestExtrapolate_MedianOfTiedStages(t *testing.T) {
	seq := make([][]float64, 8)
	for i := range seq {
		seq[i] = []float64{2}
	}

	res, err := extrapolate.Extrapolate(seq)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Estimate[0])
	assert.Equal(t, 1, res.Index[0], "ties must resolve to the median stage, not the first")
}

// TestExtrapolate_Errors verifies the configuration error paths.
func TestExtrapolate_Errors(t *testing.T) {
	_, err := extrapolate.Extrapolate(nil)
	assert.ErrorIs(t, err, extrapolate.ErrEmptySequence)

	_, err = extrapolate.Extrapolate([][]float64{{1}, {1, 2}, {1}})
	assert.ErrorIs(t, err, extrapolate.ErrShapeMismatch)
}
