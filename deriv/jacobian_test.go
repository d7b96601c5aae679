package deriv_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/derivkit/deriv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJacobian_Shape verifies the rows-per-output, columns-per-coordinate
// layout on f(x) = (x0·x1, x0+x1).
func TestJacobian_Shape(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0] * x[1], x[0] + x[1]}
	}

	jac, _, err := deriv.Jacobian(f, []float64{3, 5})
	require.NoError(t, err)
	require.Len(t, jac, 2, "one row per output element")
	require.Len(t, jac[0], 2, "one column per coordinate")

	assert.InDelta(t, 5.0, jac[0][0], 1e-6) // ∂(x0·x1)/∂x0
	assert.InDelta(t, 3.0, jac[0][1], 1e-6) // ∂(x0·x1)/∂x1
	assert.InDelta(t, 1.0, jac[1][0], 1e-6)
	assert.InDelta(t, 1.0, jac[1][1], 1e-6)
}

// TestJacobian_ZeroResidual reproduces the nonlinear-least-squares
// property: the Jacobian of the squared residuals
// f_k(c) = (c0 + c1·exp(c2·t_k) - y_k)² evaluated at the generating
// parameters of a noise-free dataset is numerically zero.
func TestJacobian_ZeroResidual(t *testing.T) {
	ts := make([]float64, 10)
	ys := make([]float64, 10)
	for k := range ts {
		ts[k] = 0.1 * float64(k)
		ys[k] = 1 + 2*math.Exp(0.75*ts[k])
	}
	f := func(c []float64) []float64 {
		out := make([]float64, len(ts))
		for k, tk := range ts {
			r := c[0] + c[1]*math.Exp(c[2]*tk) - ys[k]
			out[k] = r * r
		}

		return out
	}

	jac, _, err := deriv.Jacobian(f, []float64{1, 2, 0.75})
	require.NoError(t, err)
	require.Len(t, jac, 10)
	for k, row := range jac {
		for i, v := range row {
			assert.Less(t, math.Abs(v), 1e-6, "J[%d][%d] at the true parameters", k, i)
		}
	}
}

// TestJacobian_ComplexStep verifies the complex-step Jacobian against an
// analytic vector target.
func TestJacobian_ComplexStep(t *testing.T) {
	fc := func(z []complex128) []complex128 {
		return []complex128{cmplx.Sin(z[0]) * z[1], z[0] + cmplx.Exp(z[1])}
	}
	x := []float64{0.3, 0.9}

	jac, _, err := deriv.Jacobian(nil, x,
		deriv.WithMethod(deriv.Complex),
		deriv.WithComplexVector(fc),
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.9*math.Cos(0.3), jac[0][0], 1e-12)
	assert.InDelta(t, math.Sin(0.3), jac[0][1], 1e-12)
	assert.InDelta(t, 1.0, jac[1][0], 1e-12)
	assert.InDelta(t, math.Exp(0.9), jac[1][1], 1e-12)
}

// TestJacobian_ReusedOutputBuffer verifies correctness when the target
// reuses one output slice across evaluations.
func TestJacobian_ReusedOutputBuffer(t *testing.T) {
	buf := make([]float64, 2)
	f := func(x []float64) []float64 {
		buf[0] = x[0] * x[0]
		buf[1] = x[1]

		return buf
	}

	jac, _, err := deriv.Jacobian(f, []float64{2, 7})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, jac[0][0], 1e-6)
	assert.InDelta(t, 0.0, jac[0][1], 1e-6)
	assert.InDelta(t, 0.0, jac[1][0], 1e-6)
	assert.InDelta(t, 1.0, jac[1][1], 1e-6)
}

// TestJacobian_ConfigurationErrors checks fail-fast validation.
func TestJacobian_ConfigurationErrors(t *testing.T) {
	f := func(x []float64) []float64 { return x }

	_, _, err := deriv.Jacobian(nil, []float64{1})
	assert.ErrorIs(t, err, deriv.ErrNilFunc)

	_, _, err = deriv.Jacobian(f, nil)
	assert.ErrorIs(t, err, deriv.ErrEmptyPoint)

	_, _, err = deriv.Jacobian(f, []float64{1}, deriv.WithMethod(deriv.Complex))
	assert.ErrorIs(t, err, deriv.ErrComplexFuncRequired)
}
