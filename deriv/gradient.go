package deriv

import "github.com/katalvlaran/derivkit/extrapolate"

// Gradient computes the gradient of the scalar field f at x: one partial
// derivative per coordinate, perturbing each axis independently with an
// identity-scaled increment.
//
// Central needs 2n evaluations of f per step; Forward and Backward need
// n+1 (they share a single f(x)); Complex needs n complex evaluations
// and WithComplex.
func Gradient(f Func, x []float64, opts ...Option) ([]float64, *Info, error) {
	o := buildOptions(opts)

	var fv VectorFunc
	if f != nil {
		fv = func(x []float64) []float64 { return []float64{f(x)} }
	}
	var fcv ComplexVectorFunc
	if o.Complex != nil {
		fc := o.Complex
		fcv = func(x []complex128) []complex128 { return []complex128{fc(x)} }
	}

	_, res, err := jacobianRun(fv, fcv, x, o)
	if err != nil {
		return nil, nil, err
	}

	return res.Estimate, infoFrom(o, res), nil
}

// Jacobian computes the Jacobian of the vector field f at x. The result
// has one row per output element of f and one column per coordinate of
// x: J[j][i] = ∂f_j/∂x_i. The length of f's output must not vary with x.
//
// For a zero-residual least-squares target the Jacobian at the true
// parameters is numerically zero; see the package tests.
func Jacobian(f VectorFunc, x []float64, opts ...Option) ([][]float64, *Info, error) {
	o := buildOptions(opts)

	m, res, err := jacobianRun(f, o.ComplexVector, x, o)
	if err != nil {
		return nil, nil, err
	}

	n := len(x)
	jac := make([][]float64, m)
	for j := 0; j < m; j++ {
		jac[j] = res.Estimate[j*n : (j+1)*n]
	}

	return jac, infoFrom(o, res), nil
}

// jacobianRun drives the per-axis machinery shared by Gradient and
// Jacobian: resolve the stencil, run the step sequence, extrapolate.
// Flat estimates are laid out row-major with out[j*n+i] = ∂f_j/∂x_i, the
// transpose of the per-axis evaluation order, so that reshaping yields
// rows per output element. Returns the discovered output length m.
func jacobianRun(f VectorFunc, fc ComplexVectorFunc, x []float64, o Options) (int, extrapolate.Result, error) {
	if len(x) == 0 {
		return 0, extrapolate.Result{}, ErrEmptyPoint
	}
	n := len(x)
	m := 0

	var stencil func(h []float64) []float64
	switch o.Method {
	case Central:
		if f == nil {
			return 0, extrapolate.Result{}, ErrNilFunc
		}
		xp := make([]float64, n)
		stencil = func(h []float64) []float64 {
			var out []float64
			for i := 0; i < n; i++ {
				copy(xp, x)
				xp[i] = x[i] + h[i]
				fp := clone(f(xp))
				xp[i] = x[i] - h[i]
				fm := f(xp)
				if out == nil {
					m = len(fp)
					out = make([]float64, m*n)
				}
				for j := range fp {
					out[j*n+i] = (fp[j] - fm[j]) / (2 * h[i])
				}
			}

			return out
		}
	case Forward:
		if f == nil {
			return 0, extrapolate.Result{}, ErrNilFunc
		}
		stencil = oneSidedStencil(f, x, &m, +1)
	case Backward:
		if f == nil {
			return 0, extrapolate.Result{}, ErrNilFunc
		}
		stencil = oneSidedStencil(f, x, &m, -1)
	case Complex:
		if fc == nil {
			return 0, extrapolate.Result{}, ErrComplexFuncRequired
		}
		zp := make([]complex128, n)
		stencil = func(h []float64) []float64 {
			for j, xj := range x {
				zp[j] = complex(xj, 0)
			}
			var out []float64
			for i := 0; i < n; i++ {
				zp[i] = complex(x[i], h[i])
				fp := fc(zp)
				zp[i] = complex(x[i], 0)
				if out == nil {
					m = len(fp)
					out = make([]float64, m*n)
				}
				for j := range fp {
					out[j*n+i] = imag(fp[j]) / h[i]
				}
			}

			return out
		}
	case Central2:
		return 0, extrapolate.Result{}, ErrUnsupportedMethod
	default:
		return 0, extrapolate.Result{}, ErrUnknownMethod
	}

	scale := o.Scale
	if scale == 0 {
		scale = defaultScale(o.Method, 1)
	}

	res, err := runSteps(o.Steps, x, scale, stencil)
	if err != nil {
		return 0, extrapolate.Result{}, err
	}

	return m, res, nil
}

// oneSidedStencil builds the forward (sign +1) or backward (sign -1)
// per-axis stencil. Both sides share a single f(x) per step.
func oneSidedStencil(f VectorFunc, x []float64, m *int, sign float64) func(h []float64) []float64 {
	n := len(x)
	xp := make([]float64, n)

	return func(h []float64) []float64 {
		f0 := clone(f(x))
		var out []float64
		for i := 0; i < n; i++ {
			copy(xp, x)
			xp[i] = x[i] + sign*h[i]
			fi := f(xp)
			if out == nil {
				*m = len(f0)
				out = make([]float64, *m*n)
			}
			for j := range fi {
				out[j*n+i] = sign * (fi[j] - f0[j]) / h[i]
			}
		}

		return out
	}
}

// clone copies a target function's return value before the next
// evaluation, in case the target reuses its output buffer.
func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
