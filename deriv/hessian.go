package deriv

import "github.com/katalvlaran/derivkit/extrapolate"

// Hessian computes the matrix of second partial derivatives of the
// scalar field f at x. Only the upper triangle is evaluated; the lower
// triangle is mirrored, so H[i][j] == H[j][i] holds exactly by
// construction.
//
// Stencils per method, with e_i the i-th unit vector scaled by h[i]:
//
//   - Forward:  (f(x+e_i+e_j) - f(x+e_i) - f(x+e_j) + f(x)) / (h_i·h_j)
//   - Backward: the forward stencil with negated steps
//   - Central:  (f(x+e_i+e_j) - f(x+e_i-e_j) - f(x-e_i+e_j) + f(x-e_i-e_j)) / (4·h_i·h_j)
//   - Central2: (f(x+e_i+e_j) - f(x+e_i) - f(x+e_j) + 2f(x)
//     + f(x-e_i-e_j) - f(x-e_i) - f(x-e_j)) / (2·h_i·h_j),
//     with f(x) and the on-axis values cached once per step
//   - Complex:  Im(f(x+i·e_i+e_j) - f(x+i·e_i-e_j)) / (2·h_i·h_j),
//     requiring WithComplex and an analytic target
//
// The default scale is 8 for central/central2, 6 for complex and 4
// otherwise; Hessian truncation error decays slower than the gradient's,
// so the base steps are larger.
func Hessian(f Func, x []float64, opts ...Option) ([][]float64, *Info, error) {
	o := buildOptions(opts)

	res, err := hessianRun(f, x, o)
	if err != nil {
		return nil, nil, err
	}

	n := len(x)
	hess := make([][]float64, n)
	for i := 0; i < n; i++ {
		hess[i] = res.Estimate[i*n : (i+1)*n]
	}

	return hess, infoFrom(o, res), nil
}

func hessianRun(f Func, x []float64, o Options) (extrapolate.Result, error) {
	if len(x) == 0 {
		return extrapolate.Result{}, ErrEmptyPoint
	}

	var stencil func(h []float64) []float64
	switch o.Method {
	case Forward:
		if f == nil {
			return extrapolate.Result{}, ErrNilFunc
		}
		stencil = func(h []float64) []float64 { return hessForward(f, x, h) }
	case Backward:
		if f == nil {
			return extrapolate.Result{}, ErrNilFunc
		}
		// Backward is the forward stencil evaluated with negated steps.
		stencil = func(h []float64) []float64 {
			neg := make([]float64, len(h))
			for i, v := range h {
				neg[i] = -v
			}

			return hessForward(f, x, neg)
		}
	case Central:
		if f == nil {
			return extrapolate.Result{}, ErrNilFunc
		}
		stencil = func(h []float64) []float64 { return hessCentral(f, x, h) }
	case Central2:
		if f == nil {
			return extrapolate.Result{}, ErrNilFunc
		}
		stencil = func(h []float64) []float64 { return hessCentral2(f, x, h) }
	case Complex:
		fc := o.Complex
		if fc == nil {
			return extrapolate.Result{}, ErrComplexFuncRequired
		}
		stencil = func(h []float64) []float64 { return hessComplex(fc, x, h) }
	default:
		return extrapolate.Result{}, ErrUnknownMethod
	}

	scale := o.Scale
	if scale == 0 {
		scale = defaultHessianScale(o.Method)
	}

	return runSteps(o.Steps, x, scale, stencil)
}

// hessForward implements the forward stencil with a cached f(x) and
// cached on-axis values g[i] = f(x+e_i).
func hessForward(f Func, x, h []float64) []float64 {
	n := len(x)
	xp := make([]float64, n)

	f0 := f(x)
	g := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(xp, x)
		xp[i] = x[i] + h[i]
		g[i] = f(xp)
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			copy(xp, x)
			xp[i] += h[i]
			xp[j] += h[j]
			v := (f(xp) - g[i] - g[j] + f0) / (h[i] * h[j])
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}

// hessCentral implements the four-evaluation central stencil.
func hessCentral(f Func, x, h []float64) []float64 {
	n := len(x)
	xp := make([]float64, n)

	eval := func(si, i int, sj, j int) float64 {
		copy(xp, x)
		xp[i] += float64(si) * h[i]
		xp[j] += float64(sj) * h[j]

		return f(xp)
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := (eval(+1, i, +1, j) - eval(+1, i, -1, j) -
				eval(-1, i, +1, j) + eval(-1, i, -1, j)) /
				(4 * h[i] * h[j])
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}

// hessCentral2 implements the symmetric two-sided stencil with cached
// f(x), f(x+e_i) and f(x-e_i), avoiding O(n²) redundant on-axis
// evaluations.
func hessCentral2(f Func, x, h []float64) []float64 {
	n := len(x)
	xp := make([]float64, n)

	f0 := f(x)
	g := make([]float64, n)
	gg := make([]float64, n)
	for i := 0; i < n; i++ {
		copy(xp, x)
		xp[i] = x[i] + h[i]
		g[i] = f(xp)
		xp[i] = x[i] - h[i]
		gg[i] = f(xp)
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			copy(xp, x)
			xp[i] += h[i]
			xp[j] += h[j]
			fpp := f(xp)

			copy(xp, x)
			xp[i] -= h[i]
			xp[j] -= h[j]
			fmm := f(xp)

			v := (fpp - g[i] - g[j] + f0 + fmm - gg[i] - gg[j] + f0) /
				(2 * h[i] * h[j])
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}

// hessComplex implements the mixed complex-step/central stencil: an
// imaginary perturbation along axis i and a real one along axis j.
func hessComplex(fc ComplexFunc, x, h []float64) []float64 {
	n := len(x)
	zp := make([]complex128, n)
	reset := func() {
		for k, xk := range x {
			zp[k] = complex(xk, 0)
		}
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			reset()
			zp[i] += complex(0, h[i])
			zp[j] += complex(h[j], 0)
			fp := fc(zp)

			reset()
			zp[i] += complex(0, h[i])
			zp[j] -= complex(h[j], 0)
			fm := fc(zp)

			v := imag(fp-fm) / (2 * h[i] * h[j])
			out[i*n+j] = v
			out[j*n+i] = v
		}
	}

	return out
}
