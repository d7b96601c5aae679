package deriv

import "math"

// Derivative computes the first derivative of f at x.
//
// The step sequence, method and diagnostics are configured through the
// functional options; with no options a single policy step and the
// central stencil are used. The returned *Info is non-nil only under
// WithFullOutput.
//
// The Complex method requires WithComplex1D and an analytic target; it
// then reaches near machine precision.
func Derivative(f Func1D, x float64, opts ...Option) (float64, *Info, error) {
	o := buildOptions(opts)

	stencil, err := scalarStencil(f, o)
	if err != nil {
		return 0, nil, err
	}

	scale := o.Scale
	if scale == 0 {
		scale = defaultScale(o.Method, 1)
	}

	res, err := runSteps(o.Steps, []float64{x}, scale, func(h []float64) []float64 {
		return []float64{stencil(x, h[0])}
	})
	if err != nil {
		return 0, nil, err
	}

	return res.Estimate[0], infoFrom(o, res), nil
}

// DerivativeEach computes the first derivative of f independently at
// every element of xs, sharing one step sequence derived from the whole
// point. This mirrors applying Derivative elementwise but evaluates the
// step policy once, so coordinates of different magnitude get matching
// per-coordinate steps.
func DerivativeEach(f Func1D, xs []float64, opts ...Option) ([]float64, *Info, error) {
	if len(xs) == 0 {
		return nil, nil, ErrEmptyPoint
	}
	o := buildOptions(opts)

	stencil, err := scalarStencil(f, o)
	if err != nil {
		return nil, nil, err
	}

	scale := o.Scale
	if scale == 0 {
		scale = defaultScale(o.Method, 1)
	}

	res, err := runSteps(o.Steps, xs, scale, func(h []float64) []float64 {
		out := make([]float64, len(xs))
		for i, xi := range xs {
			out[i] = stencil(xi, h[i])
		}

		return out
	})
	if err != nil {
		return nil, nil, err
	}

	return res.Estimate, infoFrom(o, res), nil
}

// NDerivative computes the n-th derivative of f at x with an
// Order-point central weighted stencil (set the width via WithOrder;
// default 3). Order must be odd and at least n+1. Only the Central
// method applies at higher orders.
func NDerivative(f Func1D, x float64, n int, opts ...Option) (float64, *Info, error) {
	if f == nil {
		return 0, nil, ErrNilFunc
	}
	o := buildOptions(opts)
	if o.Method != Central {
		return 0, nil, ErrUnsupportedMethod
	}

	w, err := centralWeights(n, o.Order)
	if err != nil {
		return 0, nil, err
	}
	half := o.Order >> 1

	scale := o.Scale
	if scale == 0 {
		scale = defaultScale(o.Method, n)
	}

	res, err := runSteps(o.Steps, []float64{x}, scale, func(h []float64) []float64 {
		dx := h[0]
		val := 0.0
		for k, wk := range w {
			val += wk * f(x+float64(k-half)*dx)
		}

		return []float64{val / math.Pow(dx, float64(n))}
	})
	if err != nil {
		return 0, nil, err
	}

	return res.Estimate[0], infoFrom(o, res), nil
}

// scalarStencil resolves the method tag to the scalar first-derivative
// stencil. Dispatch is a static switch over the closed Method set.
func scalarStencil(f Func1D, o Options) (func(x, h float64) float64, error) {
	if o.Method != Complex && f == nil {
		return nil, ErrNilFunc
	}

	switch o.Method {
	case Forward:
		return func(x, h float64) float64 {
			return (f(x+h) - f(x)) / h
		}, nil
	case Backward:
		return func(x, h float64) float64 {
			return (f(x) - f(x-h)) / h
		}, nil
	case Central:
		return func(x, h float64) float64 {
			return (f(x+h) - f(x-h)) / (2 * h)
		}, nil
	case Complex:
		fc := o.Complex1D
		if fc == nil {
			return nil, ErrComplexFuncRequired
		}

		return func(x, h float64) float64 {
			return imag(fc(complex(x, h))) / h
		}, nil
	case Central2:
		return nil, ErrUnsupportedMethod
	default:
		return nil, ErrUnknownMethod
	}
}
