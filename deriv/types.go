// Package deriv defines the methods, target-function types, options and
// errors of the public differentiation operations.
package deriv

import (
	"errors"

	"github.com/katalvlaran/derivkit/steps"
)

// Sentinel errors returned by the differentiation operations.
var (
	// ErrNilFunc indicates that no target function was supplied.
	ErrNilFunc = errors.New("deriv: target function is nil")

	// ErrEmptyPoint indicates a zero-length evaluation point.
	ErrEmptyPoint = errors.New("deriv: evaluation point is empty")

	// ErrUnknownMethod indicates a Method value outside the defined set.
	ErrUnknownMethod = errors.New("deriv: unknown method")

	// ErrUnsupportedMethod indicates a defined Method that the requested
	// operation does not implement (Central2 outside Hessian, anything but
	// Central for NDerivative).
	ErrUnsupportedMethod = errors.New("deriv: method not supported by this operation")

	// ErrComplexFuncRequired indicates that Complex was selected without
	// supplying the complex-capable form of the target function.
	ErrComplexFuncRequired = errors.New("deriv: complex-step method requires a complex target function")

	// ErrEvenOrder indicates an even stencil width; central weights need an
	// odd number of points.
	ErrEvenOrder = errors.New("deriv: stencil order (number of points) must be odd")

	// ErrOrderTooSmall indicates a stencil width below derivative order + 1.
	ErrOrderTooSmall = errors.New("deriv: stencil order must be at least the derivative order + 1")

	// ErrBadDerivativeOrder indicates a derivative order below 1.
	ErrBadDerivativeOrder = errors.New("deriv: derivative order must be at least 1")

	// ErrBadScale indicates a non-positive scale override.
	ErrBadScale = errors.New("deriv: scale must be positive")
)

// Method selects the stencil family used for one differentiation call.
// The set is closed; dispatch happens through a static switch.
type Method int

const (
	// Forward difference: (f(x+h) - f(x)) / h.
	Forward Method = iota

	// Backward difference: (f(x) - f(x-h)) / h.
	Backward

	// Central difference: (f(x+h) - f(x-h)) / (2h).
	Central

	// Central2 is the alternative second-order Hessian stencil that reuses
	// cached on-axis evaluations. Hessian only.
	Central2

	// Complex is the complex-step derivative: Im f(x+ih) / h. It avoids
	// subtractive cancellation entirely, so the step can be tiny and the
	// result near machine precision — but the target must be analytic and
	// supplied in complex form (WithComplex / WithComplexVector /
	// WithComplex1D).
	Complex
)

// String returns the method's lowercase tag.
func (m Method) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Central:
		return "central"
	case Central2:
		return "central2"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Target-function types. Any extra arguments beyond the evaluation point
// are closed over by the caller; they must stay fixed across all
// evaluations within a single differentiation call.
type (
	// Func is a scalar-valued target of a vector point (Gradient, Hessian).
	Func func(x []float64) float64

	// VectorFunc is a vector-valued target of a vector point (Jacobian).
	// Per-observation outputs are flattened into the returned slice; its
	// length must not depend on x.
	VectorFunc func(x []float64) []float64

	// Func1D is a scalar target of a scalar point (Derivative, NDerivative).
	Func1D func(x float64) float64

	// ComplexFunc is the complex-capable form of Func, required by the
	// Complex method. It must be the analytic continuation of the real
	// target: non-analytic operations (abs, max, ...) break the method.
	ComplexFunc func(x []complex128) complex128

	// ComplexVectorFunc is the complex-capable form of VectorFunc.
	ComplexVectorFunc func(x []complex128) []complex128

	// ComplexFunc1D is the complex-capable form of Func1D.
	ComplexFunc1D func(z complex128) complex128
)

// Info carries the per-element diagnostics of one differentiation call,
// flattened in the same order as the returned result (row-major for
// matrix results). ErrorEstimate is heuristic, NaN where extrapolation
// was skipped; Index is the extrapolation stage that produced each
// element.
type Info struct {
	ErrorEstimate []float64
	Index         []int
}

// Options configures one differentiation call.
//
//   - Method — stencil family; Central by default (the Complex method is
//     opt-in because it needs the complex form of the target).
//   - Steps — step-sequence source; nil means a single automatic base
//     step (no extrapolation). Use steps.DefaultGeometric() to enable
//     multi-step extrapolation.
//   - Scale — truncation-order exponent used by the base-step policy;
//     0 means the per-method default.
//   - Order — stencil width for NDerivative; must be odd and at least
//     n+1. Ignored by the other operations.
//   - FullOutput — populate the returned *Info.
//   - Complex / ComplexVector / Complex1D — complex-capable targets for
//     the Complex method.
type Options struct {
	Method        Method
	Steps         steps.Generator
	Scale         float64
	Order         int
	FullOutput    bool
	Complex       ComplexFunc
	ComplexVector ComplexVectorFunc
	Complex1D     ComplexFunc1D
}

// Option is a functional option for configuring a differentiation call.
type Option func(*Options)

// WithMethod selects the stencil family.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithSteps sets the step-sequence source used to probe the target at
// multiple scales. Generators producing at least three steps activate
// extrapolation.
func WithSteps(g steps.Generator) Option {
	return func(o *Options) { o.Steps = g }
}

// WithStepValue fixes a single scalar step, bypassing the base-step
// policy. Shorthand for WithSteps(steps.Fixed{Value: h}).
func WithStepValue(h float64) Option {
	return func(o *Options) { o.Steps = steps.Fixed{Value: h} }
}

// WithStepValues fixes a single per-coordinate step. Shorthand for
// WithSteps(steps.Fixed{Values: h}).
func WithStepValues(h []float64) Option {
	return func(o *Options) { o.Steps = steps.Fixed{Values: h} }
}

// WithScale overrides the method-derived scale exponent of the base-step
// policy. Must be positive; non-positive values panic early.
func WithScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			panic(ErrBadScale.Error())
		}
		o.Scale = scale
	}
}

// WithOrder sets the stencil width (number of points) for NDerivative.
func WithOrder(order int) Option {
	return func(o *Options) { o.Order = order }
}

// WithFullOutput requests the per-element error estimate and stage index
// alongside the result.
func WithFullOutput() Option {
	return func(o *Options) { o.FullOutput = true }
}

// WithComplex supplies the complex-capable scalar target used by the
// Complex method in Gradient and Hessian.
func WithComplex(fc ComplexFunc) Option {
	return func(o *Options) { o.Complex = fc }
}

// WithComplexVector supplies the complex-capable vector target used by
// the Complex method in Jacobian.
func WithComplexVector(fc ComplexVectorFunc) Option {
	return func(o *Options) { o.ComplexVector = fc }
}

// WithComplex1D supplies the complex-capable scalar-point target used by
// the Complex method in Derivative.
func WithComplex1D(fc ComplexFunc1D) Option {
	return func(o *Options) { o.Complex1D = fc }
}

// DefaultOptions returns the stock configuration: Central method, a
// single automatic base step, method-derived scale, 3-point NDerivative
// stencil, no diagnostics.
func DefaultOptions() Options {
	return Options{
		Method: Central,
		Order:  3,
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// defaultScale is the assumed truncation order O(h^scale) for the
// first-derivative family, shifted by the derivative order: complex 1,
// central 3, forward/backward 2, each plus n-1.
func defaultScale(m Method, n int) float64 {
	var s float64
	switch m {
	case Complex:
		s = 1
	case Central:
		s = 3
	default:
		s = 2
	}

	return s + float64(n-1)
}

// defaultHessianScale is the Hessian counterpart: central and central2
// 8, complex 6, forward/backward 4.
func defaultHessianScale(m Method) float64 {
	switch m {
	case Central, Central2:
		return 8
	case Complex:
		return 6
	default:
		return 4
	}
}
