// Package deriv computes numerical derivatives of user-supplied
// functions: first derivatives of scalar functions (Derivative,
// NDerivative), gradients of scalar fields (Gradient), Jacobians of
// vector fields (Jacobian) and Hessians (Hessian).
//
// Every operation follows the same pipeline: a step source from the
// steps package produces an ordered sequence of candidate step sizes,
// the selected finite-difference or complex-step stencil turns each step
// into a raw estimate, and the extrapolate package merges the sequence
// into a final estimate with a per-element error estimate.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/derivkit/deriv"
//	    "github.com/katalvlaran/derivkit/steps"
//	)
//
//	rosen := func(x []float64) float64 {
//	    return (1-x[0])*(1-x[0]) + 105*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
//	}
//	hess, info, err := deriv.Hessian(rosen, []float64{1, 1},
//	    deriv.WithSteps(steps.DefaultGeometric()),
//	    deriv.WithFullOutput(),
//	)
//	// hess ≈ [[842, -420], [-420, 210]], info carries error estimates
//
// Method selection:
//
//   - Central is the default: second-order accurate, two evaluations per
//     axis, no extra requirements on the target.
//   - Forward/Backward suit targets that cannot be evaluated on one side
//     of the point; expect lower accuracy.
//   - Complex reaches near machine precision for analytic targets, at
//     the price of providing the target in complex form (WithComplex and
//     friends).
//   - Central2 is a Hessian-only central variant that caches the on-axis
//     evaluations f(x), f(x±h·e_i), saving O(n²) redundant calls.
//
// All evaluations happen sequentially in a fixed order, so identical
// inputs produce identical outputs. A panic inside the target function
// propagates to the caller unmodified; the operations retry nothing.
package deriv
