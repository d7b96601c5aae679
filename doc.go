// Package derivkit computes numerical derivatives — first derivatives,
// gradients, Jacobians and Hessians — of user-supplied functions at a
// point, combining finite-difference and complex-step stencils with
// Richardson/Shanks step extrapolation.
//
// 🚀 What is derivkit?
//
//	A self-contained numeric library that brings together:
//		• Step policy: machine-epsilon-aware base steps, exact-representable rounding
//		• Step generators: geometric and log-spaced multi-scale sequences
//		• Stencils: forward, backward, central, central2 (Hessian) and complex-step
//		• Extrapolation: Shanks-type acceleration with per-element error selection
//		• Operations: Derivative, NDerivative, Gradient, Jacobian, Hessian
//
// ✨ Why choose derivkit?
//
//   - Honest error estimates – every result can carry a per-element error
//     estimate and the extrapolation stage that produced it
//   - Near machine precision – the complex-step method sidesteps
//     subtractive cancellation entirely for analytic targets
//   - Deterministic – evaluations happen in a fixed order; identical inputs
//     give identical outputs
//   - Pure Go – float64/complex128 only, no cgo, no I/O
//
// Everything is organized under three subpackages:
//
//	steps/       — base-step policy, exact-step normalizer, step generators
//	extrapolate/ — Shanks acceleration (Dea3) and the sequence engine
//	deriv/       — stencils and the public derivative operations
//
// Quick example:
//
//	grad, _, err := deriv.Gradient(
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
//	    []float64{1, 2},
//	)
//	// grad ≈ [2, 4]
//
// See each package's doc.go and example_test.go for detailed walkthroughs.
//
//	go get github.com/katalvlaran/derivkit
package derivkit
