package deriv_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/derivkit/deriv"
	"github.com/katalvlaran/derivkit/steps"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDerivative
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate exp at x = 1 with the default central stencil and the
//	default single step. The exact answer is e ≈ 2.718282.
//
// Use case:
//
//	Quick derivative of a smooth scalar function with no tuning.
func ExampleDerivative() {
	d, _, err := deriv.Derivative(math.Exp, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", d)
	// Output:
	// 2.718282
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNDerivative
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Second derivative of f(x) = x³ + x² at x = 1 via the three-point
//	central stencil. Exact answer: 6x + 2 = 8.
func ExampleNDerivative() {
	f := func(x float64) float64 { return x*x*x + x*x }

	d, _, err := deriv.NDerivative(f, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", d)
	// Output:
	// 8.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGradient
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Gradient of the squared norm f(x) = Σ xᵢ² at [1, 2, 3].
//	The exact gradient is 2x = [2, 4, 6].
func ExampleGradient() {
	f := func(x []float64) float64 {
		var s float64
		for _, v := range x {
			s += v * v
		}

		return s
	}

	g, _, err := deriv.Gradient(f, []float64{1, 2, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", g[0], g[1], g[2])
	// Output:
	// 2.0000 4.0000 6.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHessian
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Hessian of the Rosenbrock variant (1-x₀)² + 105·(x₁-x₀²)² at its
//	minimizer [1, 1]. A geometric step sequence feeds the extrapolation,
//	which sharpens the central stencil to the exact matrix
//	[[842, -420], [-420, 210]].
func ExampleHessian() {
	f := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]

		return a*a + 105*b*b
	}

	hess, _, err := deriv.Hessian(f, []float64{1, 1},
		deriv.WithSteps(steps.Geometric{NumSteps: 8, StepRatio: 2, Offset: -4, UseExactSteps: true}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f %.0f\n%.0f %.0f\n", hess[0][0], hess[0][1], hess[1][0], hess[1][1])
	// Output:
	// 842 -420
	// -420 210
}
