package steps_test

import (
	"fmt"

	"github.com/katalvlaran/derivkit/steps"
)

// ExampleGeometric demonstrates the geometric step sequence: a fixed base
// step of 1e-3 scaled by ratio 2 with exponent offset 0, largest first.
//
// Scenario:
//
//	NumSteps = 3 → exponents i = 3, 2, 1, 0 → steps 8e-3, 4e-3, 2e-3, 1e-3.
//
// With at least three steps the extrapolate package can accelerate the
// raw estimates produced at each of them.
func ExampleGeometric() {
	g := steps.Geometric{BaseStep: 1e-3, NumSteps: 3, StepRatio: 2}

	seq, err := g.Steps([]float64{1}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, h := range seq {
		fmt.Printf("%.3e\n", h[0])
	}
	// Output:
	// 8.000e-03
	// 4.000e-03
	// 2.000e-03
	// 1.000e-03
}

// ExampleMakeExact demonstrates idempotence of the exact-step normalizer:
// once a step is exactly representable relative to 1.0, normalizing again
// changes nothing.
func ExampleMakeExact() {
	h := 0.1
	once := steps.MakeExact(h)
	twice := steps.MakeExact(once)
	fmt.Println(once == twice)
	// Output:
	// true
}
