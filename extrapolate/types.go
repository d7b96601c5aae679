// Package extrapolate defines the result type and errors of the
// step-sequence acceleration engine.
package extrapolate

import "errors"

// Sentinel errors returned by the extrapolation engine.
var (
	// ErrEmptySequence indicates that no raw estimates were supplied,
	// typically because every generated step was degenerate.
	ErrEmptySequence = errors.New("extrapolate: estimate sequence is empty")

	// ErrShapeMismatch indicates that the raw estimates do not all have
	// the same number of elements.
	ErrShapeMismatch = errors.New("extrapolate: estimates must all have the same length")
)

// Result is the outcome of extrapolating one estimate sequence.
//
// All three slices have the length of one raw estimate. ErrorEstimate is
// a heuristic discrepancy-based error, NaN where extrapolation was
// skipped. Index records, per element, which extrapolation stage (row of
// the final refined sequence) produced the selected value — useful for
// diagnosing which step size won.
type Result struct {
	Estimate      []float64
	ErrorEstimate []float64
	Index         []int
}
