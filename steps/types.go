// Package steps defines step-sequence generators and their configuration
// for the derivkit finite-difference engine.
package steps

import "errors"

// Sentinel errors returned by step generators.
var (
	// ErrShapeMismatch indicates that a per-coordinate base-step slice does
	// not have the same length as the evaluation point.
	ErrShapeMismatch = errors.New("steps: base step length must match evaluation point length")

	// ErrBadNumSteps indicates a NumSteps value outside the generator's
	// accepted range (Geometric: >= 0, LogSpaced: >= 1).
	ErrBadNumSteps = errors.New("steps: NumSteps out of range")

	// ErrBadStepRatio indicates a StepRatio <= 1; consecutive steps must
	// strictly shrink for the sequence to probe multiple scales.
	ErrBadStepRatio = errors.New("steps: StepRatio must be greater than 1")

	// ErrBadScale indicates a non-positive scale exponent.
	ErrBadScale = errors.New("steps: scale must be positive")
)

// Generator produces an ordered, finite sequence of step slices for one
// derivative evaluation. Each returned step has the same length as x and
// no zero-magnitude element; the sequence is ordered largest step first.
//
// Steps must be a pure function of the generator's configuration and the
// supplied x and scale, so that a sequence can be regenerated for every
// call with a possibly different point.
type Generator interface {
	Steps(x []float64, scale float64) ([][]float64, error)
}

// Geometric generates steps = base · StepRatio^(i+Offset) for
// i = NumSteps down to 0, so the largest step comes first and the
// sequence has at most NumSteps+1 elements.
//
// BaseStep / BaseSteps override the base-step policy with a scalar or a
// per-coordinate slice; when both are zero-valued the policy formula
// (10·eps)^(1/scale)·max(log1p(|x|), 0.1) applies. A non-nil BaseSteps
// must match the evaluation point's length (ErrShapeMismatch otherwise).
//
// UseExactSteps rounds the base to an exactly representable value before
// scaling (see MakeExact).
type Geometric struct {
	BaseStep      float64   // scalar base-step override; 0 means auto
	BaseSteps     []float64 // per-coordinate override; nil means auto
	NumSteps      int       // i runs NumSteps..0; must be >= 0
	StepRatio     float64   // ratio between consecutive steps; must be > 1
	Offset        int       // exponent offset
	UseExactSteps bool      // round the base step via MakeExact
}

// DefaultGeometric returns the Geometric generator with the library's
// stock parameters: 11 steps (NumSteps=10), ratio 4, offset -1, exact
// steps on.
func DefaultGeometric() Geometric {
	return Geometric{
		NumSteps:      10,
		StepRatio:     4,
		Offset:        -1,
		UseExactSteps: true,
	}
}

// LogSpaced generates NumSteps steps whose multipliers are log-spaced
// between a minimum and maximum step, largest first.
//
// StepMin / StepMins override the base-step policy exactly like
// Geometric's BaseStep / BaseSteps. When StepMin is zero the span's lower
// end defaults to (10·eps)^(1/scale); when StepMax is zero the upper end
// defaults to (10·eps)^(1/(scale+1.5)). Every generated step is rounded
// via MakeExact.
type LogSpaced struct {
	StepMin  float64   // scalar minimum-step override; 0 means auto
	StepMins []float64 // per-coordinate override; nil means auto
	NumSteps int       // number of steps; must be >= 1
	StepMax  float64   // maximum step; 0 means auto
}

// DefaultLogSpaced returns the LogSpaced generator with the library's
// stock parameters: 10 steps between the derived min and max.
func DefaultLogSpaced() LogSpaced {
	return LogSpaced{NumSteps: 10}
}

// Fixed is the single-step source: it resolves its Value/Values override
// through the base-step policy once and yields a one-element sequence.
// The zero value yields the policy's default base step, which is what
// deriv uses when the caller configures no step source.
//
// With only one step no extrapolation can happen; the raw stencil
// estimate is returned with an undefined (NaN) error estimate.
type Fixed struct {
	Value  float64   // scalar step; 0 means auto
	Values []float64 // per-coordinate step; nil means auto
}
