package steps

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// machineEps is the double-precision machine epsilon (~2.22e-16),
// computed once at process start.
var machineEps = math.Nextafter(1, 2) - 1

// MakeExact rounds h to a value exactly representable after addition
// with 1.0, by computing (h + 1) - 1. Using exact steps keeps the step
// arithmetic inside the stencils free of its own round-off noise.
// Idempotent: MakeExact(MakeExact(h)) == MakeExact(h).
func MakeExact(h float64) float64 {
	return (h + 1) - 1
}

// MakeExactSlice applies MakeExact to every element of h in place and
// returns h.
func MakeExactSlice(h []float64) []float64 {
	for i, v := range h {
		h[i] = MakeExact(v)
	}

	return h
}

// defaultBase computes the policy base step for every coordinate of x:
// (10·eps)^(1/scale) · max(log1p(|x|), 0.1). The floor keeps the step
// from vanishing near x = 0.
func defaultBase(x []float64, scale float64) []float64 {
	factor := math.Pow(10*machineEps, 1/scale)
	h := make([]float64, len(x))
	for i, xi := range x {
		h[i] = factor * math.Max(math.Log1p(math.Abs(xi)), 0.1)
	}

	return h
}

// resolveBase applies the override rules shared by every generator:
// a non-nil per-coordinate slice wins (its length must match x), then a
// non-zero scalar broadcast over x's shape, then the policy default.
// The returned slice is freshly allocated and safe to mutate.
func resolveBase(x []float64, scale, scalar float64, vec []float64) ([]float64, error) {
	if scale <= 0 {
		return nil, ErrBadScale
	}
	if vec != nil {
		if len(vec) != len(x) {
			return nil, ErrShapeMismatch
		}
		out := make([]float64, len(vec))
		copy(out, vec)

		return out, nil
	}
	if scalar != 0 {
		out := make([]float64, len(x))
		for i := range out {
			out[i] = scalar
		}

		return out, nil
	}

	return defaultBase(x, scale), nil
}

// Steps materializes the geometric sequence for x and scale.
// Steps with any zero-magnitude coordinate are dropped, never yielded.
func (g Geometric) Steps(x []float64, scale float64) ([][]float64, error) {
	if g.NumSteps < 0 {
		return nil, ErrBadNumSteps
	}
	if g.StepRatio <= 1 {
		return nil, ErrBadStepRatio
	}
	delta, err := resolveBase(x, scale, g.BaseStep, g.BaseSteps)
	if err != nil {
		return nil, err
	}
	if g.UseExactSteps {
		MakeExactSlice(delta)
	}

	seq := make([][]float64, 0, g.NumSteps+1)
	for i := g.NumSteps; i >= 0; i-- {
		factor := math.Pow(g.StepRatio, float64(i+g.Offset))
		h := make([]float64, len(delta))
		degenerate := false
		for j, d := range delta {
			h[j] = d * factor
			if math.Abs(h[j]) == 0 {
				degenerate = true
			}
		}
		if degenerate {
			continue
		}
		seq = append(seq, h)
	}

	return seq, nil
}

// Steps materializes the log-spaced sequence for x and scale, largest
// step first. Steps with any zero-magnitude coordinate are dropped.
func (l LogSpaced) Steps(x []float64, scale float64) ([][]float64, error) {
	if l.NumSteps < 1 {
		return nil, ErrBadNumSteps
	}
	delta, err := resolveBase(x, scale, l.StepMin, l.StepMins)
	if err != nil {
		return nil, err
	}

	stepMin, stepMax := l.StepMin, l.StepMax
	if stepMin <= 0 {
		stepMin = math.Pow(10*machineEps, 1/scale)
	}
	if stepMax <= 0 {
		stepMax = math.Pow(10*machineEps, 1/(scale+1.5))
	}

	// Multipliers span [1, stepMax/stepMin] logarithmically; iterating
	// them in reverse puts the largest step first.
	mult := []float64{1}
	if l.NumSteps > 1 {
		mult = floats.LogSpan(make([]float64, l.NumSteps), 1, stepMax/stepMin)
	}

	seq := make([][]float64, 0, l.NumSteps)
	for i := len(mult) - 1; i >= 0; i-- {
		h := make([]float64, len(delta))
		degenerate := false
		for j, d := range delta {
			h[j] = MakeExact(d * mult[i])
			if math.Abs(h[j]) == 0 {
				degenerate = true
			}
		}
		if degenerate {
			continue
		}
		seq = append(seq, h)
	}

	return seq, nil
}

// Steps resolves the fixed step through the base-step policy and yields
// it as a one-element sequence.
func (f Fixed) Steps(x []float64, scale float64) ([][]float64, error) {
	h, err := resolveBase(x, scale, f.Value, f.Values)
	if err != nil {
		return nil, err
	}

	return [][]float64{h}, nil
}
