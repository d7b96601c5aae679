package deriv

import (
	"github.com/katalvlaran/derivkit/extrapolate"
	"github.com/katalvlaran/derivkit/steps"
)

// runSteps is the evaluator every operation shares: regenerate the step
// sequence for this call's point and scale, collect one flat raw
// estimate per step in generated order (largest step first), and feed
// the sequence to the extrapolation engine.
func runSteps(gen steps.Generator, x []float64, scale float64, stencil func(h []float64) []float64) (extrapolate.Result, error) {
	if gen == nil {
		gen = steps.Fixed{}
	}
	hs, err := gen.Steps(x, scale)
	if err != nil {
		return extrapolate.Result{}, err
	}

	seq := make([][]float64, 0, len(hs))
	for _, h := range hs {
		seq = append(seq, stencil(h))
	}

	return extrapolate.Extrapolate(seq)
}

// infoFrom packages the extrapolation diagnostics when FullOutput is
// requested, nil otherwise.
func infoFrom(o Options, res extrapolate.Result) *Info {
	if !o.FullOutput {
		return nil
	}

	return &Info{ErrorEstimate: res.ErrorEstimate, Index: res.Index}
}
