// Package steps produces the step-size sequences that drive the
// finite-difference stencils in deriv.
//
// A derivative estimate computed with a single step h trades truncation
// error (growing like h^scale) against round-off error (growing like
// eps/h). Probing the target function at several geometrically related
// steps and extrapolating is how derivkit cancels the truncation term;
// this package owns the "several steps" half of that bargain.
//
// Three step sources implement Generator:
//
//   - Geometric — steps = base · StepRatio^(i+Offset) for i = NumSteps..0,
//     largest first. The workhorse for extrapolation.
//   - LogSpaced — NumSteps log-spaced steps between a derived minimum and
//     maximum, largest first.
//   - Fixed — wraps a scalar or per-coordinate step (or nothing at all, in
//     which case the base-step policy decides) into a single-step sequence.
//
// The base-step policy computes, per coordinate,
//
//	h = (10·eps)^(1/scale) · max(log1p(|x|), 0.1)
//
// where eps is the double-precision machine epsilon and scale is the
// stencil's order of accuracy. The max(·, 0.1) floor keeps steps from
// vanishing near x = 0.
//
// Steps are rounded to exactly representable values via MakeExact, which
// removes noise from the step arithmetic itself. Generators never yield a
// step with a zero-magnitude coordinate; such steps are silently dropped,
// which may shrink a sequence below the three elements extrapolation
// needs (the extrapolate package degrades gracefully in that case).
//
// Each Steps call materializes a fresh sequence from the generator's
// configuration and the supplied point and scale; generators hold no
// state between calls.
package steps
