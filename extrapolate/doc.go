// Package extrapolate turns an ordered sequence of raw derivative
// estimates — one per step size — into a single refined estimate with a
// per-element error estimate.
//
// The estimates are assumed to follow an asymptotic error expansion in
// the step size, with a constant ratio between consecutive steps
// (largest step first). Under that model a Shanks-type transform of
// three consecutive members (Dea3, an epsilon-algorithm variant) cancels
// the leading truncation term and yields both a better estimate and a
// heuristic error derived from the discrepancy between stages.
//
// Extrapolate applies one symmetric Dea3 pass over sliding triples and,
// when more than two refined rows remain, a second non-symmetric pass.
// Per output element it then selects the stage with the smallest error
// estimate, breaking ties by the median tied index — a deliberate choice
// over "first minimum" that downstream numerical behavior depends on.
//
// Sequences shorter than three estimates cannot be extrapolated; they
// degrade to the average of the first and last estimate with an all-NaN
// error, signaling low confidence without failing.
//
// The error estimates are heuristics, not guaranteed bounds.
package extrapolate
