package extrapolate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extrapolate refines an ordered sequence of raw estimates (largest step
// first, one slice per step, all of equal length) into a Result.
//
// With at least three estimates: one symmetric Dea3 pass over sliding
// triples, then — if more than two refined rows remain — a second
// non-symmetric pass, then per-element selection of the minimum-error
// stage with median-of-ties index breaking.
//
// With one or two estimates the sequence cannot be extrapolated: the
// result is the average of the first and last estimate with an all-NaN
// error estimate and stage index 0.
//
// Implicit precondition, unenforced here: the estimates were produced
// from a geometrically related step sequence.
func Extrapolate(seq [][]float64) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrEmptySequence
	}
	n := len(seq[0])
	for _, row := range seq {
		if len(row) != n {
			return Result{}, ErrShapeMismatch
		}
	}

	if len(seq) < 3 {
		return averageFallback(seq), nil
	}

	der, errs, err := deaPass(seq, true)
	if err != nil {
		return Result{}, err
	}
	if len(der) > 2 {
		der, errs, err = deaPass(der, false)
		if err != nil {
			return Result{}, err
		}
	}

	return selectMinError(der, errs), nil
}

// averageFallback handles sequences of one or two estimates: the
// unweighted mean of the first and last row, NaN errors throughout.
func averageFallback(seq [][]float64) Result {
	n := len(seq[0])
	est := make([]float64, n)
	floats.AddTo(est, seq[0], seq[len(seq)-1])
	floats.Scale(0.5, est)

	errs := make([]float64, n)
	for i := range errs {
		errs[i] = math.NaN()
	}

	return Result{Estimate: est, ErrorEstimate: errs, Index: make([]int, n)}
}

// deaPass runs Dea3 over every sliding triple of rows. A sequence of k
// rows yields k-2 accelerated rows. The symmetric variant additionally
// drops the last estimate row and the first error row, pairing estimate
// stage i with the error of stage i+1, whenever more than one row
// remains.
func deaPass(rows [][]float64, symmetric bool) (res, errs [][]float64, err error) {
	k := len(rows)
	res = make([][]float64, 0, k-2)
	errs = make([][]float64, 0, k-2)
	for i := 0; i+2 < k; i++ {
		r, e, err := Dea3(rows[i], rows[i+1], rows[i+2])
		if err != nil {
			return nil, nil, err
		}
		res = append(res, r)
		errs = append(errs, e)
	}

	if symmetric && len(res) > 1 {
		res = res[:len(res)-1]
		errs = errs[1:]
	}

	return res, errs, nil
}

// selectMinError picks, independently for every element, the stage with
// the smallest error estimate. NaN errors are ignored; exact ties are
// broken by the median of the tied stage indices, not the first one.
func selectMinError(der, errs [][]float64) Result {
	n := len(der[0])
	out := Result{
		Estimate:      make([]float64, n),
		ErrorEstimate: make([]float64, n),
		Index:         make([]int, n),
	}

	ties := make([]int, 0, len(errs))
	for j := 0; j < n; j++ {
		minErr := math.NaN()
		for i := range errs {
			e := errs[i][j]
			if math.IsNaN(e) {
				continue
			}
			if math.IsNaN(minErr) || e < minErr {
				minErr = e
			}
		}

		sel := 0
		if !math.IsNaN(minErr) {
			ties = ties[:0]
			for i := range errs {
				if errs[i][j] == minErr {
					ties = append(ties, i)
				}
			}
			sel = ties[len(ties)/2]
		}

		out.Estimate[j] = der[sel][j]
		out.ErrorEstimate[j] = errs[sel][j]
		out.Index[j] = sel
	}

	return out
}
