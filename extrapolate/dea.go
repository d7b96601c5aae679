package extrapolate

import "math"

// machineEps is the double-precision machine epsilon, computed once at
// process start.
var machineEps = math.Nextafter(1, 2) - 1

// tiny is the smallest positive normal float64, used to clamp vanishing
// differences before inversion.
const tiny = 2.2250738585072014e-308

// Dea3 applies one elementwise Shanks transform (epsilon algorithm) to
// three consecutive members e0, e1, e2 of a slowly convergent sequence.
//
// For each element it forms the differences Δ1 = e1−e0, Δ2 = e2−e1 and
// the inverse-difference combination ss = 1/Δ2 − 1/Δ1, returning
// e1 + 1/ss as the accelerated value. Elements whose differences are
// already within machine-epsilon relative tolerance, or whose
// accelerated correction would be negligible (|ss·e1| ≤ 1e-3), are
// treated as converged and pass e2 through unchanged.
//
// The accompanying error estimate is |Δ1| + |Δ2| plus either ten times
// the convergence tolerance (converged elements) or the discrepancy
// between the accelerated value and e2.
func Dea3(e0, e1, e2 []float64) (result, abserr []float64, err error) {
	n := len(e0)
	if len(e1) != n || len(e2) != n {
		return nil, nil, ErrShapeMismatch
	}

	result = make([]float64, n)
	abserr = make([]float64, n)
	for i := 0; i < n; i++ {
		v0, v1, v2 := e0[i], e1[i], e2[i]
		delta1, delta2 := v1-v0, v2-v1
		err1, err2 := math.Abs(delta1), math.Abs(delta2)
		tol1 := math.Max(math.Abs(v1), math.Abs(v0)) * machineEps
		tol2 := math.Max(math.Abs(v2), math.Abs(v1)) * machineEps

		// Clamp vanishing differences to avoid division blow-up.
		if err1 < tiny {
			delta1 = tiny
		}
		if err2 < tiny {
			delta2 = tiny
		}

		ss := 1/delta2 - 1/delta1 + tiny
		converged := (err1 <= tol1 && err2 <= tol2) || math.Abs(ss*v1) <= 1e-3

		r := v1 + 1/ss
		if converged {
			r = v2
		}
		result[i] = r

		if converged {
			abserr[i] = err1 + err2 + tol2*10
		} else {
			abserr[i] = err1 + err2 + math.Abs(r-v2)
		}
	}

	return result, abserr, nil
}
