package deriv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// centralWeights returns the weight vector of an order-point central
// stencil for the n-th derivative: the estimate is
// Σ w[k]·f(x + (k-order/2)·h) / hⁿ for equally spaced points.
//
// Weights for n ∈ {1,2} and order ∈ {3,5,7,9} are precomputed closed
// forms; every other admissible combination is derived by solving the
// Vandermonde system over the points -⌊order/2⌋..⌊order/2⌋. Accuracy
// degrades for very wide stencils.
func centralWeights(n, order int) ([]float64, error) {
	if n < 1 {
		return nil, ErrBadDerivativeOrder
	}
	if order < n+1 {
		return nil, ErrOrderTooSmall
	}
	if order%2 == 0 {
		return nil, ErrEvenOrder
	}

	switch n {
	case 1:
		switch order {
		case 3:
			return scale([]float64{-1, 0, 1}, 1.0/2), nil
		case 5:
			return scale([]float64{1, -8, 0, 8, -1}, 1.0/12), nil
		case 7:
			return scale([]float64{-1, 9, -45, 0, 45, -9, 1}, 1.0/60), nil
		case 9:
			return scale([]float64{3, -32, 168, -672, 0, 672, -168, 32, -3}, 1.0/840), nil
		}
	case 2:
		switch order {
		case 3:
			return []float64{1, -2, 1}, nil
		case 5:
			return scale([]float64{-1, 16, -30, 16, -1}, 1.0/12), nil
		case 7:
			return scale([]float64{2, -27, 270, -490, 270, -27, 2}, 1.0/180), nil
		case 9:
			return scale([]float64{-9, 128, -1008, 8064, -14350, 8064, -1008, 128, -9}, 1.0/5040), nil
		}
	}

	return solveWeights(n, order)
}

// scale multiplies every weight by c in place and returns the slice.
func scale(w []float64, c float64) []float64 {
	for i := range w {
		w[i] *= c
	}

	return w
}

// solveWeights derives the weights from first principles: with X the
// Vandermonde matrix X[i][k] = p_i^k over the stencil points p_i, the
// weight vector is n! times row n of X⁻¹, obtained here by solving
// Xᵀ·w = n!·e_n.
func solveWeights(n, order int) ([]float64, error) {
	half := order >> 1

	x := mat.NewDense(order, order, nil)
	for i := 0; i < order; i++ {
		p := float64(i - half)
		v := 1.0
		for k := 0; k < order; k++ {
			x.Set(i, k, v)
			v *= p
		}
	}

	fact := 1.0
	for k := 2; k <= n; k++ {
		fact *= float64(k)
	}
	rhs := mat.NewVecDense(order, nil)
	rhs.SetVec(n, fact)

	var w mat.VecDense
	if err := w.SolveVec(x.T(), rhs); err != nil {
		return nil, fmt.Errorf("deriv: solving stencil weights: %w", err)
	}

	out := make([]float64, order)
	for i := range out {
		out[i] = w.AtVec(i)
	}

	return out, nil
}
