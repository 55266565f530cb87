package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dbwavelets/utils"
)

const (
	// Relative bound, against the largest singular value, below which a
	// singular value of M - lambda*I counts as zero.
	nullTolerance = 1e-8
	// Smallest admissible moment sum in the normalizer.
	momentTolerance = 1e-12
)

// integerValues returns the basis function (deriv = 0) or its first
// derivative (deriv = 1) at the integer points 0..N-1, the normalized
// eigenvector of M0 for the eigenvalue 2^-deriv.
func integerValues(M0 utils.Matrix, deriv int) (v utils.Vector, err error) {
	if v, err = eigenvector(M0, math.Pow(0.5, float64(deriv))); err != nil {
		return
	}
	return normalize(v, deriv)
}

// eigenvector solves (M - lambda*I) v = 0 through a full SVD, v being the
// right singular vector of the smallest singular value. This is only
// meaningful for a simple eigenvalue: a repeated or absent eigenvalue is
// reported as ErrLinearAlgebra.
func eigenvector(M utils.Matrix, eigenvalue float64) (v utils.Vector, err error) {
	var (
		nr, nc = M.Dims()
		values []float64
		V      utils.Matrix
	)
	if nr != nc {
		err = fmt.Errorf("%w: %v x %v matrix %q is not square", ErrLinearAlgebra, nr, nc, M.Name())
		return
	}
	A := M.Copy().SubtractDiagonal(eigenvalue)
	if values, V, err = A.SVD(); err != nil {
		err = fmt.Errorf("%w: %w", ErrLinearAlgebra, err)
		return
	}
	var (
		n        = len(values)
		bound    = nullTolerance * values[0]
		smallest = values[n-1]
	)
	if smallest > bound {
		err = fmt.Errorf("%w: %v is not an eigenvalue of %q, smallest singular value is %g",
			ErrLinearAlgebra, eigenvalue, M.Name(), smallest)
		return
	}
	if n > 1 && values[n-2] <= bound {
		err = fmt.Errorf("%w: eigenvalue %v of %q is not simple, singular values %g and %g are both null",
			ErrLinearAlgebra, eigenvalue, M.Name(), values[n-2], smallest)
		return
	}
	v = V.Col(n - 1)
	return
}

// normalize scales v so that sum_{i=1}^{N-1} v[i] (-i)^deriv = 1. Index 0
// is the left edge of the support where the value is fixed by continuity
// and does not take part in the moment.
func normalize(v utils.Vector, deriv int) (vn utils.Vector, err error) {
	var (
		data = v.Data()
		s    float64
	)
	if len(data) > 1 {
		moments := make([]float64, len(data)-1)
		for i := range moments {
			moments[i] = utils.POW(float64(-(i + 1)), deriv)
		}
		s = floats.Dot(data[1:], moments)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) || math.Abs(s) < momentTolerance {
		err = fmt.Errorf("%w: moment sum %g of order %d cannot be normalized", ErrNumerical, s, deriv)
		return
	}
	vn = v.Copy().Scale(1 / s)
	if !utils.IsFinite(vn.Data()) {
		err = fmt.Errorf("%w: normalized values are not finite", ErrNumerical)
	}
	return
}
