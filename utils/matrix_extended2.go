package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVD computes the full singular value decomposition M = U*S*V^T and returns
// the singular values in descending order together with V, whose columns are
// the right singular vectors.
func (m Matrix) SVD() (values []float64, V Matrix, err error) {
	var (
		svd    mat.SVD
		nr, nc = m.Dims()
	)
	if !svd.Factorize(m.M, mat.SVDFull) {
		err = fmt.Errorf("SVD failed to converge for %v x %v matrix \"%v\"", nr, nc, m.name)
		return
	}
	values = svd.Values(nil)
	V = NewMatrix(nc, nc)
	svd.VTo(V.M)
	return
}
