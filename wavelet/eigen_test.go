package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dbwavelets/filters"
	"github.com/notargets/dbwavelets/utils"
)

func scalingMatrices(t *testing.T, order int) [2]utils.Matrix {
	h, err := filters.Coefficients(order, true)
	require.NoError(t, err)
	M, err := TransferMatrices(h, "H")
	require.NoError(t, err)
	return M
}

func TestIntegerValues(t *testing.T) {
	s3 := math.Sqrt(3)
	values := map[int][]float64{
		2: {0, (1 + s3) / 2, (1 - s3) / 2},
		3: {0, 1.2863350694256968, -0.3858369610458756, 0.0952675460037808, 0.004234345616398083},
		4: {0, 1.0071699777256022, -0.033836954052835454, 0.03961046271590333,
			-0.01176435820572671, -0.0011979575961769734, 1.8829413233543133e-05},
	}
	derivs := map[int][]float64{
		2: {0, 1, -1},
		3: {0, 1.6384523408840856, -2.2327581904631373, 0.5501593582740176, 0.04414649130503406},
	}
	for order, want := range values {
		v, err := integerValues(scalingMatrices(t, order)[0], 0)
		require.NoError(t, err)
		assert.InDeltaSlicef(t, want, v.Data(), 1e-9, "order %d", order)
	}
	for order, want := range derivs {
		v, err := integerValues(scalingMatrices(t, order)[0], 1)
		require.NoError(t, err)
		assert.InDeltaSlicef(t, want, v.Data(), 1e-9, "order %d", order)
	}
	for _, order := range []int{5, 10, 20} {
		M := scalingMatrices(t, order)
		v, err := integerValues(M[0], 0)
		require.NoError(t, err)
		// Partition of unity at the integers
		assert.InDeltaf(t, 1., floats.Sum(v.Data()), 1e-9, "order %d", order)
		d, err := integerValues(M[0], 1)
		require.NoError(t, err)
		assert.InDeltaf(t, 0., floats.Sum(d.Data()), 1e-8, "order %d", order)
		// The shared matrix is left as built
		assert.True(t, M[0].IsReadOnly())
	}
}

func TestIntegerValuesHaar(t *testing.T) {
	// The Haar dilation matrix is 1x1, there is no moment to normalize with
	_, err := integerValues(scalingMatrices(t, 1)[0], 0)
	assert.True(t, errors.Is(err, ErrNumerical))
}

func TestEigenvector(t *testing.T) {
	{ // Repeated eigenvalue
		I := utils.NewMatrix(2, 2, []float64{1, 0, 0, 1})
		_, err := eigenvector(I, 1)
		assert.True(t, errors.Is(err, ErrLinearAlgebra))
	}
	{ // Missing eigenvalue
		A := utils.NewMatrix(2, 2, []float64{2, 0, 0, 3})
		_, err := eigenvector(A, 1)
		assert.True(t, errors.Is(err, ErrLinearAlgebra))
	}
	{ // Not square
		A := utils.NewMatrix(2, 3)
		_, err := eigenvector(A, 1)
		assert.True(t, errors.Is(err, ErrLinearAlgebra))
	}
	{ // Simple eigenvalue, the receiver is not modified
		A := utils.NewMatrix(2, 2, []float64{2, 1, 0, 3})
		v, err := eigenvector(A, 2)
		require.NoError(t, err)
		assert.InDelta(t, 1., math.Abs(v.AtVec(0)), 1e-12)
		assert.InDelta(t, 0., v.AtVec(1), 1e-12)
		assert.Equal(t, []float64{2, 1, 0, 3}, A.Data())
	}
}

func TestNormalize(t *testing.T) {
	v := utils.NewVector(3, []float64{0, 3, 1})
	n, err := normalize(v, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.75, 0.25}, n.Data(), 1e-15)
	assert.Equal(t, []float64{0, 3, 1}, v.Data())

	// sum v[i] * (-i) = -3 - 2 = -5
	n, err = normalize(v, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, -0.6, -0.2}, n.Data(), 1e-15)

	_, err = normalize(utils.NewVector(3, []float64{1, 2, -1}), 1)
	assert.True(t, errors.Is(err, ErrNumerical))
	_, err = normalize(utils.NewVector(2, []float64{1, math.NaN()}), 0)
	assert.True(t, errors.Is(err, ErrNumerical))
}
