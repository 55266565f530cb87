package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dbwavelets/filters"
)

func TestTransferMatrices(t *testing.T) {
	s3 := math.Sqrt(3)
	h, err := filters.Coefficients(2, true)
	require.NoError(t, err)
	M, err := TransferMatrices(h, "H2_")
	require.NoError(t, err)
	{ // db2: 2h = [(1+s3), (3+s3), (3-s3), (1-s3)] / 4
		h0, h1, h2, h3 := (1+s3)/4, (3+s3)/4, (3-s3)/4, (1-s3)/4
		assert.InDeltaSlice(t, []float64{
			h0, 0, 0,
			h2, h1, h0,
			0, h3, h2,
		}, M[0].Data(), 1e-12)
		assert.InDeltaSlice(t, []float64{
			h1, h0, 0,
			h3, h2, h1,
			0, 0, h3,
		}, M[1].Data(), 1e-12)
	}
	assert.True(t, M[0].IsReadOnly())
	assert.True(t, M[1].IsReadOnly())
	assert.Equal(t, "H2_0", M[0].Name())
	assert.Equal(t, "H2_1", M[1].Name())
	assert.Panics(t, func() { M[0].Set(0, 0, 1) })

	for _, order := range []int{3, 7, 20} {
		h, err := filters.Coefficients(order, true)
		require.NoError(t, err)
		M, err := TransferMatrices(h, "H")
		require.NoError(t, err)
		N := 2*order - 1
		nr, nc := M[0].Dims()
		assert.Equal(t, N, nr)
		assert.Equal(t, N, nc)
		// Each column of M0 and M1 holds either all even or all odd taps: the
		// column sums are 1, sum of even taps times 2
		for j := 1; j < N-1; j++ {
			var s0, s1 float64
			for i := 0; i < N; i++ {
				s0 += M[0].At(i, j)
				s1 += M[1].At(i, j)
			}
			assert.InDeltaf(t, 1., s0, 1e-12, "order %d column %d", order, j)
			assert.InDeltaf(t, 1., s1, 1e-12, "order %d column %d", order, j)
		}
	}

	for _, bad := range [][]float64{nil, {}, {0.5, 0.5, 0.1}} {
		_, err := TransferMatrices(bad, "bad")
		assert.True(t, errors.Is(err, ErrConfiguration))
	}
}
