package wavelet

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dbwavelets/grid"
)

func TestNewLayout(t *testing.T) {
	l, err := NewLayout(2, 10)
	require.NoError(t, err)
	assert.Equal(t, Layout{Order: 2, MaxSupport: 3, RecursionNumber: 2, BinsPerInt: 4, GridSize: 12}, l)

	l, err = NewLayout(2, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, l.GridSize)
	l, err = NewLayout(2, 13)
	require.NoError(t, err)
	assert.Equal(t, 24, l.GridSize)

	l, err = NewLayout(6, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, l.RecursionNumber)
	assert.Equal(t, 11, l.GridSize)

	for _, c := range [][2]int{{0, 10}, {-1, 10}, {2, 0}, {2, -5}, {2, math.MaxInt}} {
		_, err := NewLayout(c[0], c[1])
		assert.Truef(t, errors.Is(err, ErrConfiguration), "order %d size %d", c[0], c[1])
	}
}

func TestBuildWaveletGridErrors(t *testing.T) {
	for _, order := range []int{0, -3, 21} {
		g, err := BuildWaveletGrid(order, 100, false)
		assert.Nil(t, g)
		assert.Truef(t, errors.Is(err, ErrConfiguration), "order %d: %v", order, err)
	}
	g, err := BuildWaveletGrid(3, 0, true)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrConfiguration))

	g, err = BuildWaveletGrid(1, 100, false)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrNumerical))
}

func TestBuildWaveletGridSmall(t *testing.T) {
	s3 := math.Sqrt(3)
	{ // No refinement, the grid holds the integer values
		g, err := BuildWaveletGrid(2, 3, false)
		require.NoError(t, err)
		assert.Equal(t, "db2_phi", g.Name)
		assert.Equal(t, []string{"position"}, g.Labels)
		assert.Equal(t, 0., g.Min)
		assert.Equal(t, 3., g.Max)
		assert.False(t, g.Periodic)
		assert.InDeltaSlice(t, []float64{0, (1 + s3) / 2, (1 - s3) / 2}, g.Values(), 1e-12)
		assert.InDeltaSlice(t, []float64{0, 1, -1}, g.Derivatives(), 1e-12)
	}
	{ // One refinement
		g, err := BuildWaveletGrid(2, 6, false)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{
			0, (2 + s3) / 4, (1 + s3) / 2, 0, (1 - s3) / 2, (2 - s3) / 4,
		}, g.Values(), 1e-12)
	}
	{ // The wavelet at the integers
		g, err := BuildWaveletGrid(2, 1, true)
		require.NoError(t, err)
		assert.Equal(t, "db2_psi", g.Name)
		assert.InDeltaSlice(t, []float64{0, (1 - s3) / 2, -(1 + s3) / 2}, g.Values(), 1e-12)
	}
}

func TestBuildWaveletGridCoverage(t *testing.T) {
	for _, order := range []int{2, 3, 4} {
		for _, size := range []int{50, 1000, 10000} {
			for _, doWavelet := range []bool{false, true} {
				name := fmt.Sprintf("order %d size %d wavelet %v", order, size, doWavelet)
				g, err := BuildWaveletGrid(order, size, doWavelet)
				require.NoError(t, err, name)
				l, err := NewLayout(order, size)
				require.NoError(t, err)
				assert.Equal(t, l.GridSize, g.Size(), name)
				assert.GreaterOrEqual(t, g.Size(), size, name)
				missing, repeated := g.Coverage()
				assert.Empty(t, missing, name)
				assert.Empty(t, repeated, name)
			}
		}
	}
}

func TestBuildWaveletGridPartitionOfUnity(t *testing.T) {
	// sum_k phi(x + k) = 1 and sum_k phi'(x + k) = 0 at every dyadic x
	for _, order := range []int{2, 4, 6} {
		g, err := BuildWaveletGrid(order, 2000, false)
		require.NoError(t, err)
		l, err := NewLayout(order, 2000)
		require.NoError(t, err)
		for c := 0; c < l.BinsPerInt; c++ {
			var s, ds float64
			for i := 0; i < l.MaxSupport; i++ {
				s += g.Value(c + i*l.BinsPerInt)
				ds += g.Derivative(c + i*l.BinsPerInt)
			}
			require.InDeltaf(t, 1., s, 1e-9, "order %d cell %d", order, c)
			require.InDeltaf(t, 0., ds, 1e-6, "order %d cell %d", order, c)
		}
	}
}

func TestBuildWaveletGridIdempotent(t *testing.T) {
	for _, doWavelet := range []bool{false, true} {
		g1, err := BuildWaveletGrid(5, 3000, doWavelet)
		require.NoError(t, err)
		g2, err := BuildWaveletGrid(5, 3000, doWavelet)
		require.NoError(t, err)
		assert.Equal(t, g1.Values(), g2.Values())
		assert.Equal(t, g1.Derivatives(), g2.Derivatives())
	}
}

// maxDerivativeError compares the stored derivative with a central difference
// of the stored values away from the ends of the support.
func maxDerivativeError(g *grid.Grid, binsPerInt int) (maxErr float64) {
	dx := g.Spacing()
	for i := binsPerInt; i < g.Size()-binsPerInt; i++ {
		fd := (g.Value(i+1) - g.Value(i-1)) / (2 * dx)
		maxErr = math.Max(maxErr, math.Abs(fd-g.Derivative(i)))
	}
	return
}

func TestBuildWaveletGridDerivative(t *testing.T) {
	errorAt := func(size int, doWavelet bool) float64 {
		g, err := BuildWaveletGrid(6, size, doWavelet)
		require.NoError(t, err)
		l, err := NewLayout(6, size)
		require.NoError(t, err)
		return maxDerivativeError(g, l.BinsPerInt)
	}
	coarse, fine := errorAt(1000, false), errorAt(10000, false)
	assert.Less(t, coarse, 1e-2)
	assert.Less(t, fine, 1e-3)
	assert.Less(t, fine, coarse)

	coarse, fine = errorAt(1000, true), errorAt(10000, true)
	assert.Less(t, coarse, 1e-1)
	assert.Less(t, fine, 1e-2)
	assert.Less(t, fine, coarse)
}

func TestFillGridConsistency(t *testing.T) {
	l, err := NewLayout(2, 6)
	require.NoError(t, err)
	full := func() valueMap {
		return valueMap{depth: 1, values: [][]float64{{0, 1, 2}, {3, 4, 5}}}
	}
	newGrid := func(nbins int) *grid.Grid {
		g, err := grid.NewGrid("db2_phi", []string{CoordinateLabel}, 0, 3, nbins, false)
		require.NoError(t, err)
		return g
	}
	{
		g := newGrid(6)
		require.NoError(t, fillGrid(g, l, full(), full()))
		assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, g.Values())
	}
	{ // Depth mismatch
		d := valueMap{depth: 2, values: make([][]float64, 2)}
		err := fillGrid(newGrid(6), l, full(), d)
		assert.True(t, errors.Is(err, ErrInternalConsistency))
	}
	{ // Missing address
		d := full()
		d.values[1] = nil
		err := fillGrid(newGrid(6), l, full(), d)
		assert.True(t, errors.Is(err, ErrInternalConsistency))
	}
	{ // Short translate vector
		v := full()
		v.values[0] = v.values[0][:2]
		err := fillGrid(newGrid(6), l, v, full())
		assert.True(t, errors.Is(err, ErrInternalConsistency))
	}
	{ // Grid of the wrong size
		err := fillGrid(newGrid(5), l, full(), full())
		assert.True(t, errors.Is(err, ErrInternalConsistency))
	}
	{ // Already written cells
		g := newGrid(6)
		require.NoError(t, g.SetValueAndDerivatives(3, 0, []float64{0}))
		err := fillGrid(g, l, full(), full())
		assert.True(t, errors.Is(err, ErrInternalConsistency))
	}
}
