// Package wavelet tabulates Daubechies scaling functions and wavelets,
// together with their first derivative, on a uniform grid over the support
// [0, 2*order-1]. Values are computed exactly at the dyadic grid points with
// the cascade algorithm: the values at the integers are the eigenvector of
// the dilation matrix M0 and every further binary digit of a point is one
// application of M0 or M1.
package wavelet

import (
	"fmt"

	"github.com/notargets/dbwavelets/filters"
	"github.com/notargets/dbwavelets/grid"
	"github.com/notargets/dbwavelets/utils"
)

// CoordinateLabel is the label of the single grid axis
const CoordinateLabel = "position"

// GridName is "db<order>_phi" for the scaling function and "db<order>_psi"
// for the wavelet.
func GridName(order int, doWavelet bool) string {
	if doWavelet {
		return fmt.Sprintf("db%d_psi", order)
	}
	return fmt.Sprintf("db%d_phi", order)
}

// BuildWaveletGrid tabulates the order Daubechies scaling function, or the
// wavelet when doWavelet is set, on at least requestedGridsize bins. The grid
// spans [0, 2*order-1) with 2^r bins per unit interval, r being the smallest
// refinement reaching the requested size. On error no grid is returned.
func BuildWaveletGrid(order, requestedGridsize int, doWavelet bool) (g *grid.Grid, err error) {
	var (
		l      Layout
		h, hg  []float64
		H, G   [2]utils.Matrix
		values valueMap
		derivs valueMap
	)
	if l, err = NewLayout(order, requestedGridsize); err != nil {
		return
	}
	if h, err = filters.Coefficients(order, true); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if H, err = TransferMatrices(h, fmt.Sprintf("H%d_", order)); err != nil {
		return
	}
	if doWavelet {
		if hg, err = filters.Coefficients(order, false); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		if G, err = TransferMatrices(hg, fmt.Sprintf("G%d_", order)); err != nil {
			return
		}
	}
	seeds := make([]utils.Vector, 2)
	for deriv := range seeds {
		if seeds[deriv], err = integerValues(H[0], deriv); err != nil {
			return nil, fmt.Errorf("db%d, derivative %d: %w", order, deriv, err)
		}
	}
	values = cascade(H, G, seeds[0], l.RecursionNumber, 0, doWavelet)
	derivs = cascade(H, G, seeds[1], l.RecursionNumber, 1, doWavelet)

	if g, err = grid.NewGrid(GridName(order, doWavelet), []string{CoordinateLabel},
		0, float64(l.MaxSupport), l.GridSize, false); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err = fillGrid(g, l, values, derivs); err != nil {
		return nil, err
	}
	return
}
