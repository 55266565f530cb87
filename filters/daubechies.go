package filters

import (
	"errors"
	"fmt"
)

// MaxOrder is the highest Daubechies order carried by the coefficient table.
const MaxOrder = 20

var ErrUnsupportedOrder = errors.New("unsupported Daubechies order")

// Coefficients returns a fresh copy of the filter taps for the given order.
// With scaling set the lowpass (h) filter is returned, otherwise the highpass
// (g) filter derived from it with g[k] = (-1)^k h[L-1-k].
func Coefficients(order int, scaling bool) (coeffs []float64, err error) {
	if !Supported(order) {
		err = fmt.Errorf("%w: order = %d, supported orders are 1 to %d",
			ErrUnsupportedOrder, order, MaxOrder)
		return
	}
	var (
		h = daubechiesH[order]
		L = len(h)
	)
	coeffs = make([]float64, L)
	if scaling {
		copy(coeffs, h)
		return
	}
	for k := range coeffs {
		coeffs[k] = h[L-1-k]
		if k%2 == 1 {
			coeffs[k] = -coeffs[k]
		}
	}
	return
}

func Supported(order int) bool {
	return order >= 1 && order <= MaxOrder
}

// Orders lists every order available from Coefficients.
func Orders() (orders []int) {
	for order := 1; order <= MaxOrder; order++ {
		orders = append(orders, order)
	}
	return
}

// Support is the length in integer units of the interval outside of which
// the basis functions of the given order vanish.
func Support(order int) int {
	return 2*order - 1
}
