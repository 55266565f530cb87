package wavelet

import (
	"fmt"
	"math/bits"

	"github.com/notargets/dbwavelets/filters"
)

// Layout is the sizing of a wavelet grid: the support of the basis function
// in integer units and the dyadic refinement needed to reach the requested
// number of bins.
type Layout struct {
	Order           int
	MaxSupport      int // 2*Order - 1, also the number of integer translates
	RecursionNumber int // smallest r with MaxSupport * 2^r >= requested size
	BinsPerInt      int // 2^RecursionNumber
	GridSize        int // MaxSupport * BinsPerInt, at least the requested size
}

func NewLayout(order, requestedGridsize int) (l Layout, err error) {
	if order < 1 {
		err = fmt.Errorf("%w: order must be at least 1, got %d", ErrConfiguration, order)
		return
	}
	if requestedGridsize < 1 {
		err = fmt.Errorf("%w: grid size must be at least 1, got %d", ErrConfiguration, requestedGridsize)
		return
	}
	l.Order = order
	l.MaxSupport = filters.Support(order)
	for l.MaxSupport<<l.RecursionNumber < requestedGridsize {
		l.RecursionNumber++
		// MaxSupport << RecursionNumber must stay a positive int
		if bits.Len(uint(l.MaxSupport))+l.RecursionNumber > bits.UintSize-1 {
			err = fmt.Errorf("%w: grid size %d is too large", ErrConfiguration, requestedGridsize)
			return
		}
	}
	l.BinsPerInt = 1 << l.RecursionNumber
	l.GridSize = l.MaxSupport * l.BinsPerInt
	return
}

func (l Layout) String() string {
	return fmt.Sprintf("order %d, support [0,%d], recursion %d, %d bins per integer, %d bins",
		l.Order, l.MaxSupport, l.RecursionNumber, l.BinsPerInt, l.GridSize)
}
