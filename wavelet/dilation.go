package wavelet

import (
	"fmt"

	"github.com/notargets/dbwavelets/utils"
)

// TransferMatrices builds the pair of N x N dilation matrices of the two-scale
// relation from filter taps h, N = len(h) - 1. With shift = 2i - j:
//
//	M0[i][j] = 2 h[shift]    for  0 <= shift <= N
//	M1[i][j] = 2 h[shift+1]  for -1 <= shift <= N-1
//
// M0 advances the values at x to x/2 and M1 to (x+1)/2. Both are returned
// read-only.
func TransferMatrices(h []float64, name string) (M [2]utils.Matrix, err error) {
	if len(h) == 0 || len(h)%2 != 0 {
		err = fmt.Errorf("%w: filter %q needs a positive even number of taps, got %d",
			ErrConfiguration, name, len(h))
		return
	}
	N := len(h) - 1
	M[0], M[1] = utils.NewMatrix(N, N), utils.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			shift := 2*i - j
			if 0 <= shift && shift <= N {
				M[0].Set(i, j, 2*h[shift])
			}
			if -1 <= shift && shift <= N-1 {
				M[1].Set(i, j, 2*h[shift+1])
			}
		}
	}
	M[0].SetReadOnly(name + "0")
	M[1].SetReadOnly(name + "1")
	return
}
