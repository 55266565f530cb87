package wavelet

import "errors"

// Error kinds returned by BuildWaveletGrid, compare with errors.Is. None of
// them leave a usable grid behind.
var (
	// ErrConfiguration flags an unsupported order, a bad grid size or
	// missing filter coefficients, detected before any numerical work.
	ErrConfiguration = errors.New("wavelet configuration error")
	// ErrLinearAlgebra flags a failed decomposition or a target eigenvalue
	// that is missing or not simple.
	ErrLinearAlgebra = errors.New("wavelet linear algebra error")
	// ErrNumerical flags a vanishing normalization moment.
	ErrNumerical = errors.New("wavelet numerical error")
	// ErrInternalConsistency flags a cascade/fill defect: mismatched value
	// and derivative maps or a grid cell written zero or several times.
	ErrInternalConsistency = errors.New("wavelet internal consistency error")
)
