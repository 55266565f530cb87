package wavelet

import (
	"fmt"

	"github.com/notargets/dbwavelets/grid"
)

// fillGrid scatters the refined translate values into g. The values known at
// address a for translate i belong to the cell a.firstCell + i*binsPerInt,
// so every cell is written by exactly one (address, translate) pair.
func fillGrid(g *grid.Grid, l Layout, values, derivs valueMap) (err error) {
	if values.depth != derivs.depth || values.len() != derivs.len() {
		return fmt.Errorf("%w: value map has %d addresses at depth %d, derivative map %d at depth %d",
			ErrInternalConsistency, values.len(), values.depth, derivs.len(), derivs.depth)
	}
	if int(values.depth) != l.RecursionNumber || values.len() != l.BinsPerInt {
		return fmt.Errorf("%w: expected %d addresses at depth %d, got %d at depth %d",
			ErrInternalConsistency, l.BinsPerInt, l.RecursionNumber, values.len(), values.depth)
	}
	if g.Size() != l.GridSize {
		return fmt.Errorf("%w: grid %q has %d bins, layout needs %d",
			ErrInternalConsistency, g.Name, g.Size(), l.GridSize)
	}
	for _, a := range values.addresses() {
		v, ok := values.at(a)
		d, okd := derivs.at(a)
		switch {
		case !ok || !okd:
			return fmt.Errorf("%w: address %q missing from the cascade", ErrInternalConsistency, a)
		case len(v) != l.MaxSupport || len(d) != l.MaxSupport:
			return fmt.Errorf("%w: address %q holds %d values and %d derivatives, expected %d",
				ErrInternalConsistency, a, len(v), len(d), l.MaxSupport)
		}
		first := a.firstCell(l.BinsPerInt)
		for i := range v {
			if err = g.SetValueAndDerivatives(first+i*l.BinsPerInt, v[i], d[i:i+1]); err != nil {
				return fmt.Errorf("%w: %w", ErrInternalConsistency, err)
			}
		}
	}
	if missing, repeated := g.Coverage(); len(missing) != 0 || len(repeated) != 0 {
		return fmt.Errorf("%w: grid %q has %d unwritten and %d rewritten cells",
			ErrInternalConsistency, g.Name, len(missing), len(repeated))
	}
	return
}
