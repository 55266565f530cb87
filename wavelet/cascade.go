package wavelet

import (
	"math"

	"github.com/notargets/dbwavelets/utils"
)

// valueMap holds, for every address of one depth, the N translate values
// phi(x), phi(x+1), ..., phi(x+N-1) at the address point x. It is indexed by
// address.dec.
type valueMap struct {
	depth  uint
	values [][]float64
}

func (vm valueMap) len() int { return len(vm.values) }

func (vm valueMap) at(a address) (v []float64, ok bool) {
	if a.depth != vm.depth || a.dec >= uint64(len(vm.values)) {
		return
	}
	v = vm.values[a.dec]
	return v, v != nil
}

func (vm valueMap) addresses() (A []address) {
	A = make([]address, len(vm.values))
	for dec := range A {
		A[dec] = address{depth: vm.depth, dec: uint64(dec)}
	}
	return
}

// transfer is one refinement branch pair in CSR form, scaled for the pass
type transfer [2]utils.CSR

// newTransfer converts fresh copies of M scaled by 2^deriv; the shared
// matrices themselves are read-only and never scaled in place.
func newTransfer(M [2]utils.Matrix, deriv int) (t transfer) {
	scale := math.Ldexp(1, deriv)
	for bit := range M {
		t[bit] = utils.NewCSRFromMatrix(M[bit].Copy().Scale(scale))
	}
	return
}

// cascade refines the integer values seed breadth first until every dyadic
// point k / 2^recursionNumber of [0, 1) is known. The scaling matrices H
// drive every level; with doWavelet the final level is expanded with the
// wavelet matrices G instead, yielding the wavelet translates.
func cascade(H, G [2]utils.Matrix, seed utils.Vector, recursionNumber, deriv int, doWavelet bool) (vm valueMap) {
	var (
		h      = newTransfer(H, deriv)
		levels = uint(recursionNumber)
	)
	vm = valueMap{values: [][]float64{seed.Copy().Data()}}
	if !doWavelet {
		for vm.depth < levels {
			vm = refine(vm, h)
		}
		return
	}
	g := newTransfer(G, deriv)
	if recursionNumber == 0 {
		// The wavelet at the integers only needs the scaling function at the integers
		vm.values[0] = g[0].MulVec(vm.values[0])
		return
	}
	for vm.depth < levels-1 {
		vm = refine(vm, h)
	}
	return refine(vm, g)
}

// refine expands every address of vm into its two children, each child
// holding a freshly allocated product of its branch matrix and the parent.
func refine(vm valueMap, t transfer) (next valueMap) {
	next = valueMap{
		depth:  vm.depth + 1,
		values: make([][]float64, 2*len(vm.values)),
	}
	for _, a := range vm.addresses() {
		parent := vm.values[a.dec]
		for bit := uint64(0); bit < 2; bit++ {
			next.values[a.child(bit).dec] = t[bit].MulVec(parent)
		}
	}
	return
}
