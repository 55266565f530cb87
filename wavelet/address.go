package wavelet

import (
	"strconv"
	"strings"
)

// address locates a node of the refinement tree: the dyadic point
// dec / 2^depth of the fundamental interval [0, 1).
type address struct {
	depth uint
	dec   uint64
}

// child is the node reached by prepending bit as the leading binary digit of
// the fraction, i.e. the point (x + bit) / 2 for the parent's point x.
func (a address) child(bit uint64) address {
	return address{depth: a.depth + 1, dec: a.dec | bit<<a.depth}
}

// firstCell is the grid cell of the node within the first integer interval
func (a address) firstCell(binsPerInt int) int {
	return int(a.dec) * (binsPerInt >> a.depth)
}

// String renders the depth binary digits of the fraction, most significant first
func (a address) String() string {
	if a.depth == 0 {
		return ""
	}
	s := strconv.FormatUint(a.dec, 2)
	return strings.Repeat("0", int(a.depth)-len(s)) + s
}
