// Package grid holds a one dimensional tabulated function on evenly spaced
// bins, storing a value and a derivative per bin.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

var ErrIndexOutOfRange = errors.New("grid index out of range")

type Grid struct {
	Name     string
	Labels   []string
	Min, Max float64
	NBins    int
	Periodic bool

	values []float64
	derivs []float64
	writes []int
	fit    *interp.PiecewiseCubic
}

// NewGrid allocates a grid of nbins cells over [min, max). Only one
// dimensional grids are supported, labels must hold exactly one name.
func NewGrid(name string, labels []string, min, max float64, nbins int, periodic bool) (g *Grid, err error) {
	switch {
	case len(labels) != 1:
		err = fmt.Errorf("grid %q: expected one coordinate label, got %d", name, len(labels))
	case nbins < 1:
		err = fmt.Errorf("grid %q: bin count must be positive, got %d", name, nbins)
	case !(max > min):
		err = fmt.Errorf("grid %q: empty domain [%v, %v]", name, min, max)
	}
	if err != nil {
		return
	}
	g = &Grid{
		Name:     name,
		Labels:   append([]string(nil), labels...),
		Min:      min,
		Max:      max,
		NBins:    nbins,
		Periodic: periodic,
		values:   make([]float64, nbins),
		derivs:   make([]float64, nbins),
		writes:   make([]int, nbins),
	}
	return
}

func (g *Grid) Size() int { return g.NBins }

func (g *Grid) Spacing() float64 { return (g.Max - g.Min) / float64(g.NBins) }

// Point is the coordinate of the lower edge of cell i
func (g *Grid) Point(i int) float64 { return g.Min + float64(i)*g.Spacing() }

func (g *Grid) Value(i int) float64      { return g.values[i] }
func (g *Grid) Derivative(i int) float64 { return g.derivs[i] }

func (g *Grid) Values() []float64 {
	return append([]float64(nil), g.values...)
}

func (g *Grid) Derivatives() []float64 {
	return append([]float64(nil), g.derivs...)
}

// SetValueAndDerivatives stores a value and the derivative along each label
// at cell index.
func (g *Grid) SetValueAndDerivatives(index int, value float64, derivs []float64) error {
	if index < 0 || index >= g.NBins {
		return fmt.Errorf("%w: %d not in [0, %d) for grid %q", ErrIndexOutOfRange, index, g.NBins, g.Name)
	}
	if len(derivs) != len(g.Labels) {
		return fmt.Errorf("grid %q: expected %d derivatives, got %d", g.Name, len(g.Labels), len(derivs))
	}
	g.values[index] = value
	g.derivs[index] = derivs[0]
	g.writes[index]++
	g.fit = nil
	return nil
}

// Coverage reports the cells never written and the cells written more than once
func (g *Grid) Coverage() (missing, repeated []int) {
	for i, n := range g.writes {
		switch {
		case n == 0:
			missing = append(missing, i)
		case n > 1:
			repeated = append(repeated, i)
		}
	}
	return
}

// ValueAt interpolates the grid at x with the piecewise cubic Hermite
// polynomials fixed by the stored values and derivatives. Outside of a non
// periodic domain, or for a non finite x, ok is false. The last cell of a non
// periodic grid has no right neighbor and is extrapolated linearly from its
// lower edge.
func (g *Grid) ValueAt(x float64) (value, deriv float64, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	L := g.Max - g.Min
	if g.Periodic {
		x = g.Min + math.Mod(x-g.Min, L)
		if x < g.Min {
			x += L
		}
	} else if x < g.Min || x > g.Max {
		return
	}
	ok = true
	last := g.NBins - 1
	if !g.Periodic && x >= g.Point(last) {
		deriv = g.derivs[last]
		value = g.values[last] + deriv*(x-g.Point(last))
		return
	}
	pc := g.hermite()
	return pc.Predict(x), pc.PredictDerivative(x), ok
}

// hermite fits the interpolant on first use after a write, so ValueAt is not
// safe for concurrent use. A periodic grid gets an extra node at Max carrying
// the values of the first cell.
func (g *Grid) hermite() *interp.PiecewiseCubic {
	if g.fit != nil {
		return g.fit
	}
	var (
		n     = g.NBins
		xs    = make([]float64, n, n+1)
		ys    = append(make([]float64, 0, n+1), g.values...)
		dydxs = append(make([]float64, 0, n+1), g.derivs...)
	)
	for i := range xs {
		xs[i] = g.Point(i)
	}
	if g.Periodic {
		xs = append(xs, g.Max)
		ys = append(ys, g.values[0])
		dydxs = append(dydxs, g.derivs[0])
	}
	g.fit = new(interp.PiecewiseCubic)
	g.fit.FitWithDerivatives(xs, ys, dydxs)
	return g.fit
}
