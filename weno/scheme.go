package weno

import (
	"fmt"

	"github.com/oceandyn/gocean/grid"
)

// Bias selects the upwind side of a reconstruction. Right-biased stencils
// are read mirrored about the target location, so a single coefficient and
// smoothness table serves both sides.
type Bias uint8

const (
	Left Bias = iota
	Right
)

// Blending selects the nonlinear weighting of the candidate stencils.
type Blending uint8

const (
	JS Blending = iota // Jiang-Shu
	Z                  // WENO-Z
)

// Target is the staggering of the reconstruction location relative to the
// sampled field: AtFace reconstructs a center field at a face, AtCenter a
// face field at a center.
type Target uint8

const (
	AtFace Target = iota
	AtCenter
)

// Bounds optionally clips reconstructed values for positivity or
// monotonicity preserving variants.
type Bounds struct {
	Lo, Hi float64
}

const (
	// Regularization of the smoothness indicators and the Z-WENO exponent,
	// fixed scheme-wide per the classical WENO-Z formulation.
	epsilon = 1.0e-8
	eta     = 2
)

// windowTable holds the per-window reconstruction coefficients and the
// smoothness quadratic form for one stencil geometry. Coefficients are
// stored in stencil read order (nearest the target first for window 0).
// Smoothness of window w over samples s is
//
//	beta_w = sum_j D[w][j]*s[j]^2 + O[w][0]*s[0]*s[1] + O[w][1]*s[0]*s[2] + O[w][2]*s[1]*s[2]
type windowTable struct {
	C [3][3]float64
	D [3][3]float64
	O [3][3]float64
}

// axisTable carries the coefficient tables for one grid axis. Uniform axes
// use closed-form constants shared by both biases and targets; stretched
// axes precompute one table per index, bias and target at construction
// time. On-the-fly stretched coefficients are rejected as too costly.
type axisTable struct {
	uniform bool
	// stretched tables indexed [bias][target]; face-target arrays run over
	// face indices 0..N, center-target arrays over centers 0..N-1.
	tables [2][2][]windowTable
}

/*
Scheme is an immutable WENO reconstruction scheme bound to a grid. Order 5
schemes always hold an order 3 child used within boundaryBuffer cells of a
non-periodic domain edge, where the full stencil would read invalid halo
data; the child in turn degrades to first-order upwinding at the last cell.
Construction resolves the whole chain once; nothing is dispatched
dynamically per call.

A Scheme is read-only after construction and safe for concurrent use.
*/
type Scheme struct {
	Order  int
	Blend  Blending
	Bounds *Bounds
	Child  *Scheme

	grid *grid.RectilinearGrid
	axes [3]axisTable
}

// NewScheme builds a WENO5 scheme with its WENO3 child on g. Axes with
// fewer halo cells than the stencil needs, or a non-increasing bounds
// range, are configuration errors and panic.
func NewScheme(g *grid.RectilinearGrid, blend Blending, bounds *Bounds) *Scheme {
	return newScheme(g, 5, blend, bounds)
}

func newScheme(g *grid.RectilinearGrid, order int, blend Blending, bounds *Bounds) (s *Scheme) {
	if order != 3 && order != 5 {
		panic(fmt.Sprintf("weno: unsupported order %d", order))
	}
	if bounds != nil && bounds.Lo >= bounds.Hi {
		panic(fmt.Sprintf("weno: bounds [%g,%g] are not increasing", bounds.Lo, bounds.Hi))
	}
	s = &Scheme{
		Order:  order,
		Blend:  blend,
		Bounds: bounds,
		grid:   g,
	}
	for d := 0; d < 3; d++ {
		ax := g.Axis(d)
		if ax.Halo < boundaryBuffer(order) {
			panic(fmt.Sprintf("weno: axis %d halo %d is smaller than the stencil buffer %d",
				d, ax.Halo, boundaryBuffer(order)))
		}
		s.axes[d] = buildAxisTable(ax, order)
	}
	if order == 5 {
		s.Child = newScheme(g, 3, blend, bounds)
	}
	return
}

// windowSize is the number of samples per candidate stencil.
func windowSize(order int) int { return (order + 1) / 2 }

// boundaryBuffer is the number of cells next to a non-periodic boundary in
// which the scheme delegates to its lower-order child.
func boundaryBuffer(order int) int { return windowSize(order) }

// optimalWeights returns the linear base weights in stencil window order
// (nearest the target first). The mirrored stencil reads make the same
// triple apply to both biases.
func optimalWeights(order int) [3]float64 {
	if order == 5 {
		return [3]float64{3. / 10., 3. / 5., 1. / 10.}
	}
	return [3]float64{2. / 3., 1. / 3., 0}
}

// uniformCoefficients returns the closed-form reconstruction coefficients
// for uniform spacing, window-major, in stencil read order.
func uniformCoefficients(order int) [3][3]float64 {
	if order == 5 {
		return [3][3]float64{
			{1. / 3., 5. / 6., -1. / 6.},
			{-1. / 6., 5. / 6., 1. / 3.},
			{1. / 3., -7. / 6., 11. / 6.},
		}
	}
	return [3][3]float64{
		{1. / 2., 1. / 2., 0},
		{-1. / 2., 3. / 2., 0},
		{0, 0, 0},
	}
}

/*
UniformReconstructionCoefficients exposes the constant coefficient triples
of a uniform axis in increasing-index window order. For Left bias these are
the tables used directly; for Right bias the windows are read mirrored, so
in increasing-index order each triple appears reversed.
*/
func UniformReconstructionCoefficients(order int, bias Bias) (c [3][3]float64) {
	c = uniformCoefficients(order)
	if bias == Right {
		nw := windowSize(order)
		for w := 0; w < nw; w++ {
			for j := 0; j < nw/2; j++ {
				c[w][j], c[w][nw-1-j] = c[w][nw-1-j], c[w][j]
			}
		}
	}
	return
}

// Grid returns the grid the scheme was constructed for.
func (s *Scheme) Grid() *grid.RectilinearGrid { return s.grid }
