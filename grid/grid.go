package grid

import (
	"fmt"
	"math"
)

// Topology describes the connectivity of one grid axis
type Topology uint8

const (
	Periodic Topology = iota
	Bounded
)

func (t Topology) String() string {
	switch t {
	case Periodic:
		return "Periodic"
	case Bounded:
		return "Bounded"
	}
	return "Unknown"
}

// Stretching selects the spacing model for one axis. There is no silent
// fallback: a caller with curvilinear coordinates cannot construct an Axis
// at all, and a stretched axis must be requested explicitly.
type Stretching uint8

const (
	Uniform Stretching = iota
	Stretched
)

/*
Axis is one direction of a structured rectilinear grid. Interior cells are
indexed 0..N-1 and are padded by Halo cells on each side, so valid cell
indices run -Halo..N+Halo-1. Face i is the lower face of cell i, located at
XFace(i); interior faces run 0..N.

An Axis is immutable after construction.
*/
type Axis struct {
	N       int
	Halo    int
	Topo    Topology
	Stretch Stretching
	// xf holds face coordinates including halo faces, xc cell centers
	// including halo centers. Both are offset by Halo.
	xf, xc []float64
	dx     float64 // constant spacing for Uniform axes
}

// NewUniformAxis builds an axis of n cells spanning [x0,x1] with constant
// spacing.
func NewUniformAxis(n, halo int, topo Topology, x0, x1 float64) (ax Axis) {
	if n < 1 || halo < 0 {
		panic(fmt.Sprintf("uniform axis: invalid dimensions n=%d halo=%d", n, halo))
	}
	if x1 <= x0 {
		panic(fmt.Sprintf("uniform axis: extent [%g,%g] is not increasing", x0, x1))
	}
	var (
		dx = (x1 - x0) / float64(n)
		nt = n + 2*halo
	)
	ax = Axis{
		N:       n,
		Halo:    halo,
		Topo:    topo,
		Stretch: Uniform,
		dx:      dx,
		xf:      make([]float64, nt+1),
		xc:      make([]float64, nt),
	}
	for i := 0; i <= nt; i++ {
		ax.xf[i] = x0 + dx*float64(i-halo)
	}
	for i := 0; i < nt; i++ {
		ax.xc[i] = 0.5 * (ax.xf[i] + ax.xf[i+1])
	}
	return
}

/*
NewStretchedAxis builds an axis from the n+1 interior face coordinates in
xFaces, which must be strictly increasing. Halo faces are extrapolated with
the end spacing for Bounded axes and wrapped for Periodic axes.
*/
func NewStretchedAxis(n, halo int, topo Topology, xFaces []float64) (ax Axis) {
	if n < 1 || halo < 0 {
		panic(fmt.Sprintf("stretched axis: invalid dimensions n=%d halo=%d", n, halo))
	}
	if len(xFaces) != n+1 {
		panic(fmt.Sprintf("stretched axis: need %d face coordinates, got %d", n+1, len(xFaces)))
	}
	for i := 0; i < n; i++ {
		if xFaces[i+1] <= xFaces[i] {
			panic(fmt.Sprintf("stretched axis: face coordinates not increasing at %d", i))
		}
	}
	nt := n + 2*halo
	ax = Axis{
		N:       n,
		Halo:    halo,
		Topo:    topo,
		Stretch: Stretched,
		xf:      make([]float64, nt+1),
		xc:      make([]float64, nt),
	}
	copy(ax.xf[halo:], xFaces)
	// Halo spacings wrap cyclically for Periodic axes and repeat the end
	// spacing for Bounded axes.
	spacing := func(i int) float64 { return xFaces[i+1] - xFaces[i] }
	for h := 1; h <= halo; h++ {
		var dLo, dHi float64
		switch topo {
		case Periodic:
			dLo = spacing((n - h%n) % n)
			dHi = spacing((h - 1) % n)
		default:
			dLo = spacing(0)
			dHi = spacing(n - 1)
		}
		ax.xf[halo-h] = ax.xf[halo-h+1] - dLo
		ax.xf[halo+n+h] = ax.xf[halo+n+h-1] + dHi
	}
	for i := 0; i < nt; i++ {
		ax.xc[i] = 0.5 * (ax.xf[i] + ax.xf[i+1])
	}
	return
}

// XFace returns the coordinate of face i (the lower face of cell i), for
// i in -Halo..N+Halo.
func (ax Axis) XFace(i int) float64 { return ax.xf[i+ax.Halo] }

// XCenter returns the center coordinate of cell i, for i in -Halo..N+Halo-1.
func (ax Axis) XCenter(i int) float64 { return ax.xc[i+ax.Halo] }

// Spacing returns the width of cell i.
func (ax Axis) Spacing(i int) float64 {
	if ax.Stretch == Uniform {
		return ax.dx
	}
	return ax.xf[i+1+ax.Halo] - ax.xf[i+ax.Halo]
}

// CenterSpacing returns the distance between the centers of cells i-1 and i.
func (ax Axis) CenterSpacing(i int) float64 {
	if ax.Stretch == Uniform {
		return ax.dx
	}
	return ax.xc[i+ax.Halo] - ax.xc[i-1+ax.Halo]
}

// WallDistance returns the distance from the center of cell i to the
// nearer of the two domain end faces. Only meaningful for Bounded axes.
func (ax Axis) WallDistance(i int) float64 {
	var (
		xc = ax.XCenter(i)
		d0 = xc - ax.XFace(0)
		d1 = ax.XFace(ax.N) - xc
	)
	return math.Min(d0, d1)
}

// NearBoundary reports whether face index i lies within buffer cells of a
// non-periodic end of the axis, where a wide stencil would read past the
// domain.
func (ax Axis) NearBoundary(i, buffer int) bool {
	if ax.Topo == Periodic {
		return false
	}
	return i < buffer || i > ax.N-buffer
}

// RectilinearGrid is a structured axis-aligned 3D mesh. Axes are
// independently uniform or stretched. Immutable after construction.
type RectilinearGrid struct {
	X, Y, Z Axis
}

func NewRectilinearGrid(x, y, z Axis) *RectilinearGrid {
	return &RectilinearGrid{X: x, Y: y, Z: z}
}

// Axis returns the axis for direction d (0=x, 1=y, 2=z).
func (g *RectilinearGrid) Axis(d int) Axis {
	switch d {
	case 0:
		return g.X
	case 1:
		return g.Y
	case 2:
		return g.Z
	}
	panic(fmt.Sprintf("grid: invalid axis %d", d))
}
