package catke

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/oceandyn/gocean/grid"
)

/*
Vertical gradient operator.

The closure consumes vertical gradients of buoyancy and velocity through
the Gradients funcs. For column-state drivers and tests the operator is
assembled once per axis as a banded sparse matrix (DOK during assembly,
CSR for application) and applied to profiles; the per-cell funcs then just
index the resulting arrays.
*/

// VerticalGradient differentiates cell-center profiles along an axis.
type VerticalGradient struct {
	N  int
	op *sparse.CSR
}

// NewVerticalGradient assembles the centered-difference operator for the
// interior cells of ax, one-sided at the ends.
func NewVerticalGradient(ax grid.Axis) (vg *VerticalGradient) {
	var (
		n   = ax.N
		dok = sparse.NewDOK(n, n)
	)
	for k := 0; k < n; k++ {
		switch k {
		case 0:
			d := ax.XCenter(1) - ax.XCenter(0)
			dok.Set(0, 0, -1/d)
			dok.Set(0, 1, 1/d)
		case n - 1:
			d := ax.XCenter(n-1) - ax.XCenter(n-2)
			dok.Set(n-1, n-2, -1/d)
			dok.Set(n-1, n-1, 1/d)
		default:
			d := ax.XCenter(k+1) - ax.XCenter(k-1)
			dok.Set(k, k-1, -1/d)
			dok.Set(k, k+1, 1/d)
		}
	}
	vg = &VerticalGradient{N: n, op: dok.ToCSR()}
	return
}

// Apply differentiates one profile of length N.
func (vg *VerticalGradient) Apply(profile []float64) (ddz []float64) {
	var (
		x = mat.NewVecDense(vg.N, profile)
		y mat.VecDense
	)
	y.MulVec(vg.op, x)
	ddz = make([]float64, vg.N)
	for k := 0; k < vg.N; k++ {
		ddz[k] = y.AtVec(k)
	}
	return
}

/*
ColumnGradients builds the Gradients interface from single-column profiles
of velocity, buoyancy and TKE, with a prescribed surface buoyancy flux.
Horizontal indices are ignored; this is the configuration exercised by the
column driver and the closure tests.
*/
func ColumnGradients(ax grid.Axis, u, v, b, e []float64, qb float64) Gradients {
	var (
		vg   = NewVerticalGradient(ax)
		dudz = vg.Apply(u)
		dvdz = vg.Apply(v)
		n2   = vg.Apply(b)
	)
	return Gradients{
		N2:   func(i, j, k int) float64 { return n2[k] },
		DUDz: func(i, j, k int) float64 { return dudz[k] },
		DVDz: func(i, j, k int) float64 { return dvdz[k] },
		Qb:   func(i, j int) float64 { return qb },
		TKE:  func(i, j, k int) float64 { return e[k] },
	}
}
