package weno

import (
	"math"
	"testing"

	"github.com/oceandyn/gocean/field"
	"github.com/oceandyn/gocean/grid"
	"github.com/stretchr/testify/assert"
)

func testGrid(x grid.Axis) *grid.RectilinearGrid {
	var (
		y = grid.NewUniformAxis(4, 3, grid.Periodic, 0, 1)
		z = grid.NewUniformAxis(4, 3, grid.Periodic, 0, 1)
	)
	return grid.NewRectilinearGrid(x, y, z)
}

func TestConstantFieldExact(t *testing.T) {
	var (
		f     = field.Func(func(i, j, k int) float64 { return 4.2 })
		grids = []*grid.RectilinearGrid{
			testGrid(grid.NewUniformAxis(16, 3, grid.Periodic, 0, 1)),
			testGrid(grid.NewUniformAxis(16, 3, grid.Bounded, 0, 1)),
		}
	)
	for _, g := range grids {
		for _, blend := range []Blending{JS, Z} {
			s := NewScheme(g, blend, nil)
			for i := 0; i <= g.X.N; i++ {
				for _, bias := range []Bias{Left, Right} {
					assert.InDelta(t, 4.2, s.Interpolate(f, 0, i, 0, 0, AtFace, bias), 1.e-13)
					if i < g.X.N {
						assert.InDelta(t, 4.2, s.Interpolate(f, 0, i, 0, 0, AtCenter, bias), 1.e-13)
					}
				}
			}
		}
	}
}

/*
Cell averages of an affine profile are reproduced exactly by every
candidate stencil, so the blended result is exact no matter how the
nonlinear weights fall. This holds on stretched spacing too, which is
the sharpest check on the precomputed tables.
*/
func TestAffineFieldExact(t *testing.T) {
	var (
		a, b  = 0.7, -1.3
		faces = []float64{0, 0.13, 0.2, 0.41, 0.48, 0.77, 0.93, 1.07, 1.3, 1.34, 1.62, 1.71, 2.0}
		axes  = []grid.Axis{
			grid.NewUniformAxis(12, 3, grid.Periodic, 0, 2),
			grid.NewStretchedAxis(12, 3, grid.Periodic, faces),
			grid.NewStretchedAxis(12, 3, grid.Bounded, faces),
		}
	)
	for _, ax := range axes {
		var (
			g = testGrid(ax)
			s = NewScheme(g, JS, nil)
			// cell averages of a+b*x
			cellAvg = field.Func(func(i, j, k int) float64 {
				return a + b*g.X.XCenter(i)
			})
			// dual-cell averages of the same profile, sampled at faces
			dualAvg = field.Func(func(i, j, k int) float64 {
				return a + b*0.5*(g.X.XCenter(i-1)+g.X.XCenter(i))
			})
		)
		for _, bias := range []Bias{Left, Right} {
			for i := 3; i <= ax.N-3; i++ {
				got := s.Interpolate(cellAvg, 0, i, 0, 0, AtFace, bias)
				assert.InDelta(t, a+b*ax.XFace(i), got, 1.e-11)
			}
			for i := 3; i < ax.N-3; i++ {
				got := s.Interpolate(dualAvg, 0, i, 0, 0, AtCenter, bias)
				assert.InDelta(t, a+b*ax.XCenter(i), got, 1.e-11)
			}
		}
	}
}

// Face reconstruction of a smooth profile converges at fifth order on a
// periodic uniform axis; one grid doubling must cut the error by far more
// than the third-order child would.
func TestSmoothFieldConvergence(t *testing.T) {
	maxError := func(n int) (e float64) {
		var (
			g  = testGrid(grid.NewUniformAxis(n, 3, grid.Periodic, 0, 2*math.Pi))
			s  = NewScheme(g, Z, nil)
			ax = g.X
			f  = field.Func(func(i, j, k int) float64 {
				// cell average of sin over cell i
				return (math.Cos(ax.XFace(i)) - math.Cos(ax.XFace(i+1))) / ax.Spacing(i)
			})
		)
		for i := 0; i < n; i++ {
			got := s.Interpolate(f, 0, i, 0, 0, AtFace, Left)
			if d := math.Abs(got - math.Sin(ax.XFace(i))); d > e {
				e = d
			}
		}
		return
	}
	var (
		coarse = maxError(32)
		fine   = maxError(64)
	)
	assert.True(t, fine < coarse/16,
		"expected better than fourth order decay, got %g -> %g", coarse, fine)
}

func TestBoundaryChildDelegation(t *testing.T) {
	var (
		g = testGrid(grid.NewUniformAxis(16, 3, grid.Bounded, 0, 1))
		s = NewScheme(g, JS, nil)
		f = field.Func(func(i, j, k int) float64 {
			return math.Sin(1.7*float64(i)) + 0.3*float64(i)
		})
	)
	for _, bias := range []Bias{Left, Right} {
		// within the buffer the full scheme and its child agree exactly
		for _, i := range []int{0, 1, 2, 14, 15, 16} {
			assert.Equal(t, s.Child.Interpolate(f, 0, i, 0, 0, AtFace, bias),
				s.Interpolate(f, 0, i, 0, 0, AtFace, bias))
		}
		// outside the buffer they disagree on non-polynomial data
		assert.NotEqual(t, s.Child.Interpolate(f, 0, 8, 0, 0, AtFace, bias),
			s.Interpolate(f, 0, 8, 0, 0, AtFace, bias))
	}
}

func TestInnermostUpwindFallback(t *testing.T) {
	var (
		g = testGrid(grid.NewUniformAxis(16, 3, grid.Bounded, 0, 1))
		s = NewScheme(g, JS, nil)
		f = field.Func(func(i, j, k int) float64 { return float64(i * i) })
	)
	// the order 3 child degrades to first-order upwinding in the last cell
	assert.Equal(t, f(-1, 0, 0), s.Interpolate(f, 0, 0, 0, 0, AtFace, Left))
	assert.Equal(t, f(0, 0, 0), s.Interpolate(f, 0, 0, 0, 0, AtFace, Right))
	assert.Equal(t, f(16, 0, 0), s.Interpolate(f, 0, 16, 0, 0, AtFace, Right))
}

func TestBoundsClip(t *testing.T) {
	var (
		g = testGrid(grid.NewUniformAxis(16, 3, grid.Periodic, 0, 1))
		s = NewScheme(g, JS, &Bounds{Lo: 0, Hi: 1})
	)
	assert.Equal(t, 1., s.Interpolate(field.Func(func(i, j, k int) float64 { return 5 }), 0, 8, 0, 0, AtFace, Left))
	assert.Equal(t, 0., s.Interpolate(field.Func(func(i, j, k int) float64 { return -3 }), 0, 8, 0, 0, AtFace, Left))
	assert.InDelta(t, 0.5, s.Interpolate(field.Func(func(i, j, k int) float64 { return 0.5 }), 0, 8, 0, 0, AtFace, Left), 1.e-13)
}

func TestBoundsValidation(t *testing.T) {
	g := testGrid(grid.NewUniformAxis(16, 3, grid.Periodic, 0, 1))
	assert.Panics(t, func() { NewScheme(g, JS, &Bounds{Lo: 1, Hi: 0}) })
	assert.Panics(t, func() { NewScheme(g, JS, &Bounds{Lo: 1, Hi: 1}) })
}

func TestHaloValidation(t *testing.T) {
	var (
		x = grid.NewUniformAxis(16, 2, grid.Periodic, 0, 1)
		g = grid.NewRectilinearGrid(x,
			grid.NewUniformAxis(4, 3, grid.Periodic, 0, 1),
			grid.NewUniformAxis(4, 3, grid.Periodic, 0, 1))
	)
	assert.Panics(t, func() { NewScheme(g, JS, nil) })
}

// With the quantity itself supplied as both tangential velocities, the
// vector-invariant path must reduce to the plain reconstruction.
func TestVectorInvariantSelfConsistency(t *testing.T) {
	var (
		g = testGrid(grid.NewUniformAxis(16, 3, grid.Periodic, 0, 1))
		s = NewScheme(g, Z, nil)
		q = field.Func(func(i, j, k int) float64 {
			return math.Sin(0.9*float64(i)) + 0.1*float64(i%5)
		})
	)
	for i := 0; i < g.X.N; i++ {
		for _, bias := range []Bias{Left, Right} {
			assert.Equal(t, s.Interpolate(q, 0, i, 0, 0, AtFace, bias),
				s.InterpolateVectorInvariant(q, q, q, 0, i, 0, 0, AtFace, bias))
		}
	}
}
