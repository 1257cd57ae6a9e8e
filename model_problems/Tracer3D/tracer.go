package Tracer3D

import (
	"fmt"
	"math"
	"sync"

	"github.com/oceandyn/gocean/field"
	"github.com/oceandyn/gocean/grid"
	"github.com/oceandyn/gocean/utils"
	"github.com/oceandyn/gocean/weno"
)

/*
Tracer3D advects a passive tracer through a triply periodic box with a
prescribed uniform velocity, reconstructing face values with the WENO
scheme and stepping with third-order SSP Runge-Kutta. It is the reference
driver for the reconstruction kernels: one pure evaluation per face, swept
in parallel across threads with no synchronization inside a stage.
*/
type Tracer struct {
	Grid      *grid.RectilinearGrid
	Scheme    *weno.Scheme
	Psi       *field.Field
	U, V, W   float64
	CFL       float64
	FinalTime float64
	NP        int
}

func NewTracer(n int, u, v, w, CFL, finalTime float64, blend weno.Blending, bounds *weno.Bounds, np int) (c *Tracer) {
	var (
		halo = 3
		ax   = grid.NewUniformAxis(n, halo, grid.Periodic, 0, 1)
		g    = grid.NewRectilinearGrid(ax, ax, ax)
	)
	c = &Tracer{
		Grid:      g,
		Scheme:    weno.NewScheme(g, blend, bounds),
		Psi:       field.NewField(g, [3]field.Location{field.Center, field.Center, field.Center}),
		U:         u,
		V:         v,
		W:         w,
		CFL:       CFL,
		FinalTime: finalTime,
		NP:        np,
	}
	// Smooth blob plus a step, the classical stress test for oscillations
	c.Psi.Fill(func(i, j, k int) float64 {
		var (
			x = g.X.XCenter(i)
			y = g.Y.XCenter(j)
			z = g.Z.XCenter(k)
			r = math.Sqrt((x-0.35)*(x-0.35) + (y-0.5)*(y-0.5) + (z-0.5)*(z-0.5))
		)
		val := math.Exp(-40 * r * r)
		if x > 0.6 && x < 0.8 {
			val += 1
		}
		return val
	})
	c.Psi.FillHalos()
	return
}

func (c *Tracer) Run() {
	var (
		logFrequency = 20
		dxMin        = c.Grid.X.Spacing(0)
		speed        = math.Max(math.Abs(c.U), math.Max(math.Abs(c.V), math.Abs(c.W)))
	)
	if speed == 0 {
		speed = 1
	}
	dt := c.CFL * dxMin / speed
	Nsteps := int(math.Ceil(c.FinalTime / dt))
	dt = c.FinalTime / float64(Nsteps)

	pMin, pMax := c.Psi.MinMax()
	fmt.Printf("Psi min, max = %8.5f, %8.5f, dt = %8.5g, steps = %d\n", pMin, pMax, dt, Nsteps)

	var Time float64
	for tstep := 1; tstep <= Nsteps; tstep++ {
		c.step(dt)
		Time += dt
		if tstep%logFrequency == 0 || tstep == Nsteps {
			pMin, pMax = c.Psi.MinMax()
			fmt.Printf("Time = %8.4f [%d], psi min = %8.5f, max = %8.5f\n", Time, tstep, pMin, pMax)
		}
	}
}

// step advances one SSP-RK3 step.
func (c *Tracer) step(dt float64) {
	var (
		n  = c.interiorCount()
		q0 = c.interior()
		q  = make([]float64, n)
	)
	// stage 1
	r := c.RHS()
	for m := range q {
		q[m] = q0[m] + dt*r[m]
	}
	c.setInterior(q)
	// stage 2
	r = c.RHS()
	for m := range q {
		q[m] = 0.75*q0[m] + 0.25*(q[m]+dt*r[m])
	}
	c.setInterior(q)
	// stage 3
	r = c.RHS()
	for m := range q {
		q[m] = q0[m]/3 + 2./3.*(q[m]+dt*r[m])
	}
	c.setInterior(q)
}

/*
RHS evaluates -div(u psi) over the interior using upwind-selected WENO
face reconstructions, swept in parallel over z planes. Each face value is
a pure function of the scheme and the current snapshot, so the sweep needs
no locking.
*/
func (c *Tracer) RHS() (rhs []float64) {
	var (
		nx, ny, nz = c.Grid.X.N, c.Grid.Y.N, c.Grid.Z.N
		pm         = utils.NewPartitionMap(c.NP, nz)
		wg         sync.WaitGroup
	)
	rhs = make([]float64, nx*ny*nz)
	vel := [3]float64{c.U, c.V, c.W}
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				for j := 0; j < ny; j++ {
					for i := 0; i < nx; i++ {
						var div float64
						for d := 0; d < 3; d++ {
							u := vel[d]
							if u == 0 {
								continue
							}
							bias := weno.Left
							if u < 0 {
								bias = weno.Right
							}
							var lo, hi float64
							switch d {
							case 0:
								lo = c.Scheme.Interpolate(c.Psi, d, i, j, k, weno.AtFace, bias)
								hi = c.Scheme.Interpolate(c.Psi, d, i+1, j, k, weno.AtFace, bias)
							case 1:
								lo = c.Scheme.Interpolate(c.Psi, d, i, j, k, weno.AtFace, bias)
								hi = c.Scheme.Interpolate(c.Psi, d, i, j+1, k, weno.AtFace, bias)
							default:
								lo = c.Scheme.Interpolate(c.Psi, d, i, j, k, weno.AtFace, bias)
								hi = c.Scheme.Interpolate(c.Psi, d, i, j, k+1, weno.AtFace, bias)
							}
							div += u * (hi - lo) / c.Grid.Axis(d).Spacing(axisOf(d, i, j, k))
						}
						rhs[i+nx*(j+ny*k)] = -div
					}
				}
			}
		}(np)
	}
	wg.Wait()
	return
}

func axisOf(d, i, j, k int) int {
	switch d {
	case 0:
		return i
	case 1:
		return j
	default:
		return k
	}
}

func (c *Tracer) interiorCount() int {
	return c.Grid.X.N * c.Grid.Y.N * c.Grid.Z.N
}

func (c *Tracer) interior() (q []float64) {
	var nx, ny, nz = c.Grid.X.N, c.Grid.Y.N, c.Grid.Z.N
	q = make([]float64, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				q[i+nx*(j+ny*k)] = c.Psi.At(i, j, k)
			}
		}
	}
	return
}

func (c *Tracer) setInterior(q []float64) {
	var nx, ny, nz = c.Grid.X.N, c.Grid.Y.N, c.Grid.Z.N
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				c.Psi.Set(i, j, k, q[i+nx*(j+ny*k)])
			}
		}
	}
	c.Psi.FillHalos()
}
