package Tracer3D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceandyn/gocean/weno"
)

// A constant tracer has zero divergence under uniform advection; the RHS
// must vanish to rounding and the field must survive steps unchanged.
func TestConstantTracerPreserved(t *testing.T) {
	c := NewTracer(8, 1, 0.5, -0.25, 0.5, 0.1, weno.Z, nil, 1)
	c.Psi.FillConstant(2.0)
	for _, r := range c.RHS() {
		assert.InDelta(t, 0., r, 1.e-11)
	}
	c.step(0.01)
	min, max := c.Psi.MinMax()
	assert.InDelta(t, 2.0, min, 1.e-9)
	assert.InDelta(t, 2.0, max, 1.e-9)
}

func TestZeroVelocityFreezesField(t *testing.T) {
	c := NewTracer(8, 0, 0, 0, 0.5, 0.1, weno.JS, nil, 2)
	before := c.interior()
	c.step(0.05)
	after := c.interior()
	require.Len(t, after, len(before))
	// the stage combinations re-round q0, so allow the last ulp
	for m := range before {
		assert.InDelta(t, before[m], after[m], 1.e-14)
	}
}

// One full traversal of the periodic box returns the profile to its start;
// the smooth blob should come back with small error and no new extrema.
func TestPeriodicTraversal(t *testing.T) {
	if testing.Short() {
		t.Skip("advection traversal")
	}
	var (
		n = 32
		c = NewTracer(n, 1, 0, 0, 0.4, 1.0, weno.Z, nil, 4)
	)
	// smooth initial data only, so the error measures the scheme not the
	// discontinuity
	c.Psi.Fill(func(i, j, k int) float64 {
		x := c.Grid.X.XCenter(i)
		return math.Sin(2 * math.Pi * x)
	})
	c.Psi.FillHalos()

	min0, max0 := c.Psi.MinMax()
	c.Run()
	min1, max1 := c.Psi.MinMax()

	assert.InDelta(t, min0, min1, 2.e-2)
	assert.InDelta(t, max0, max1, 2.e-2)
	// essentially non-oscillatory: no significant overshoot of the initial range
	assert.True(t, min1 > min0-1.e-3)
	assert.True(t, max1 < max0+1.e-3)

	var errMax float64
	for i := 0; i < n; i++ {
		var (
			got  = c.Psi.At(i, 0, 0)
			want = math.Sin(2 * math.Pi * c.Grid.X.XCenter(i))
		)
		if d := math.Abs(got - want); d > errMax {
			errMax = d
		}
	}
	assert.True(t, errMax < 5.e-2, "traversal error %g", errMax)
}
