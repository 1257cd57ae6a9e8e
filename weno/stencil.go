package weno

import (
	"github.com/oceandyn/gocean/field"
)

/*
Stencil access.

A stencil is three overlapping windows of three samples drawn from a field
along one axis, ordered with window 0 nearest the reconstruction target.
Left-biased windows are read in increasing index order; right-biased
windows are read mirrored about the target so downstream coefficient and
smoothness tables apply unchanged to either side.

No bounds checking happens here: the reconstructor guarantees the reads
stay within the halo (boundary buffer 3 for the full scheme).
*/

// Stencil holds up to three windows of up to three samples; order 3
// schemes use two windows of two.
type Stencil [3][3]float64

// offset returns the sample at displacement m along axis from (i,j,k).
func offset(f field.Sampler, axis, i, j, k, m int) float64 {
	switch axis {
	case 0:
		return f.Sample(i+m, j, k)
	case 1:
		return f.Sample(i, j+m, k)
	default:
		return f.Sample(i, j, k+m)
	}
}

// GatherStencil reads the candidate windows for a reconstruction at index
// (i,j,k) along axis. The same contract holds for stored fields and
// function-valued samplers.
func GatherStencil(f field.Sampler, order, axis, i, j, k int, bias Bias, target Target) (s Stencil) {
	var (
		ws   = windowSize(order)
		base = stencilBase(ws, bias, target)
		step = 1
	)
	if bias == Right {
		step = -1
	}
	for r := 0; r < ws; r++ {
		start := base - step*r
		for m := 0; m < ws; m++ {
			s[r][m] = offset(f, axis, i, j, k, start+step*m)
		}
	}
	return
}

// stencilBase is the displacement of the first sample of window 0 from the
// target index.
func stencilBase(ws int, bias Bias, target Target) int {
	switch {
	case target == AtFace && bias == Left:
		return -1
	case target == AtFace && bias == Right:
		return 0
	case target == AtCenter && bias == Left:
		return 0
	default: // AtCenter, Right
		return 1
	}
}
