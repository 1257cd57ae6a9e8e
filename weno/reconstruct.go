package weno

import (
	"github.com/oceandyn/gocean/field"
	"github.com/oceandyn/gocean/grid"
)

/*
Top-level reconstruction.

Interpolate forms the weighted combination of the candidate polynomial
reconstructions at one face or center. Within boundaryBuffer cells of a
non-periodic domain edge the call delegates entirely to the lower-order
child scheme rather than reading past the domain; the order 3 child in
turn falls back to first-order upwinding at the last cell. Every call is a
pure function of the immutable scheme and the field snapshot, safe to
evaluate concurrently over the whole grid.
*/

// Interpolate reconstructs the sampled quantity at index (i,j,k) along
// axis. For AtFace targets the index is the face between cells i-1 and i
// along the chosen axis; for AtCenter targets it is the cell holding faces
// i and i+1.
func (s *Scheme) Interpolate(f field.Sampler, axis, i, j, k int, target Target, bias Bias) float64 {
	idx := axisIndex(axis, i, j, k)
	if s.nearBoundary(axis, idx, target) {
		if s.Child != nil {
			return s.Child.Interpolate(f, axis, i, j, k, target, bias)
		}
		return s.clip(upwindSample(f, axis, i, j, k, bias, target))
	}
	st := GatherStencil(f, s.Order, axis, i, j, k, bias, target)
	beta := s.smoothness(axis, idx, bias, target, st)
	return s.combine(st, beta, axis, idx, bias, target)
}

/*
InterpolateVectorInvariant reconstructs a velocity-derived quantity q
(vorticity or a vector-invariant momentum flux) while measuring smoothness
on the tangential velocity components u and v, averaged at equal weight,
instead of on q itself. The stencil contract for the three samplers is
identical.
*/
func (s *Scheme) InterpolateVectorInvariant(q, u, v field.Sampler, axis, i, j, k int, target Target, bias Bias) float64 {
	idx := axisIndex(axis, i, j, k)
	if s.nearBoundary(axis, idx, target) {
		if s.Child != nil {
			return s.Child.InterpolateVectorInvariant(q, u, v, axis, i, j, k, target, bias)
		}
		return s.clip(upwindSample(q, axis, i, j, k, bias, target))
	}
	var (
		st   = GatherStencil(q, s.Order, axis, i, j, k, bias, target)
		su   = GatherStencil(u, s.Order, axis, i, j, k, bias, target)
		sv   = GatherStencil(v, s.Order, axis, i, j, k, bias, target)
		bu   = s.smoothness(axis, idx, bias, target, su)
		bv   = s.smoothness(axis, idx, bias, target, sv)
		beta = blendedSmoothness(bu, bv)
	)
	return s.combine(st, beta, axis, idx, bias, target)
}

// combine blends the candidate reconstructions into the final value.
func (s *Scheme) combine(st Stencil, beta [3]float64, axis, idx int, bias Bias, target Target) (v float64) {
	var (
		w  = blendWeights(s.Blend, s.Order, beta)
		nw = windowSize(s.Order)
		at = &s.axes[axis]
		c  [3][3]float64
	)
	if at.uniform {
		c = uniformCoefficients(s.Order)
	} else {
		c = at.tables[bias][target][idx].C
	}
	for r := 0; r < nw; r++ {
		var p float64
		for m := 0; m < nw; m++ {
			p += c[r][m] * st[r][m]
		}
		v += w[r] * p
	}
	v = s.clip(v)
	return
}

func (s *Scheme) clip(v float64) float64 {
	if b := s.Bounds; b != nil {
		if v < b.Lo {
			return b.Lo
		}
		if v > b.Hi {
			return b.Hi
		}
	}
	return v
}

// nearBoundary reports whether the reconstruction at idx would read past a
// non-periodic domain edge for this scheme's stencil width.
func (s *Scheme) nearBoundary(axis, idx int, target Target) bool {
	var (
		ax     = s.grid.Axis(axis)
		buffer = boundaryBuffer(s.Order)
	)
	if target == AtFace {
		return ax.NearBoundary(idx, buffer)
	}
	if ax.Topo == grid.Periodic {
		return false
	}
	// center targets sit half a cell inside the face, admitting one more
	// index at the low end than the face predicate
	return idx < buffer-1 || idx > ax.N-buffer
}

// upwindSample is the first-order fallback at the last cell next to a
// boundary.
func upwindSample(f field.Sampler, axis, i, j, k int, bias Bias, target Target) float64 {
	m := 0
	switch {
	case target == AtFace && bias == Left:
		m = -1
	case target == AtCenter && bias == Right:
		m = 1
	}
	return offset(f, axis, i, j, k, m)
}

func axisIndex(axis, i, j, k int) int {
	switch axis {
	case 0:
		return i
	case 1:
		return j
	default:
		return k
	}
}
