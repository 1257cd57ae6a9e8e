package weno

/*
Smoothness indicators.

Uniform axes use the closed-form Jiang-Shu measures; stretched axes
evaluate the quadratic forms precomputed at construction. Because
right-biased windows are read mirrored, the same formula assignment serves
both sides (mirroring a window exchanges the first and third uniform
formulas, which is exactly the axis-reversed assignment).
*/

// betaUniform5 evaluates the classical smoothness measure of window w over
// the mirrored-read samples s.
func betaUniform5(w int, s [3]float64) float64 {
	var (
		curv = s[0] - 2*s[1] + s[2]
		grad float64
	)
	switch w {
	case 0:
		grad = 3*s[0] - 4*s[1] + s[2]
	case 1:
		grad = s[0] - s[2]
	default:
		grad = s[0] - 4*s[1] + 3*s[2]
	}
	return 13./12.*curv*curv + 0.25*grad*grad
}

// betaUniform3 is the order 3 measure, the squared first difference.
func betaUniform3(s [3]float64) float64 {
	d := s[1] - s[0]
	return d * d
}

// betaStretched evaluates the precomputed quadratic form of window w.
func betaStretched(wt *windowTable, w int, s [3]float64) float64 {
	return wt.D[w][0]*s[0]*s[0] + wt.D[w][1]*s[1]*s[1] + wt.D[w][2]*s[2]*s[2] +
		wt.O[w][0]*s[0]*s[1] + wt.O[w][1]*s[0]*s[2] + wt.O[w][2]*s[1]*s[2]
}

// smoothness fills the per-window indicators for one stencil.
func (s *Scheme) smoothness(axis int, idx int, bias Bias, target Target, st Stencil) (beta [3]float64) {
	var (
		at = &s.axes[axis]
		nw = windowSize(s.Order)
	)
	if at.uniform {
		for w := 0; w < nw; w++ {
			if s.Order == 5 {
				beta[w] = betaUniform5(w, st[w])
			} else {
				beta[w] = betaUniform3(st[w])
			}
		}
		return
	}
	wt := &at.tables[bias][target][idx]
	for w := 0; w < nw; w++ {
		beta[w] = betaStretched(wt, w, st[w])
	}
	return
}

// blendedSmoothness averages the indicators of two velocity components at
// equal weight, the vector-invariant treatment of tangential smoothness.
func blendedSmoothness(bu, bv [3]float64) (beta [3]float64) {
	for w := range beta {
		beta[w] = 0.5*bu[w] + 0.5*bv[w]
	}
	return
}
