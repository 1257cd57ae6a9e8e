package weno

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/oceandyn/gocean/grid"
)

/*
Coefficient construction for stretched axes.

Each candidate window reconstructs the sampled quantity from cell averages
via the primitive function: the polynomial P interpolating the running
integral of the samples at the window's bounding nodes is solved once per
window, its derivative p = P' is the reconstruction polynomial, and

	c_j = q_j(x*)                       (reconstruction coefficients)
	beta = dx*Int[(p')^2] + dx^3*Int[(p'')^2]   (smoothness quadratic form)

where q_j is the contribution of unit sample j to p and the integral runs
over the upwind cell. On uniform spacing this reduces exactly to the
classical closed-form constants, which is asserted in the tests.
*/

// buildWindow computes one window's reconstruction coefficients and
// smoothness quadratic form. nodes are the ws+1 ascending coordinates
// bounding the ws sample cells, xEval the reconstruction point and
// [xL, xR] the upwind cell over which smoothness is measured.
func buildWindow(nodes []float64, xEval, xL, xR float64) (c, d, o [3]float64) {
	var (
		ws = len(nodes) - 1 // samples per window
		n  = ws + 1
		V  = mat.NewDense(n, n, nil)
		qa [3][3]float64 // polynomial coefficients of q_j in powers of (x - xEval)
	)
	for m := 0; m < n; m++ {
		t := nodes[m] - xEval
		pw := 1.0
		for p := 0; p < n; p++ {
			V.Set(m, p, pw)
			pw *= t
		}
	}
	for j := 0; j < ws; j++ {
		// Unit sample j contributes its cell integral to the primitive at
		// every node above the cell.
		var (
			b  = mat.NewVecDense(n, nil)
			dj = nodes[j+1] - nodes[j]
			a  mat.VecDense
		)
		for m := j + 1; m < n; m++ {
			b.SetVec(m, dj)
		}
		if err := a.SolveVec(V, b); err != nil {
			panic(fmt.Sprintf("weno: singular window geometry %v: %v", nodes, err))
		}
		// q_j = P_j', expressed in powers of (x - xEval)
		for p := 1; p < n; p++ {
			qa[j][p-1] = float64(p) * a.AtVec(p)
		}
		c[j] = qa[j][0]
	}
	var (
		tL, tR = xL - xEval, xR - xEval
		dx     = tR - tL
	)
	for m := 0; m < ws; m++ {
		for nn := m; nn < ws; nn++ {
			b := dx*integrateD1(qa[m], qa[nn], tL, tR) +
				dx*dx*dx*integrateD2(qa[m], qa[nn], tL, tR)
			if m == nn {
				d[m] = b
			} else {
				o[crossIndex(m, nn)] = 2 * b
			}
		}
	}
	return
}

// crossIndex maps sample pairs (0,1) (0,2) (1,2) to quadratic-form slots.
func crossIndex(m, n int) int {
	if m == 0 {
		return n - 1
	}
	return 2
}

// integrateD1 integrates q_m' * q_n' over [tL,tR]. The integrand is at most
// quadratic, exact with two-point Gauss quadrature.
func integrateD1(qm, qn [3]float64, tL, tR float64) (v float64) {
	var (
		mid, half = 0.5 * (tR + tL), 0.5 * (tR - tL)
		gp        = half / math.Sqrt(3)
	)
	for _, t := range [2]float64{mid - gp, mid + gp} {
		dm := qm[1] + 2*qm[2]*t
		dn := qn[1] + 2*qn[2]*t
		v += dm * dn
	}
	v *= half
	return
}

// integrateD2 integrates q_m'' * q_n'' over [tL,tR]; both are constants.
func integrateD2(qm, qn [3]float64, tL, tR float64) float64 {
	return 4 * qm[2] * qn[2] * (tR - tL)
}

// buildAxisTable precomputes the reconstruction tables for one axis.
// Uniform axes need no per-index storage.
func buildAxisTable(ax grid.Axis, order int) (t axisTable) {
	if ax.Stretch == grid.Uniform {
		t.uniform = true
		return
	}
	for b := 0; b < 2; b++ {
		t.tables[b][AtFace] = make([]windowTable, ax.N+1)
		t.tables[b][AtCenter] = make([]windowTable, ax.N)
		for i := 0; i <= ax.N; i++ {
			t.tables[b][AtFace][i] = buildStretchedWindows(ax, order, Bias(b), AtFace, i)
		}
		for i := 0; i < ax.N; i++ {
			t.tables[b][AtCenter][i] = buildStretchedWindows(ax, order, Bias(b), AtCenter, i)
		}
	}
	return
}

/*
buildStretchedWindows assembles the window geometry at one index. Face
targets reconstruct a center field at face i from cells; center targets
reconstruct a face field at center i, treating face samples as averages
over the dual cells bounded by centers. Right-biased geometry is reflected
about the target so the left-bias construction applies verbatim, yielding
tables in mirrored read order.
*/
func buildStretchedWindows(ax grid.Axis, order int, bias Bias, target Target, i int) (wt windowTable) {
	var (
		ws    = windowSize(order)
		nodes = make([]float64, ws+1)
	)
	for r := 0; r < ws; r++ {
		var loSample int
		var xEval, xL, xR float64
		switch {
		case target == AtFace && bias == Left:
			loSample = i - 1 - r
			xEval, xL, xR = ax.XFace(i), ax.XFace(i-1), ax.XFace(i)
		case target == AtFace && bias == Right:
			loSample = i - ws + 1 + r
			xEval, xL, xR = ax.XFace(i), ax.XFace(i), ax.XFace(i+1)
		case target == AtCenter && bias == Left:
			loSample = i - r
			xEval, xL, xR = ax.XCenter(i), ax.XCenter(i-1), ax.XCenter(i)
		default: // AtCenter, Right
			loSample = i - ws + 2 + r
			xEval, xL, xR = ax.XCenter(i), ax.XCenter(i), ax.XCenter(i+1)
		}
		// Bounding nodes of the ws sample cells: faces for cell samples,
		// centers for the dual cells of face samples.
		for m := 0; m <= ws; m++ {
			if target == AtFace {
				nodes[m] = ax.XFace(loSample + m)
			} else {
				nodes[m] = ax.XCenter(loSample - 1 + m)
			}
		}
		if bias == Right {
			reflect(nodes)
			xEval, xL, xR = -xEval, -xR, -xL
		}
		c, d, o := buildWindow(nodes, xEval, xL, xR)
		wt.C[r], wt.D[r], wt.O[r] = c, d, o
	}
	return
}

// reflect negates and reverses a coordinate array in place, keeping it
// ascending.
func reflect(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = -x[j], -x[i]
	}
	if len(x)%2 == 1 {
		x[len(x)/2] = -x[len(x)/2]
	}
}
