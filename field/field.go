package field

import (
	"fmt"

	"github.com/oceandyn/gocean/grid"
)

// Location is the staggering of a field along one axis.
type Location uint8

const (
	Center Location = iota
	Face
)

// Sampler is the sampling contract shared by stored fields and lazily
// evaluated derived quantities: a float64 value at a signed cell index,
// including halo indices.
type Sampler interface {
	Sample(i, j, k int) float64
}

// Func adapts a function to the Sampler contract, so a derived quantity
// can feed a stencil without being materialized.
type Func func(i, j, k int) float64

func (f Func) Sample(i, j, k int) float64 { return f(i, j, k) }

/*
Field is a halo-padded 3D array of float64 samples with a fixed staggering
per axis. Indices are signed and may reach into the halo; index -Halo..N-1+Halo
is valid along a Center axis, with one extra sample along Face axes.
*/
type Field struct {
	Grid *grid.RectilinearGrid
	Loc  [3]Location
	Data []float64

	n, halo, stride [3]int
}

func NewField(g *grid.RectilinearGrid, loc [3]Location) (f *Field) {
	f = &Field{Grid: g, Loc: loc}
	size := 1
	for d := 0; d < 3; d++ {
		ax := g.Axis(d)
		f.n[d] = ax.N + 2*ax.Halo
		if loc[d] == Face {
			f.n[d]++
		}
		f.halo[d] = ax.Halo
		f.stride[d] = size
		size *= f.n[d]
	}
	f.Data = make([]float64, size)
	return
}

func (f *Field) index(i, j, k int) int {
	var (
		ii = i + f.halo[0]
		jj = j + f.halo[1]
		kk = k + f.halo[2]
	)
	if ii < 0 || ii >= f.n[0] || jj < 0 || jj >= f.n[1] || kk < 0 || kk >= f.n[2] {
		panic(fmt.Sprintf("field: index (%d,%d,%d) outside halo-padded extent", i, j, k))
	}
	return ii*f.stride[0] + jj*f.stride[1] + kk*f.stride[2]
}

func (f *Field) At(i, j, k int) float64 { return f.Data[f.index(i, j, k)] }

func (f *Field) Set(i, j, k int, v float64) { f.Data[f.index(i, j, k)] = v }

func (f *Field) Sample(i, j, k int) float64 { return f.At(i, j, k) }

// Fill evaluates fn over the interior (halo excluded) and stores the result.
func (f *Field) Fill(fn func(i, j, k int) float64) {
	var ni, nj, nk = f.interiorDims()
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				f.Set(i, j, k, fn(i, j, k))
			}
		}
	}
}

// FillConstant sets every sample, halo included.
func (f *Field) FillConstant(v float64) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

func (f *Field) interiorDims() (ni, nj, nk int) {
	ni = f.n[0] - 2*f.halo[0]
	nj = f.n[1] - 2*f.halo[1]
	nk = f.n[2] - 2*f.halo[2]
	return
}

/*
FillHalos populates the halo samples from the interior: periodic axes wrap,
bounded axes extend the end value (zero normal gradient). Halo filling
belongs to the driver side of the solver; reconstruction kernels only ever
read halos, never write them.
*/
func (f *Field) FillHalos() {
	for d := 0; d < 3; d++ {
		f.fillAxisHalo(d)
	}
}

func (f *Field) fillAxisHalo(d int) {
	var (
		ax       = f.Grid.Axis(d)
		h        = f.halo[d]
		n        = f.n[d] - 2*h // interior samples along d, Face axes carry one extra
		period   = n
		periodic = ax.Topo == grid.Periodic
	)
	if h == 0 {
		return
	}
	if f.Loc[d] == Face {
		// face N coincides with face 0, so the wrap period stays at the
		// cell count N, one less than the stored face samples
		period = n - 1
	}
	// iterate every line along axis d
	var od1, od2 = (d + 1) % 3, (d + 2) % 3
	for b := 0; b < f.n[od2]; b++ {
		for a := 0; a < f.n[od1]; a++ {
			for m := 1; m <= h; m++ {
				var lo, hi float64
				if periodic {
					lo = f.lineAt(d, period-m, a, b)
					hi = f.lineAt(d, (n-1+m)%period, a, b)
				} else {
					lo = f.lineAt(d, 0, a, b)
					hi = f.lineAt(d, n-1, a, b)
				}
				f.lineSet(d, -m, a, b, lo)
				f.lineSet(d, n-1+m, a, b, hi)
			}
		}
	}
}

// lineAt reads sample m along axis d on the line selected by raw transverse
// array offsets a, b (axis d+1, d+2 cyclically).
func (f *Field) lineAt(d, m, a, b int) float64 {
	return f.Data[f.lineIndex(d, m, a, b)]
}

func (f *Field) lineSet(d, m, a, b int, v float64) {
	f.Data[f.lineIndex(d, m, a, b)] = v
}

func (f *Field) lineIndex(d, m, a, b int) int {
	var od1, od2 = (d + 1) % 3, (d + 2) % 3
	return (m+f.halo[d])*f.stride[d] + a*f.stride[od1] + b*f.stride[od2]
}

// MinMax scans the interior samples.
func (f *Field) MinMax() (min, max float64) {
	var ni, nj, nk = f.interiorDims()
	min, max = f.At(0, 0, 0), f.At(0, 0, 0)
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				v := f.At(i, j, k)
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
		}
	}
	return
}
