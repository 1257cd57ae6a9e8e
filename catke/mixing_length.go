package catke

import (
	"fmt"
	"math"

	"github.com/oceandyn/gocean/grid"
	"github.com/oceandyn/gocean/utils"
)

/*
CATKE mixing-length closure.

Each of the three mixing lengths (momentum, tracer, TKE) is the sum of
three terms,

	l = l_grid + l_conv + sigma(Ri) * min(d, Cb*sqrt(e)/N, Cs*sqrt(e)/S)

where l_grid is a grid-proportional floor, l_conv switches on only while
convecting (N^2 < 0 and surface buoyancy flux Qb > 0, strict conjunction),
d is the distance to the nearer of surface and bottom, N the clipped
buoyancy frequency and S the resolved vertical shear. Vanishing N or S
makes the corresponding branch non-binding (+Inf) rather than dividing by
zero. The three outputs share the structure and differ only in
coefficients.
*/

// StabilityParameters is one five-parameter Richardson-number scaling
// family: sigma(Ri) = SigmaLo + (SigmaHi-SigmaLo)*step(Ri, RiCrit, RiWidth),
// with the shear reduced toward SigmaLo as stratification dominates.
// RiShift offsets the ramp argument, letting calibration move the ramp
// without reshaping it.
type StabilityParameters struct {
	SigmaLo float64 `yaml:"sigmaLo"`
	SigmaHi float64 `yaml:"sigmaHi"`
	RiCrit  float64 `yaml:"riCrit"`
	RiWidth float64 `yaml:"riWidth"`
	RiShift float64 `yaml:"riShift"`
}

// MixingLengthParameters holds the 23 scalar coefficients of the closure,
// grouped by term. All are fixed at construction; there is no mutable
// registry of named sets, see ParameterSet.
type MixingLengthParameters struct {
	// grid-proportional floor, l = Cdelta * dz
	CDeltaU float64 `yaml:"cDeltaU"`
	CDeltaC float64 `yaml:"cDeltaC"`
	CDeltaE float64 `yaml:"cDeltaE"`
	// convective scale, l = Cconv * dz while convecting
	CConvU float64 `yaml:"cConvU"`
	CConvC float64 `yaml:"cConvC"`
	CConvE float64 `yaml:"cConvE"`
	// buoyancy-limited scale Cb*sqrt(e)/N
	CBuoyU float64 `yaml:"cBuoyU"`
	CBuoyC float64 `yaml:"cBuoyC"`
	CBuoyE float64 `yaml:"cBuoyE"`
	// shear-limited scale Cs*sqrt(e)/S
	CShearU float64 `yaml:"cShearU"`
	CShearC float64 `yaml:"cShearC"`
	CShearE float64 `yaml:"cShearE"`
	// stability scaling, momentum and tracer/TKE families
	SigmaU StabilityParameters `yaml:"sigmaU"`
	SigmaT StabilityParameters `yaml:"sigmaT"`
	// floor on the TKE entering the sqrt(e) scales
	EMin float64 `yaml:"eMin"`
}

// Validate reports configuration errors; a zero ramp width would make the
// stability step undefined.
func (p MixingLengthParameters) Validate() error {
	if p.SigmaU.RiWidth <= 0 || p.SigmaT.RiWidth <= 0 {
		return fmt.Errorf("catke: stability ramp widths must be positive, got %g and %g",
			p.SigmaU.RiWidth, p.SigmaT.RiWidth)
	}
	if p.EMin < 0 {
		return fmt.Errorf("catke: TKE floor must be non-negative, got %g", p.EMin)
	}
	return nil
}

// Gradients is the narrow functional interface to the buoyancy model and
// resolved velocity field: vertical buoyancy gradient, vertical shear
// components, surface buoyancy flux and turbulent kinetic energy at a
// cell. The closure owns only the blending; the collaborators own the
// physics behind these numbers.
type Gradients struct {
	N2   func(i, j, k int) float64
	DUDz func(i, j, k int) float64
	DVDz func(i, j, k int) float64
	Qb   func(i, j int) float64
	TKE  func(i, j, k int) float64
}

// MixingLengthModel evaluates the closure on a grid. Immutable after
// construction; every method is a pure per-cell function safe for
// concurrent use.
type MixingLengthModel struct {
	Params MixingLengthParameters
	Grid   *grid.RectilinearGrid
	Grad   Gradients
}

func NewMixingLengthModel(g *grid.RectilinearGrid, p MixingLengthParameters, grad Gradients) (m *MixingLengthModel) {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
	m = &MixingLengthModel{Params: p, Grid: g, Grad: grad}
	return
}

// MomentumMixingLength is the length scale for momentum diffusivity at
// cell (i,j,k).
func (m *MixingLengthModel) MomentumMixingLength(i, j, k int) float64 {
	p := &m.Params
	return m.length(i, j, k, p.CDeltaU, p.CConvU, p.CBuoyU, p.CShearU, p.SigmaU)
}

// TracerMixingLength is the length scale for tracer diffusivity.
func (m *MixingLengthModel) TracerMixingLength(i, j, k int) float64 {
	p := &m.Params
	return m.length(i, j, k, p.CDeltaC, p.CConvC, p.CBuoyC, p.CShearC, p.SigmaT)
}

// TKEMixingLength is the length scale for TKE diffusivity; it shares the
// tracer stability family.
func (m *MixingLengthModel) TKEMixingLength(i, j, k int) float64 {
	p := &m.Params
	return m.length(i, j, k, p.CDeltaE, p.CConvE, p.CBuoyE, p.CShearE, p.SigmaT)
}

func (m *MixingLengthModel) length(i, j, k int, cDelta, cConv, cBuoy, cShear float64, sp StabilityParameters) float64 {
	var (
		dz     = m.Grid.Z.Spacing(k)
		n2     = m.Grad.N2(i, j, k)
		du     = m.Grad.DUDz(i, j, k)
		dv     = m.Grad.DVDz(i, j, k)
		shear2 = du*du + dv*dv
		e      = math.Max(m.Grad.TKE(i, j, k), m.Params.EMin)
	)
	lGrid := cDelta * dz

	var lConv float64
	if n2 < 0 && m.Grad.Qb(i, j) > 0 {
		lConv = cConv * dz
	}

	// Stability-limited scale: vanishing N or S makes its branch
	// non-binding instead of dividing by zero.
	var (
		sqrtE   = math.Sqrt(e)
		n       = math.Sqrt(math.Max(n2, 0))
		shear   = math.Sqrt(shear2)
		lStable = m.Grid.Z.WallDistance(k)
	)
	if n > 0 {
		lStable = math.Min(lStable, cBuoy*sqrtE/n)
	}
	if shear > 0 {
		lStable = math.Min(lStable, cShear*sqrtE/shear)
	}
	sigma := sp.SigmaLo + (sp.SigmaHi-sp.SigmaLo)*
		StabilityStep(RichardsonNumber(n2, shear2)-sp.RiShift, sp.RiCrit, sp.RiWidth)

	return lGrid + lConv + sigma*lStable
}

// RichardsonNumber is N^2 over the squared vertical shear, clamped to zero
// for unstable stratification. Zero shear under stable stratification
// yields +Inf, which the stability ramp saturates.
func RichardsonNumber(n2, shear2 float64) float64 {
	if n2 <= 0 {
		return 0
	}
	if shear2 == 0 {
		return math.Inf(1)
	}
	return n2 / shear2
}

// StabilityStep is the piecewise-linear ramp clamp((x-c)/w, 0, 1). A
// smooth tanh alternative existed in earlier calibrations and was
// disabled; the shipped behavior is the hard ramp.
func StabilityStep(x, c, w float64) float64 {
	return utils.Clamp((x-c)/w, 0, 1)
}
