package catke

import "fmt"

/*
Named coefficient sets are resolved once at construction into an immutable
MixingLengthParameters value. There is deliberately no process-wide
registry to mutate: adding a calibration means adding a case here.
*/

// ParameterSet returns a named calibration of the closure coefficients.
func ParameterSet(name string) (p MixingLengthParameters, err error) {
	switch name {
	case "canonical", "":
		p = MixingLengthParameters{
			CDeltaU: 0.5, CDeltaC: 0.5, CDeltaE: 0.5,
			CConvU: 0.0, CConvC: 1.82, CConvE: 1.82,
			CBuoyU: 0.6, CBuoyC: 0.35, CBuoyE: 1.26,
			CShearU: 0.42, CShearC: 0.42, CShearE: 1.25,
			SigmaU: StabilityParameters{SigmaLo: 0.46, SigmaHi: 0.93, RiCrit: 0.25, RiWidth: 0.5},
			SigmaT: StabilityParameters{SigmaLo: 0.37, SigmaHi: 0.72, RiCrit: 0.25, RiWidth: 0.5},
		}
	case "conservative":
		// Shorter convective plumes and a harder stability cut, for runs
		// where the resolved shear is poorly constrained.
		p = MixingLengthParameters{
			CDeltaU: 0.5, CDeltaC: 0.5, CDeltaE: 0.5,
			CConvU: 0.0, CConvC: 1.0, CConvE: 1.0,
			CBuoyU: 0.5, CBuoyC: 0.3, CBuoyE: 1.0,
			CShearU: 0.35, CShearC: 0.35, CShearE: 1.0,
			SigmaU: StabilityParameters{SigmaLo: 0.3, SigmaHi: 0.8, RiCrit: 0.2, RiWidth: 0.25},
			SigmaT: StabilityParameters{SigmaLo: 0.25, SigmaHi: 0.6, RiCrit: 0.2, RiWidth: 0.25},
			EMin:   1.0e-9,
		}
	default:
		err = fmt.Errorf("catke: unknown parameter set %q", name)
	}
	return
}
