package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SolverParameters struct {
	Title        string     `yaml:"Title"`
	CFL          float64    `yaml:"CFL"`
	FinalTime    float64    `yaml:"FinalTime"`
	N            int        `yaml:"N"` // cells per axis of the periodic box
	Velocity     [3]float64 `yaml:"Velocity"`
	Blending     string     `yaml:"Blending"` // JS or Z
	BoundsLo     *float64   `yaml:"BoundsLo"`
	BoundsHi     *float64   `yaml:"BoundsHi"`
	ParameterSet string     `yaml:"ParameterSet"` // named CATKE coefficient set
	SurfaceFlux  float64    `yaml:"SurfaceFlux"`  // surface buoyancy flux for column runs
	Threads      int        `yaml:"Threads"`
}

func (sp *SolverParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SolverParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", sp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("[%d]\t\t\t= N\n", sp.N)
	fmt.Printf("%v\t= Velocity\n", sp.Velocity)
	fmt.Printf("[%s]\t\t\t= Blending\n", sp.Blending)
	if sp.BoundsLo != nil && sp.BoundsHi != nil {
		fmt.Printf("[%g,%g]\t\t= Bounds\n", *sp.BoundsLo, *sp.BoundsHi)
	}
	fmt.Printf("[%s]\t\t= ParameterSet\n", sp.ParameterSet)
}
