/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceandyn/gocean/catke"
	"github.com/oceandyn/gocean/grid"
	"github.com/oceandyn/gocean/utils"
)

// catkeCmd evaluates the mixing length closure on a single column
var catkeCmd = &cobra.Command{
	Use:   "catke",
	Short: "Single column CATKE mixing length profiles",
	Long: `
Evaluates the momentum, tracer and TKE mixing lengths of the CATKE closure
for an idealized stratified, sheared column,

gocean catke -n 32 --depth 100 --set canonical`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			n, _       = cmd.Flags().GetInt("n")
			depth, _   = cmd.Flags().GetFloat64("depth")
			setName, _ = cmd.Flags().GetString("set")
			qb, _      = cmd.Flags().GetFloat64("surfaceFlux")
		)
		params, err := catke.ParameterSet(setName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		var (
			zAxis = grid.NewUniformAxis(n, 3, grid.Bounded, -depth, 0)
			hAxis = grid.NewUniformAxis(1, 3, grid.Periodic, 0, 1)
			g     = grid.NewRectilinearGrid(hAxis, hAxis, zAxis)
			u     = make([]float64, n)
			v     = utils.ConstArray(n, 0)
			b     = make([]float64, n)
			e     = make([]float64, n)
		)
		// Sheared upper layer over a stratified interior, TKE decaying
		// with depth.
		for k := 0; k < n; k++ {
			z := zAxis.XCenter(k)
			u[k] = 0.1 * math.Exp(z/20)
			b[k] = 1.0e-4 * (z + depth)
			e[k] = 1.0e-4 * math.Exp(z/30)
		}
		m := catke.NewMixingLengthModel(g, params,
			catke.ColumnGradients(zAxis, u, v, b, e, qb))
		fmt.Printf("%10s %12s %12s %12s\n", "z", "l_u", "l_c", "l_e")
		for k := n - 1; k >= 0; k-- {
			fmt.Printf("%10.3f %12.5f %12.5f %12.5f\n", zAxis.XCenter(k),
				m.MomentumMixingLength(0, 0, k),
				m.TracerMixingLength(0, 0, k),
				m.TKEMixingLength(0, 0, k))
		}
	},
}

func init() {
	rootCmd.AddCommand(catkeCmd)
	catkeCmd.Flags().Int("n", 32, "Number of vertical cells")
	catkeCmd.Flags().Float64("depth", 100, "Column depth")
	catkeCmd.Flags().String("set", "canonical", "Named closure coefficient set")
	catkeCmd.Flags().Float64("surfaceFlux", 0, "Surface buoyancy flux")
}
