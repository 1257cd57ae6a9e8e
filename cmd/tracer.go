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
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oceandyn/gocean/InputParameters"
	"github.com/oceandyn/gocean/model_problems/Tracer3D"
	"github.com/oceandyn/gocean/weno"
)

// tracerCmd runs the periodic tracer advection model problem
var tracerCmd = &cobra.Command{
	Use:   "tracer",
	Short: "Periodic 3D tracer advection with WENO reconstruction",
	Long: `
Advects a passive tracer through a triply periodic unit box with a uniform
velocity, using fifth order WENO face reconstruction and SSP-RK3 stepping,

gocean tracer -n 64 --finalTime 1.0`,
	Run: func(cmd *cobra.Command, args []string) {
		sp := &InputParameters.SolverParameters{}
		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Printf("unable to read input file: %v\n", err)
				os.Exit(1)
			}
			if err = sp.Parse(data); err != nil {
				fmt.Printf("unable to parse input file: %v\n", err)
				os.Exit(1)
			}
			sp.Print()
		}
		if sp.N == 0 {
			sp.N, _ = cmd.Flags().GetInt("n")
		}
		if sp.CFL == 0 {
			sp.CFL, _ = cmd.Flags().GetFloat64("CFL")
		}
		if sp.FinalTime == 0 {
			sp.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		if sp.Blending == "" {
			sp.Blending, _ = cmd.Flags().GetString("blending")
		}
		if sp.Velocity == [3]float64{} {
			sp.Velocity[0], _ = cmd.Flags().GetFloat64("u")
			sp.Velocity[1], _ = cmd.Flags().GetFloat64("v")
			sp.Velocity[2], _ = cmd.Flags().GetFloat64("w")
		}
		if sp.Threads == 0 {
			sp.Threads = runtime.NumCPU()
		}
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		blend := weno.JS
		if sp.Blending == "Z" {
			blend = weno.Z
		}
		var bounds *weno.Bounds
		if sp.BoundsLo != nil && sp.BoundsHi != nil {
			bounds = &weno.Bounds{Lo: *sp.BoundsLo, Hi: *sp.BoundsHi}
		}
		c := Tracer3D.NewTracer(sp.N, sp.Velocity[0], sp.Velocity[1], sp.Velocity[2],
			sp.CFL, sp.FinalTime, blend, bounds, sp.Threads)
		c.Run()
	},
}

func init() {
	rootCmd.AddCommand(tracerCmd)
	tracerCmd.Flags().Int("n", 32, "Number of cells per axis")
	tracerCmd.Flags().Float64("CFL", 0.5, "CFL - increase for speedup, decrease for stability")
	tracerCmd.Flags().Float64("finalTime", 0.5, "FinalTime - the target end time for the run")
	tracerCmd.Flags().Float64("u", 1, "x velocity")
	tracerCmd.Flags().Float64("v", 0, "y velocity")
	tracerCmd.Flags().Float64("w", 0, "z velocity")
	tracerCmd.Flags().String("blending", "Z", "nonlinear weight blending: JS or Z")
	tracerCmd.Flags().String("input", "", "YAML input parameter file")
	tracerCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
