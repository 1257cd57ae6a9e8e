package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

/*
Reads a CSV of tracer advection convergence studies and prints the
observed order between successive resolutions. Each study row is

	title, blending, CFL, N, psiRMS, psiMAX

grouped by title; rows within a study must be ordered coarse to fine.
*/

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s, Blending = %s, CFL = %5.2f\n", cs.title, cs.blending, cs.CFL)
		for i := range cs.numCells {
			fmt.Printf("%d, %v, %v", cs.numCells[i], cs.psiRMS[i], cs.psiMAX[i])
			if i > 0 {
				fmt.Printf(", order(RMS) = %5.2f, order(MAX) = %5.2f",
					observedOrder(cs.numCells[i-1], cs.numCells[i], cs.psiRMS[i-1], cs.psiRMS[i]),
					observedOrder(cs.numCells[i-1], cs.numCells[i], cs.psiMAX[i-1], cs.psiMAX[i]))
			}
			fmt.Printf("\n")
		}
	}
}

// observedOrder is log(eCoarse/eFine) / log(nFine/nCoarse).
func observedOrder(nCoarse, nFine int, eCoarse, eFine float64) float64 {
	return math.Log(eCoarse/eFine) / math.Log(float64(nFine)/float64(nCoarse))
}

type ConvergenceStudy struct {
	title          string
	blending       string
	CFL            float64
	numCells       []int
	psiRMS, psiMAX []float64
}

func NewConvergenceStudy(title, blending string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:    title,
		blending: blending,
		CFL:      CFL,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, psiRMS, psiMAX float64) {
	cs.numCells = append(cs.numCells, numCells)
	cs.psiRMS = append(cs.psiRMS, psiRMS)
	cs.psiMAX = append(cs.psiMAX, psiMAX)
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records        [][]string
		err            error
		f              *os.File
		ok             bool
		cs             *ConvergenceStudy
		cfl            float64
		numCells       int
		psiRMS, psiMAX float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if len(rec) != 6 {
			panic(fmt.Errorf("line %d: expected 6 fields, got %d", i+1, len(rec)))
		}
		var (
			title    = rec[0]
			blending = rec[1]
		)
		if cfl, err = strconv.ParseFloat(rec[2], 64); err != nil {
			panic(err)
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title, blending, cfl)
			studies[title] = cs
		}
		if numCells, err = strconv.Atoi(rec[3]); err != nil {
			panic(err)
		}
		if psiRMS, err = strconv.ParseFloat(rec[4], 64); err != nil {
			panic(err)
		}
		if psiMAX, err = strconv.ParseFloat(rec[5], 64); err != nil {
			panic(err)
		}
		cs.Add(numCells, psiRMS, psiMAX)
	}
	return
}
