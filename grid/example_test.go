package grid_test

import (
	"fmt"

	"github.com/katalvlaran/polytope/grid"
	"github.com/katalvlaran/polytope/matrix"
)

// ExampleGenerate enumerates every feasible unit-step perturbation for
// two candidate vectors.
//
// Scenario:
//
//	Two dimensions, two candidates p_0=[0,0] and p_1=[1,2], so the
//	reachable envelope is [0,1]×[0,2]. Deltas are bounded by ±1 per
//	dimension and discretized at step 1.0.
//
// Column 0 can only move up (it sits at the envelope minimum); column 1
// can only move down (it sits at the maximum).
func ExampleGenerate() {
	params, err := matrix.FromRows([][]float64{
		{0, 1},
		{0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := grid.DefaultOptions()
	opts.StepSize = 1.0

	samples, err := grid.Generate(params, []float64{-1, -1}, []float64{1, 1}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, s := range samples {
		fmt.Printf("p=%v delta=%v\n", s.Param, s.Delta)
	}
	// Output:
	// p=[0 0] delta=[0 0]
	// p=[0 0] delta=[0 1]
	// p=[0 0] delta=[1 0]
	// p=[0 0] delta=[1 1]
	// p=[1 2] delta=[-1 -1]
	// p=[1 2] delta=[-1 0]
	// p=[1 2] delta=[0 -1]
	// p=[1 2] delta=[0 0]
}

// ExampleWalk streams the same enumeration without materializing it,
// stopping as soon as enough samples have been seen.
func ExampleWalk() {
	params, err := matrix.FromRows([][]float64{
		{0, 1},
		{0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := grid.DefaultOptions()
	opts.StepSize = 1.0

	kept := 0
	err = grid.Walk(params, []float64{-1, -1}, []float64{1, 1}, &opts, func(s grid.Sample) bool {
		kept++

		return kept < 3 // stop early: no full product is ever built
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("visited:", kept)
	// Output:
	// visited: 3
}

// ExampleGenerateVector treats a plain vector as one dimension with
// three candidate scalars and sweeps each within the shared envelope.
func ExampleGenerateVector() {
	opts := grid.DefaultOptions()
	opts.StepSize = 0.5

	samples, err := grid.GenerateVector([]float64{0, 1, 2}, -0.5, 0.5, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("samples:", len(samples))
	// Output:
	// samples: 7
}
