package wave_test

import (
	"fmt"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/wave"
)

// ExampleEvaluateGrid evaluates the default plate and reports the volume shape.
func ExampleEvaluateGrid() {
	g, _ := grid.New(5, 100)
	n, _ := wave.StepCount(30, 0.1)

	vol, err := wave.EvaluateGrid(g, 0.1, n)
	if err != nil {
		fmt.Println(err)
		return
	}
	rows, cols, steps := vol.Shape()
	fmt.Println(rows, cols, steps)
	// Output:
	// 100 100 300
}

// ExampleEvaluate_invalid shows the error reported for n = 0.
func ExampleEvaluate_invalid() {
	g, _ := grid.New(5, 10)
	_, err := wave.Evaluate(g.X(), g.Y(), 5, 0.1, 0)
	fmt.Println(err)
	// Output:
	// Evaluate: n=0 violates n >= 1: wave: invalid parameter
}

// ExampleSelectFrames keeps every tenth slice of a 300-step run.
func ExampleSelectFrames() {
	g, _ := grid.New(5, 20)
	vol, _ := wave.EvaluateGrid(g, 0.1, 300)

	seq, _ := wave.SelectFrames(vol, 10)
	first, _ := seq.At(0)
	last, _ := seq.At(seq.Len() - 1)
	fmt.Println(seq.Len(), first.Index, last.Index)
	// Output:
	// 30 0 290
}

// ExampleStream_All walks a lazy stream and reads an antinode probe.
func ExampleStream_All() {
	g, _ := grid.New(1, 5) // axis -1, -0.5, 0, 0.5, 1
	st, _ := wave.NewGridStream(g, 0.1, 3)

	for i, s := range st.All() {
		v, _ := s.At(1, 1) // (-0.5, -0.5): sin(-π/2)² = 1, so v = cos(2·i·dt)
		fmt.Printf("%d %.3f\n", i, v)
	}
	// Output:
	// 0 1.000
	// 1 0.980
	// 2 0.921
}
