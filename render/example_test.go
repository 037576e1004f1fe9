package render_test

import (
	"fmt"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/render"
	"github.com/katalvlaran/standwave/wave"
)

// ExampleNewRenderer draws the first frame of a short run.
func ExampleNewRenderer() {
	g, _ := grid.New(5, 30)
	vol, _ := wave.EvaluateGrid(g, 0.1, 10)
	seq, _ := wave.SelectFrames(vol, 2)

	lo, hi := seq.Extrema()
	r, err := render.NewRenderer(g, lo, hi, render.WithSize(320, 240), render.WithColormap(render.ColormapViridis))
	if err != nil {
		fmt.Println(err)
		return
	}
	f, _ := seq.At(0)
	img, _ := r.Render(f, 0, seq.Len())
	fmt.Println(img.Bounds().Dx(), img.Bounds().Dy(), seq.Len())
	// Output:
	// 320 240 5
}

// ExampleEncoderKinds lists the available output backends.
func ExampleEncoderKinds() {
	fmt.Println(render.EncoderKinds())
	fmt.Println(render.ColormapNames())
	// Output:
	// [avi gif gst mp4 png]
	// [BlackBody BlueRed Gray RdPu Viridis]
}

// ExampleLookupColormap reports an unknown name.
func ExampleLookupColormap() {
	_, err := render.LookupColormap("jet")
	fmt.Println(err)
	// Output:
	// LookupColormap: name="jet": render: unknown colormap
}
