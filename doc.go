// Package standwave is a small toolkit for evaluating and animating the
// 2D standing wave on a square plate:
//
//	U(x, y, t) = sin(π·x/L) · sin(π·y/L) · cos(2·t),   t = i·dt
//
// 🚀 What is standwave?
//
//	A closed-form evaluator plus the plumbing around it:
//		• Coordinate grids: uniform axes over [-L, L], meshgrid X/Y
//		• Evaluation: eager (Volume) or lazy (Stream), optionally parallel
//		• Frame selection: every k-th slice with a shared colour scale
//		• Rendering: shaded 3D surface, colorbar, HUD, five encoders
//		• Export: msgpack snapshots that round-trip bit for bit
//
// ✨ Why standwave?
//
//   - No time stepping: every slice is computed from its own index, so
//     there is no drift and parallel runs match sequential ones exactly.
//   - Sentinel errors everywhere, matched with errors.Is.
//   - One configuration file (YAML or HJSON) drives the whole CLI.
//
// Packages:
//
//	matrix/ - row-major Dense storage, element-wise ops, validators
//	grid/   - BuildAxis, BuildGrid, Grid
//	wave/   - Params, Evaluate, Volume, SelectFrames, Stream
//	render/ - Renderer, colormaps, Animate, encoders, trace plot
//	export/ - msgpack Volume snapshots
//	config/ - run configuration, defaults and validation
//	cmd/standwave/ - the command-line driver
//
// Quick start:
//
//	g, _ := grid.New(5, 100)
//	vol, _ := wave.EvaluateGrid(g, 0.1, 300)
//	seq, _ := wave.SelectFrames(vol, 1)
//	enc, _ := render.NewEncoder(render.EncoderAVI, "wave_animation.avi", 800, 600, 15)
//	_ = render.Animate(ctx, g, seq, enc)
//	_ = enc.Close()
//
//	go install github.com/katalvlaran/standwave/cmd/standwave@latest
package standwave
