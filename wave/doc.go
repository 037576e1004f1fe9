// SPDX-License-Identifier: MIT

// Package wave evaluates the separable standing wave
//
//	U(x, y, tᵢ) = sin(π·x/L) · sin(π·y/L) · cos(2·i·dt)
//
// on a coordinate grid for every time index i in [0, n), and exposes the
// result as an Amplitude Volume of shape (rows, cols, n).
//
// The package offers the following key components:
//
//   - Scalars:
//     – Params:         {SideLength, Dt, Steps} with Validate, Time, Phase.
//     – StepCount:      n = floor(total/dt).
//   - Eager evaluation:
//     – Evaluate:       X, Y, L, dt, n → *Volume (optionally parallel).
//     – EvaluateGrid:   same, reading X, Y and L from a *grid.Grid.
//     – Volume:         Shape, At, Slice, Slices, Extrema, Time.
//     – NewVolume:      reassemble a Volume from decoded slices.
//   - Frame selection:
//     – SelectFrames:   indices 0, k, 2k, … → *FrameSequence (ceil(n/k) frames).
//   - Lazy evaluation:
//     – Stream:         restartable iter.Seq2 of slices, no volume retained.
//
// Guarantees:
//
//   - Every slice is computed fresh from its index; no drift across time.
//   - Slice 0 is the spatial factor sin(π·X/L)·sin(π·Y/L), bit for bit.
//   - Parallel (WithWorkers(k)) and sequential evaluation agree bit for bit,
//     and output order never depends on completion order.
//   - The phase uses the literal factor 2 with no π: cos(2·i·dt).
//   - Invalid scalars return errors wrapping ErrInvalidParameter that name
//     the parameter and the violated constraint; nothing panics except
//     option constructors given meaningless values.
//
// Example:
//
//	g, _ := grid.New(5, 100)
//	n, _ := wave.StepCount(30, 0.1)          // 300
//	vol, err := wave.EvaluateGrid(g, 0.1, n) // shape (100, 100, 300)
//	if err != nil {
//	    return err
//	}
//	seq, _ := wave.SelectFrames(vol, 1)
//	lo, hi := seq.Extrema()
package wave
