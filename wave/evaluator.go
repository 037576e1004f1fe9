// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// evaluator.go - closed-form evaluation of the standing wave
//
//	U(x, y, tᵢ) = sin(π·x/L) · sin(π·y/L) · cos(2·i·dt)
//
// over a coordinate grid for every time index i in [0, n).
//
// Contract:
//   - Slice i depends only on (X, Y, L, dt, i); it is computed fresh from i,
//     never from slice i-1, so no numerical drift accumulates.
//   - Slice 0 equals the spatial factor exactly (cos 0 == 1).
//   - Output order is by time index regardless of worker completion order.
//   - No I/O, no retained state between calls.

package wave

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
)

// Evaluate computes the Amplitude Volume for n time steps.
//
// MAIN DESCRIPTION:
//   - S = sin(π·X/L) ∘ sin(π·Y/L) is computed once (Hadamard product).
//   - Slice i = S · cos(2·i·dt), a scalar multiple of S.
//
// Implementation:
//   - Stage 1: validate n, dt, sideLength (ErrInvalidParameter), then X/Y
//     (matrix.ErrNilMatrix / matrix.ErrDimensionMismatch).
//   - Stage 2: build the spatial factor S.
//   - Stage 3: partition [0, n) into contiguous ranges, one per worker, and
//     scale S into each slot. Workers write disjoint slots; no locks.
//
// Options:
//   - WithWorkers(k): goroutine bound (default GOMAXPROCS).
//   - WithContext(ctx): cancellation checked between slices.
//
// Complexity:
//   - Time O(rows·cols·n), Space O(rows·cols·n).
func Evaluate(X, Y matrix.Matrix, sideLength, dt float64, n int, opts ...Option) (*Volume, error) {
	// Stage 1: Validate scalars, then operands.
	p := Params{SideLength: sideLength, Dt: dt, Steps: n}
	if err := p.validate(MethodEvaluate); err != nil {
		return nil, err
	}
	cfg := newEvalConfig(opts...)

	// Stage 2: Spatial factor.
	spatial, err := spatialFactor(MethodEvaluate, X, Y, sideLength)
	if err != nil {
		return nil, err
	}

	// Stage 3: Slices.
	slices, err := evaluateSlices(cfg, spatial, p)
	if err != nil {
		return nil, err
	}

	return newVolume(p, slices)
}

// EvaluateGrid is Evaluate over g's coordinate pair with L = g.HalfWidth().
func EvaluateGrid(g *grid.Grid, dt float64, n int, opts ...Option) (*Volume, error) {
	if g == nil {
		return nil, paramErrorf(MethodEvaluateGrid, "grid", nil, "non-nil grid")
	}

	return Evaluate(g.X(), g.Y(), g.HalfWidth(), dt, n, opts...)
}

// spatialFactor returns sin(π·X/L) ∘ sin(π·Y/L) as a new Dense.
func spatialFactor(method string, X, Y matrix.Matrix, sideLength float64) (*matrix.Dense, error) {
	if err := matrix.ValidatePair(X, Y); err != nil {
		return nil, wrapf(method, "X/Y", err)
	}
	profile := func(_, _ int, v float64) float64 { return math.Sin(math.Pi * v / sideLength) }

	sx, err := matrix.Map(X, profile)
	if err != nil {
		return nil, wrapf(method, "X", err)
	}
	sy, err := matrix.Map(Y, profile)
	if err != nil {
		return nil, wrapf(method, "Y", err)
	}
	s, err := matrix.Hadamard(sx, sy)
	if err != nil {
		return nil, wrapf(method, "X∘Y", err)
	}

	return s.(*matrix.Dense), nil
}

// sliceAt computes slice i of the volume described by p.
func sliceAt(spatial *matrix.Dense, p Params, i int) (*matrix.Dense, error) {
	m, err := matrix.Scale(spatial, p.TemporalFactor(i))
	if err != nil {
		return nil, fmt.Errorf("slice %d: %w", i, err)
	}

	return m.(*matrix.Dense), nil
}

// evaluateSlices fills n slots in index order.
//
// The range [0, n) is cut into at most cfg.workers contiguous chunks; each
// chunk runs under an errgroup whose limit equals the worker count. The
// first failure (including ctx cancellation) cancels the remaining chunks.
func evaluateSlices(cfg evalConfig, spatial *matrix.Dense, p Params) ([]*matrix.Dense, error) {
	n := p.Steps
	out := make([]*matrix.Dense, n)

	workers := cfg.workers
	if workers > n {
		workers = n
	}
	// Sequential path: no goroutines.
	if workers <= 1 {
		if err := fillRange(cfg.ctx, spatial, p, out, 0, n); err != nil {
			return nil, wrapf(MethodEvaluate, "slices", err)
		}

		return out, nil
	}

	g, ctx := errgroup.WithContext(cfg.ctx)
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			return fillRange(ctx, spatial, p, out, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapf(MethodEvaluate, "slices", err)
	}

	return out, nil
}

// fillRange writes slices [lo, hi) into out, checking ctx before each slice.
func fillRange(ctx context.Context, spatial *matrix.Dense, p Params, out []*matrix.Dense, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := sliceAt(spatial, p, i)
		if err != nil {
			return err
		}
		out[i] = s
	}

	return nil
}
