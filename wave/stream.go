// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// stream.go - lazy, finite, restartable production of time slices.
//
// A Stream keeps only the spatial factor (rows×cols); each slice is scaled
// on demand and handed to the consumer, which owns it from then on. Every
// iteration restarts at index 0 and yields values bit-identical to Evaluate.

package wave

import (
	"iter"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
)

// Stream produces the slices of an Amplitude Volume one at a time.
type Stream struct {
	spatial *matrix.Dense
	params  Params
	slo     float64 // spatial factor extrema
	shi     float64
}

// NewStream validates exactly like Evaluate and precomputes the spatial
// factor; no slice is evaluated until iteration.
func NewStream(X, Y matrix.Matrix, sideLength, dt float64, n int) (*Stream, error) {
	p := Params{SideLength: sideLength, Dt: dt, Steps: n}
	if err := p.validate(MethodNewStream); err != nil {
		return nil, err
	}
	spatial, err := spatialFactor(MethodNewStream, X, Y, sideLength)
	if err != nil {
		return nil, err
	}
	lo, hi, err := matrix.Extrema(spatial)
	if err != nil {
		return nil, wrapf(MethodNewStream, "extrema", err)
	}

	return &Stream{spatial: spatial, params: p, slo: lo, shi: hi}, nil
}

// NewGridStream is NewStream over g with L = g.HalfWidth().
func NewGridStream(g *grid.Grid, dt float64, n int) (*Stream, error) {
	if g == nil {
		return nil, paramErrorf(MethodNewStream, "grid", nil, "non-nil grid")
	}

	return NewStream(g.X(), g.Y(), g.HalfWidth(), dt, n)
}

// Len returns n.
func (s *Stream) Len() int { return s.params.Steps }

// Params returns the evaluation scalars.
func (s *Stream) Params() Params { return s.params }

// Shape returns the slice shape (rows, cols).
func (s *Stream) Shape() (rows, cols int) { return s.spatial.Shape() }

// All yields (i, slice i) for i = 0..n-1. Breaking out of the loop stops
// evaluation; ranging again starts over.
func (s *Stream) All() iter.Seq2[int, *matrix.Dense] {
	return func(yield func(int, *matrix.Dense) bool) {
		for i := 0; i < s.params.Steps; i++ {
			m, err := sliceAt(s.spatial, s.params, i)
			if err != nil {
				// Unreachable: the temporal factor is always finite.
				return
			}
			if !yield(i, m) {
				return
			}
		}
	}
}

// Frames yields the frames at indices 0, stride, 2·stride, …, matching
// SelectFrames on the equivalent Volume.
// Errors: ErrInvalidParameter when stride < 1.
func (s *Stream) Frames(stride int) (iter.Seq[Frame], error) {
	if stride < 1 {
		return nil, paramErrorf(MethodStreamFrames, "stride", stride, "stride >= 1")
	}

	return func(yield func(Frame) bool) {
		for i := 0; i < s.params.Steps; i += stride {
			m, err := sliceAt(s.spatial, s.params, i)
			if err != nil {
				return
			}
			if !yield(Frame{Index: i, Time: s.params.Time(i), Data: m}) {
				return
			}
		}
	}, nil
}

// FrameCount returns ceil(n/stride), the length of Frames(stride).
func (s *Stream) FrameCount(stride int) int {
	if stride < 1 {
		return 0
	}

	return (s.params.Steps + stride - 1) / stride
}

// Extrema returns the global min/max over all n slices.
func (s *Stream) Extrema() (lo, hi float64) { return s.StrideExtrema(1) }

// StrideExtrema returns min/max over the slices Frames(stride) would yield.
//
// Each slice is S·c with scalar c, and rounding is monotone, so the extrema
// of slice i are exactly {c·min S, c·max S} ordered by the sign of c. The
// pass touches n/stride scalars rather than every grid point.
func (s *Stream) StrideExtrema(stride int) (lo, hi float64) {
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < s.params.Steps; i += stride {
		c := s.params.TemporalFactor(i)
		a, b := s.slo*c, s.shi*c
		if c < 0 {
			a, b = b, a
		}
		if i == 0 || a < lo {
			lo = a
		}
		if i == 0 || b > hi {
			hi = b
		}
	}

	return lo, hi
}
