// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// frames.go - stride subsampling of a Volume into an ordered Frame Sequence.

package wave

import (
	"fmt"

	"github.com/katalvlaran/standwave/matrix"
)

// Frame is one time slice handed to a renderer.
type Frame struct {
	Index int           // time index i in the source volume
	Time  float64       // i·dt
	Data  *matrix.Dense // shared read-only slice
}

// FrameSequence is an ordered, immutable view of selected volume slices.
type FrameSequence struct {
	frames []Frame
	stride int
	total  int
	params Params
	lo, hi float64
}

// SelectFrames keeps slices 0, k, 2k, … up to the last valid index, giving
// ceil(n/k) frames. stride 1 reproduces every slice in order.
//
// Errors:
//   - ErrInvalidParameter when v is nil or stride < 1.
//
// Complexity: O(n/k) headers plus one extrema scan over the kept frames.
func SelectFrames(v *Volume, stride int) (*FrameSequence, error) {
	if v == nil {
		return nil, paramErrorf(MethodSelectFrames, "volume", nil, "non-nil volume")
	}
	if stride < 1 {
		return nil, paramErrorf(MethodSelectFrames, "stride", stride, "stride >= 1")
	}

	n := v.Steps()
	frames := make([]Frame, 0, (n+stride-1)/stride)
	kept := make([]*matrix.Dense, 0, cap(frames))
	for i := 0; i < n; i += stride {
		frames = append(frames, Frame{Index: i, Time: v.Time(i), Data: v.slices[i]})
		kept = append(kept, v.slices[i])
	}
	lo, hi := extremaOf(kept)

	return &FrameSequence{
		frames: frames,
		stride: stride,
		total:  n,
		params: v.params,
		lo:     lo,
		hi:     hi,
	}, nil
}

// Len returns the number of frames.
func (s *FrameSequence) Len() int { return len(s.frames) }

// At returns frame k of the sequence (not time index k).
func (s *FrameSequence) At(k int) (Frame, error) {
	if k < 0 || k >= len(s.frames) {
		return Frame{}, fmt.Errorf("FrameSequence.At: k=%d: %w", k, matrix.ErrOutOfRange)
	}

	return s.frames[k], nil
}

// Frames returns the frames in order (new header).
func (s *FrameSequence) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)

	return out
}

// Stride returns k.
func (s *FrameSequence) Stride() int { return s.stride }

// SourceSteps returns n of the volume the frames were selected from.
func (s *FrameSequence) SourceSteps() int { return s.total }

// Params returns the evaluation scalars of the source volume.
func (s *FrameSequence) Params() Params { return s.params }

// Extrema returns min/max amplitude across the selected frames; renderers
// use it for a colour and z scale shared by every frame.
func (s *FrameSequence) Extrema() (lo, hi float64) { return s.lo, s.hi }
