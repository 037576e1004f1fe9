// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// volume.go - the Amplitude Volume, stored frame-major.
//
// Layout:
//   - n independent rows×cols *matrix.Dense slices; slice i holds time index i.
//   - Logical indexing is [row, col, i] to match the (x, y, t) shape.
//   - Immutable after construction; accessors return shared read-only slices.

package wave

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/standwave/matrix"
)

// Volume is the evaluated (rows, cols, n) amplitude array.
type Volume struct {
	params     Params
	rows, cols int
	slices     []*matrix.Dense

	extOnce sync.Once
	lo, hi  float64
}

// NewVolume assembles a Volume from pre-computed slices (e.g. a decoded
// snapshot). The slice headers are copied; the matrices are shared.
//
// Errors:
//   - ErrInvalidParameter when p is invalid, len(slices) != p.Steps, a slice
//     is nil, or the slices disagree on shape.
func NewVolume(p Params, slices []*matrix.Dense) (*Volume, error) {
	if err := p.validate(MethodNewVolume); err != nil {
		return nil, err
	}
	if len(slices) != p.Steps {
		return nil, paramErrorf(MethodNewVolume, "len(slices)", len(slices), fmt.Sprintf("len(slices) == n (%d)", p.Steps))
	}
	for i, s := range slices {
		if s == nil {
			return nil, paramErrorf(MethodNewVolume, fmt.Sprintf("slices[%d]", i), nil, "non-nil slice")
		}
		if s.Rows() != slices[0].Rows() || s.Cols() != slices[0].Cols() {
			return nil, paramErrorf(MethodNewVolume, fmt.Sprintf("slices[%d]", i),
				fmt.Sprintf("%dx%d", s.Rows(), s.Cols()), "equal slice shapes")
		}
	}
	cp := make([]*matrix.Dense, len(slices))
	copy(cp, slices)

	return newVolume(p, cp)
}

// newVolume wraps already validated slices without copying.
func newVolume(p Params, slices []*matrix.Dense) (*Volume, error) {
	return &Volume{
		params: p,
		rows:   slices[0].Rows(),
		cols:   slices[0].Cols(),
		slices: slices,
	}, nil
}

// Shape returns (rows, cols, n).
func (v *Volume) Shape() (rows, cols, steps int) { return v.rows, v.cols, len(v.slices) }

// Steps returns n.
func (v *Volume) Steps() int { return len(v.slices) }

// Params returns the scalars the volume was evaluated with.
func (v *Volume) Params() Params { return v.params }

// Time returns i·dt.
func (v *Volume) Time(i int) float64 { return v.params.Time(i) }

// At returns Volume[row, col, i].
// Errors: matrix.ErrOutOfRange for any index outside its axis.
func (v *Volume) At(row, col, i int) (float64, error) {
	if i < 0 || i >= len(v.slices) {
		return 0, fmt.Errorf("Volume.At: i=%d: %w", i, matrix.ErrOutOfRange)
	}

	return v.slices[i].At(row, col)
}

// Slice returns time slice i. The matrix is shared: do not mutate it.
// Errors: matrix.ErrOutOfRange when i is outside [0, n).
func (v *Volume) Slice(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(v.slices) {
		return nil, fmt.Errorf("Volume.Slice: i=%d: %w", i, matrix.ErrOutOfRange)
	}

	return v.slices[i], nil
}

// Slices returns all slices in time order (new header, shared matrices).
func (v *Volume) Slices() []*matrix.Dense {
	out := make([]*matrix.Dense, len(v.slices))
	copy(out, v.slices)

	return out
}

// Extrema returns the global minimum and maximum amplitude over every slice.
// Computed once on first call.
func (v *Volume) Extrema() (lo, hi float64) {
	v.extOnce.Do(func() {
		v.lo, v.hi = extremaOf(v.slices)
	})

	return v.lo, v.hi
}

// extremaOf scans slices with matrix.Extrema; slices are non-empty Dense.
func extremaOf(slices []*matrix.Dense) (lo, hi float64) {
	for k, s := range slices {
		slo, shi, _ := matrix.Extrema(s)
		if k == 0 || slo < lo {
			lo = slo
		}
		if k == 0 || shi > hi {
			hi = shi
		}
	}

	return lo, hi
}
