// SPDX-License-Identifier: MIT
// Package: standwave/grid
//
// grid.go - square coordinate grids from a 1-D axis.
//
// Contract:
//   - BuildGrid(axis) with n = len(axis) returns X, Y of shape n×n where
//     X[i][j] = axis[j] (constant down columns) and Y[i][j] = axis[i]
//     (constant along rows).
//   - Axis is copied; later mutation of the caller's slice does not leak.
//   - Grid is immutable after construction and safe for concurrent readers.

package grid

import (
	"fmt"

	"github.com/katalvlaran/standwave/matrix"
)

// Grid is the square spatial mesh that frame evaluation and rendering share.
// X and Y are owned by the Grid; accessors hand out the same instances so
// callers must not mutate them.
type Grid struct {
	axis []float64     // strictly increasing samples (copied)
	x    *matrix.Dense // X[i][j] = axis[j]
	y    *matrix.Dense // Y[i][j] = axis[i]
}

// BuildGrid expands a 1-D axis into the coordinate pair (X, Y).
//
// Implementation:
//   - Stage 1: validate len(axis) ≥ 2, finite, strictly increasing.
//   - Stage 2: allocate two n×n Dense matrices.
//   - Stage 3: fill X by columns and Y by rows in a single pass.
//
// Errors:
//   - ErrInvalidDimension on an axis that breaks the BuildAxis contract.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func BuildGrid(axis []float64) (*Grid, error) {
	// Stage 1: Validate.
	if err := validateAxis(MethodBuildGrid, axis); err != nil {
		return nil, err
	}

	// Stage 2: Allocate.
	n := len(axis)
	x, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGrid, err)
	}
	y, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGrid, err)
	}

	// Stage 3: Fill. Apply never fails here: every sample is finite.
	_ = x.Apply(func(_, j int, _ float64) float64 { return axis[j] })
	_ = y.Apply(func(i, _ int, _ float64) float64 { return axis[i] })

	cp := make([]float64, n)
	copy(cp, axis)

	return &Grid{axis: cp, x: x, y: y}, nil
}

// New builds the square grid over [-sideLength, +sideLength]² with axisSize
// samples per side: SymmetricAxis followed by BuildGrid.
//
// Errors:
//   - ErrInvalidDimension when sideLength <= 0 or axisSize < 2.
func New(sideLength float64, axisSize int) (*Grid, error) {
	axis, err := SymmetricAxis(sideLength, axisSize)
	if err != nil {
		return nil, err
	}

	return BuildGrid(axis)
}

// Size returns the number of samples per side (n for an n×n grid).
func (g *Grid) Size() int { return len(g.axis) }

// Axis returns a copy of the 1-D sample sequence.
func (g *Grid) Axis() []float64 {
	out := make([]float64, len(g.axis))
	copy(out, g.axis)

	return out
}

// X returns the column-coordinate matrix (read-only).
func (g *Grid) X() *matrix.Dense { return g.x }

// Y returns the row-coordinate matrix (read-only).
func (g *Grid) Y() *matrix.Dense { return g.y }

// Bounds returns the first and last axis samples.
func (g *Grid) Bounds() (low, high float64) {
	return g.axis[0], g.axis[len(g.axis)-1]
}

// HalfWidth returns half the axis span; for a symmetric grid this is L.
func (g *Grid) HalfWidth() float64 {
	low, high := g.Bounds()

	return (high - low) / 2
}

// Spacing returns the uniform distance between neighbouring samples.
func (g *Grid) Spacing() float64 { return Spacing(g.axis) }

// Point returns the physical coordinates (x, y) at grid cell (row, col).
// Errors: matrix.ErrOutOfRange for indices outside [0, Size()).
func (g *Grid) Point(row, col int) (x, y float64, err error) {
	n := len(g.axis)
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, 0, fmt.Errorf("%s: (%d,%d): %w", MethodPoint, row, col, matrix.ErrOutOfRange)
	}

	return g.axis[col], g.axis[row], nil
}
