// SPDX-License-Identifier: MIT
// Package: standwave/grid
//
// axis.go - evenly spaced 1-D coordinate sequences.
//
// Contract:
//   - BuildAxis(low, high, count) returns exactly count samples with
//     axis[0] == low and axis[count-1] == high (both exact).
//   - Spacing is (high-low)/(count-1) within floating-point tolerance.
//   - O(count) time and memory. No panics. No global state.

package grid

import (
	"gonum.org/v1/gonum/floats"
)

// BuildAxis returns count evenly spaced values over [low, high], inclusive
// of both endpoints.
//
// Model:
//   - step = (high − low) / (count − 1)
//   - axisᵢ = low + step·i, with the last sample pinned to high
//
// Errors:
//   - ErrInvalidDimension when count < 2, a bound is NaN/±Inf, low >= high,
//     or high-low overflows to +Inf.
func BuildAxis(low, high float64, count int) ([]float64, error) {
	// Validate before touching floats.Span, which panics on short slices.
	if err := validateAxisParams(MethodBuildAxis, low, high, count); err != nil {
		return nil, err
	}

	axis := floats.Span(make([]float64, count), low, high)
	// Pin both ends so the bounds survive rounding in low + step·i.
	axis[0], axis[count-1] = low, high

	return axis, nil
}

// SymmetricAxis returns BuildAxis(-sideLength, +sideLength, count), the
// spatial axis of a square plate centered at the origin.
//
// Errors:
//   - ErrInvalidDimension when sideLength <= 0 (non-finite included) or count < 2.
func SymmetricAxis(sideLength float64, count int) ([]float64, error) {
	if !(sideLength > 0) {
		return nil, gridErrorf(MethodSymmetricAxis, "sideLength", sideLength, "sideLength > 0")
	}

	return BuildAxis(-sideLength, sideLength, count)
}

// Spacing returns the uniform step of an axis built by BuildAxis.
// Returns 0 for axes shorter than MinAxisSize.
func Spacing(axis []float64) float64 {
	if len(axis) < MinAxisSize {
		return 0
	}

	return (axis[len(axis)-1] - axis[0]) / float64(len(axis)-1)
}
