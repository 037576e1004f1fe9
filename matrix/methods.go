// Package matrix provides universal operations on any Matrix implementation:
// scalar scaling, the element-wise (Hadamard) product and pure element-wise
// maps. All functions perform strict fail-fast validation and return clear
// errors on nil operands and shape mismatches.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opMap      = "Map"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Stage 1 (Validate): nil-check, finite alpha.
// Stage 2 (Prepare): allocate Dense(rows×cols).
// Stage 3 (Execute): flat loop for *Dense, interface loop otherwise.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Stage 1: Validate input non-nil and a finite factor.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	// Stage 2: Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 3: Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a∘b of two equal-shape matrices.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense pairs or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Hadamard(a, b Matrix) (Matrix, error) {
	// Stage 1: nil + shape, in the documented priority order.
	if err := ValidatePair(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Stage 2: allocate.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Stage 3: Dense fast-path over two flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// Map returns a NEW matrix whose (i,j) entry is f(i, j, m[i,j]).
// The input is never modified, so Map is safe on shared read-only grids.
// Errors: ErrNilMatrix, ErrNaNInf when f yields a non-finite value.
// Complexity: O(r·c).
func Map(m Matrix, f func(i, j int, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	src, isDense := m.(*Dense)
	var v float64
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			if isDense {
				v = src.data[base+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, err)
			}
			nv := f(i, j, v)
			if math.IsNaN(nv) || math.IsInf(nv, 0) {
				return nil, matrixErrorf(opMap, denseErrorf(opMap, i, j, ErrNaNInf))
			}
			res.data[base+j] = nv
		}
	}

	return res, nil
}
