// SPDX-License-Identifier: MIT

// Package matrix - public facade.
//
// Thin, documented wrappers over the private kernels so that the call sites in
// grid, wave and render stay short and the kernels stay swappable.
package matrix

// AllClose reports whether a and b agree element-wise within |a-b| ≤ atol + rtol*|b|.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// Extrema returns the global minimum and maximum entries of m.
// Errors: ErrNilMatrix.
func Extrema(m Matrix) (lo, hi float64, err error) { return ewExtrema(m) }
