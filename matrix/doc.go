// Package matrix provides the dense row-major storage behind coordinate
// grids and amplitude slices.
//
// The matrix package provides:
//
//   - Dense: a cache-friendly float64 matrix with bounds-checked At/Set,
//     in-place visitors (Do, Apply) and a deep-copy Clone.
//   - Element-wise kernels: Scale, Hadamard, Map and AllClose, each with a
//     flat-slice fast path for *Dense operands.
//   - Extrema: global minimum and maximum of a matrix, used for consistent
//     color and z-axis scaling across animation frames.
//   - Validators: a single source of truth for nil/shape/finite checks.
//
// Every public function returns sentinel errors (see errors.go) wrapped with
// a method tag; nothing panics on user input.
//
// Example:
//
//	s, _ := matrix.NewDense(2, 2)
//	_ = s.Set(0, 1, 0.5)
//	half, _ := matrix.Scale(s, 0.5)
//	lo, hi, _ := matrix.Extrema(half) // 0, 0.25
package matrix
