// Package grid provides validation helpers to enforce the axis contract
// in BuildAxis and BuildGrid.
//
// Each function returns a formatted error via gridErrorf when its
// precondition is violated.
package grid

import "math"

// validateAxisParams checks count ≥ MinAxisSize, finite bounds, low < high
// and a finite span high-low, in that priority order.
// Complexity: O(1) time and space.
func validateAxisParams(method string, low, high float64, count int) error {
	if count < MinAxisSize {
		return gridErrorf(method, "count", count, "count >= 2")
	}
	if math.IsNaN(low) || math.IsInf(low, 0) {
		return gridErrorf(method, "low", low, "finite bound")
	}
	if math.IsNaN(high) || math.IsInf(high, 0) {
		return gridErrorf(method, "high", high, "finite bound")
	}
	if low >= high {
		return gridErrorf(method, "low", low, "low < high")
	}
	// Finite bounds can still overflow: -1e308..1e308 has span +Inf.
	if span := high - low; math.IsInf(span, 0) {
		return gridErrorf(method, "high-low", span, "finite span")
	}

	return nil
}

// validateAxis checks that a caller-supplied axis has at least MinAxisSize
// finite samples in strictly increasing order.
// Complexity: O(n) time, O(1) space.
func validateAxis(method string, axis []float64) error {
	if len(axis) < MinAxisSize {
		return gridErrorf(method, "len(axis)", len(axis), "len(axis) >= 2")
	}
	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return gridErrorf(method, "axis", v, "finite samples")
		}
		if i > 0 && v <= axis[i-1] {
			return gridErrorf(method, "axis", v, "strictly increasing samples")
		}
	}

	return nil
}
