// SPDX-License-Identifier: MIT
// Package: standwave/grid
//
// errors.go - sentinel errors for the grid package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: the method, the offending
//     parameter, its value and the violated constraint.
//   • Builders never panic on user input.

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates that grid axis parameters violate the axis
// contract: count < 2, low >= high, a non-finite bound, or an axis that is not
// strictly increasing.
// Usage: if errors.Is(err, ErrInvalidDimension) { /* report bad grid config */ }.
var ErrInvalidDimension = errors.New("grid: invalid dimension")

// gridErrorf reports a violated constraint for a named parameter.
// Result: "<Method>: <param>=<value> violates <constraint>: grid: invalid dimension".
func gridErrorf(method, param string, value interface{}, constraint string) error {
	return fmt.Errorf("%s: %s=%v violates %s: %w", method, param, value, constraint, ErrInvalidDimension)
}
