// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// errors.go - sentinel errors for the wave package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Parameter violations name the method, the parameter, its value and the
//     violated constraint, then wrap ErrInvalidParameter with `%w`.
//   • Operand problems (nil or mismatched X/Y) keep the matrix sentinel.
//   • Evaluation never panics on user input; only option constructors do.

package wave

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates that an evaluator parameter violates its
// contract: n < 1, dt <= 0, sideLength <= 0 (non-finite values included),
// stride < 1, a nil volume, or an inconsistent set of slices.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* abort before rendering */ }.
var ErrInvalidParameter = errors.New("wave: invalid parameter")

// paramErrorf reports a violated constraint for a named parameter.
// Result: "<Method>: <param>=<value> violates <constraint>: wave: invalid parameter".
func paramErrorf(method, param string, value interface{}, constraint string) error {
	return fmt.Errorf("%s: %s=%v violates %s: %w", method, param, value, constraint, ErrInvalidParameter)
}

// wrapf prefixes a lower-level error with the method context.
func wrapf(method, operand string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, operand, err)
}
