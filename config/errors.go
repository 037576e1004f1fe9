// SPDX-License-Identifier: MIT
// Package: standwave/config

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a field outside its allowed range.
// Usage: if errors.Is(err, ErrInvalidConfig) { /* exit 1 */ }.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ErrUnsupportedFormat indicates a file extension Load cannot decode.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// fieldErrorf reports a violated constraint for a named field.
// Result: "Validate: <field>=<value> violates <constraint>: config: invalid configuration".
func fieldErrorf(field string, value interface{}, constraint string) error {
	return fmt.Errorf("%s: %s=%v violates %s: %w", MethodValidate, field, value, constraint, ErrInvalidConfig)
}
