// SPDX-License-Identifier: MIT
// Package: standwave/export

package export

import (
	"errors"
	"fmt"
)

// ErrCorruptSnapshot indicates a decoded document whose header and payload
// disagree (frame count, frame length, axis length) or whose format tag is
// unknown.
var ErrCorruptSnapshot = errors.New("export: corrupt snapshot")

// ErrNilVolume is returned by Write when no volume is given.
var ErrNilVolume = errors.New("export: nil volume")

func corruptf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrCorruptSnapshot)
}
