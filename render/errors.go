// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// errors.go - sentinel errors for the render package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (method, name, path) is attached with `%w`.
//   • I/O failures from encoders are wrapped, never swallowed.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColormap indicates a colormap name outside ColormapNames().
	ErrUnknownColormap = errors.New("render: unknown colormap")

	// ErrUnknownEncoder indicates an encoder kind outside EncoderKinds().
	ErrUnknownEncoder = errors.New("render: unknown encoder")

	// ErrEncoderUnavailable indicates a known encoder whose backend is missing
	// from this build or host (no `gst` build tag, no ffmpeg on PATH).
	ErrEncoderUnavailable = errors.New("render: encoder unavailable")

	// ErrFrameSize indicates a frame whose bounds differ from the encoder's
	// configured width and height.
	ErrFrameSize = errors.New("render: frame size mismatch")

	// ErrInvalidEncoderConfig indicates an empty path, a size below
	// MinCanvasSide or fps < 1 passed to NewEncoder.
	ErrInvalidEncoderConfig = errors.New("render: invalid encoder config")

	// ErrEncoderClosed indicates AddFrame after Close.
	ErrEncoderClosed = errors.New("render: encoder closed")

	// ErrNoFrames indicates an empty frame source (nil sequence or stream).
	ErrNoFrames = errors.New("render: no frames")
)

// renderErrorf prefixes err with the method and a formatted detail.
func renderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
