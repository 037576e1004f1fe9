// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// encoder.go - the Encoder contract and the kind → backend factory.
//
// Every Encoder receives frames of exactly the size it was created with, in
// presentation order, and finalises its output on Close. Close is
// idempotent; AddFrame after Close returns ErrEncoderClosed. The caller
// that creates an Encoder owns it and must Close it.

package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
)

// Encoder consumes rendered frames and writes a video artefact.
type Encoder interface {
	AddFrame(img image.Image) error
	Close() error
}

// Encoder kinds accepted by NewEncoder.
const (
	EncoderAVI = "avi" // Motion-JPEG AVI (default)
	EncoderGIF = "gif" // animated GIF, Plan9 palette
	EncoderPNG = "png" // numbered PNG frames in a directory
	EncoderMP4 = "mp4" // PNG frames assembled by ffmpeg
	EncoderGst = "gst" // GStreamer appsrc pipeline (build tag gst)
)

type encoderFactory func(path string, width, height, fps int) (Encoder, error)

var encoderFactories = map[string]encoderFactory{
	EncoderAVI: func(p string, w, h, fps int) (Encoder, error) { return newAVIEncoder(p, w, h, fps) },
	EncoderGIF: func(p string, w, h, fps int) (Encoder, error) { return newGIFEncoder(p, w, h, fps) },
	EncoderPNG: func(p string, w, h, _ int) (Encoder, error) { return newPNGEncoder(p, w, h) },
	EncoderMP4: func(p string, w, h, fps int) (Encoder, error) { return newMP4Encoder(p, w, h, fps) },
	EncoderGst: newGstEncoder,
}

// EncoderKinds lists the accepted kinds in sorted order.
func EncoderKinds() []string {
	kinds := make([]string, 0, len(encoderFactories))
	for k := range encoderFactories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

// NewEncoder creates the encoder of the given kind writing to path.
// For EncoderPNG, path is a directory.
//
// Errors:
//   - ErrUnknownEncoder for an unlisted kind.
//   - ErrInvalidEncoderConfig for an empty path, a side below
//     MinCanvasSide or fps < 1.
//   - ErrEncoderUnavailable when the backend is missing (gst, ffmpeg).
//   - wrapped I/O errors from creating the output.
func NewEncoder(kind, path string, width, height, fps int) (Encoder, error) {
	factory, ok := encoderFactories[kind]
	if !ok {
		return nil, renderErrorf(MethodNewEncoder, ErrUnknownEncoder, "kind=%q", kind)
	}
	switch {
	case path == "":
		return nil, renderErrorf(MethodNewEncoder, ErrInvalidEncoderConfig, "empty path")
	case width < MinCanvasSide || height < MinCanvasSide:
		return nil, renderErrorf(MethodNewEncoder, ErrInvalidEncoderConfig, "size=%dx%d", width, height)
	case fps < 1:
		return nil, renderErrorf(MethodNewEncoder, ErrInvalidEncoderConfig, "fps=%d", fps)
	}

	enc, err := factory(path, width, height, fps)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", MethodNewEncoder, kind, err)
	}

	return enc, nil
}

// checkFrame enforces the fixed frame size.
func checkFrame(img image.Image, width, height int) error {
	if img == nil {
		return fmt.Errorf("nil frame: %w", ErrFrameSize)
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("frame %dx%d, want %dx%d: %w", b.Dx(), b.Dy(), width, height, ErrFrameSize)
	}

	return nil
}

// ensureParent creates the directory holding path.
func ensureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	return nil
}
