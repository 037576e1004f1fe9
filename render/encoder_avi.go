// SPDX-License-Identifier: MIT
// Package: standwave/render

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// aviEncoder writes Motion-JPEG AVI files: each frame is JPEG-compressed and
// appended to the AVI stream.
type aviEncoder struct {
	aw     mjpeg.AviWriter
	width  int
	height int
	buf    bytes.Buffer
	opts   jpeg.Options
	closed bool
}

func newAVIEncoder(path string, width, height, fps int) (*aviEncoder, error) {
	if err := ensureParent(path); err != nil {
		return nil, err
	}
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("cannot create avi: %w", err)
	}

	return &aviEncoder{
		aw:     aw,
		width:  width,
		height: height,
		opts:   jpeg.Options{Quality: jpegQuality},
	}, nil
}

func (e *aviEncoder) AddFrame(img image.Image) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if err := checkFrame(img, e.width, e.height); err != nil {
		return err
	}
	e.buf.Reset()
	if err := jpeg.Encode(&e.buf, img, &e.opts); err != nil {
		return fmt.Errorf("cannot encode jpeg: %w", err)
	}
	if err := e.aw.AddFrame(e.buf.Bytes()); err != nil {
		return fmt.Errorf("cannot add avi frame: %w", err)
	}

	return nil
}

func (e *aviEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.aw.Close(); err != nil {
		return fmt.Errorf("cannot finalise avi: %w", err)
	}

	return nil
}
