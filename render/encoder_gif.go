// SPDX-License-Identifier: MIT
// Package: standwave/render

package render

import (
	"bufio"
	"fmt"
	"image"
	colorpalette "image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"math"
	"os"
)

// gifEncoder buffers Plan9-quantised frames and writes one animated GIF on
// Close. Memory grows with width·height·frames.
type gifEncoder struct {
	path   string
	width  int
	height int
	delay  int // hundredths of a second
	anim   gif.GIF
	closed bool
}

func newGIFEncoder(path string, width, height, fps int) (*gifEncoder, error) {
	if err := ensureParent(path); err != nil {
		return nil, err
	}

	return &gifEncoder{
		path:   path,
		width:  width,
		height: height,
		delay:  max(1, int(math.Round(100/float64(fps)))),
	}, nil
}

func (e *gifEncoder) AddFrame(img image.Image) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if err := checkFrame(img, e.width, e.height); err != nil {
		return err
	}
	b := img.Bounds()
	pal := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), colorpalette.Plan9)
	imgdraw.FloydSteinberg.Draw(pal, pal.Rect, img, b.Min)
	e.anim.Image = append(e.anim.Image, pal)
	e.anim.Delay = append(e.anim.Delay, e.delay)

	return nil
}

func (e *gifEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if len(e.anim.Image) == 0 {
		return nil
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("cannot create gif: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := gif.EncodeAll(bw, &e.anim); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode gif: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write gif: %w", err)
	}

	return f.Close()
}
