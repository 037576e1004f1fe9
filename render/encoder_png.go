// SPDX-License-Identifier: MIT
// Package: standwave/render

package render

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// framePattern names PNG frames; ffmpeg reads the same pattern.
const framePattern = "frame_%05d.png"

// pngEncoder writes frame_00000.png, frame_00001.png, … into a directory.
type pngEncoder struct {
	dir    string
	width  int
	height int
	next   int
	enc    png.Encoder
	closed bool
}

func newPNGEncoder(dir string, width, height int) (*pngEncoder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create frame directory: %w", err)
	}

	return &pngEncoder{
		dir:    dir,
		width:  width,
		height: height,
		enc:    png.Encoder{CompressionLevel: png.BestSpeed},
	}, nil
}

// Frames returns the number of frames written so far.
func (e *pngEncoder) Frames() int { return e.next }

func (e *pngEncoder) AddFrame(img image.Image) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if err := checkFrame(img, e.width, e.height); err != nil {
		return err
	}

	path := filepath.Join(e.dir, fmt.Sprintf(framePattern, e.next))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := e.enc.Encode(bw, img); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot close png: %w", err)
	}
	e.next++

	return nil
}

func (e *pngEncoder) Close() error {
	e.closed = true

	return nil
}

// mp4Encoder stages PNG frames in a temporary directory and runs ffmpeg on
// Close to produce an H.264 MP4.
type mp4Encoder struct {
	frames *pngEncoder
	ffmpeg string
	path   string
	fps    int
	closed bool
}

func newMP4Encoder(path string, width, height, fps int) (*mp4Encoder, error) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found on PATH: %w", ErrEncoderUnavailable)
	}
	if err := ensureParent(path); err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp("", "standwave-frames-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create staging directory: %w", err)
	}
	frames, err := newPNGEncoder(dir, width, height)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	return &mp4Encoder{frames: frames, ffmpeg: bin, path: path, fps: fps}, nil
}

func (e *mp4Encoder) AddFrame(img image.Image) error {
	if e.closed {
		return ErrEncoderClosed
	}

	return e.frames.AddFrame(img)
}

func (e *mp4Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	defer os.RemoveAll(e.frames.dir)
	if err := e.frames.Close(); err != nil {
		return err
	}
	if e.frames.Frames() == 0 {
		return nil
	}

	// libx264 with yuv420p needs even sides.
	cmd := exec.Command(e.ffmpeg,
		"-y", "-loglevel", "error",
		"-framerate", strconv.Itoa(e.fps),
		"-i", filepath.Join(e.frames.dir, framePattern),
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		e.path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return nil
}
