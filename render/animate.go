// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// animate.go - drives a Renderer over a frame source into an Encoder.
//
// Both drivers fix the colour and z scale from the global extrema of the
// frames before drawing the first one, so every frame shares one scale.
// Cancellation is checked between frames. The encoder is not closed here.

package render

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/wave"
)

// Animate renders every frame of seq in order and feeds enc.
//
// Errors:
//   - ErrNoFrames for a nil or empty sequence.
//   - ErrEncoderUnavailable for a nil encoder.
//   - NewRenderer / Render / AddFrame errors, wrapped with the frame number.
//   - ctx.Err() when cancelled between frames.
func Animate(ctx context.Context, g *grid.Grid, seq *wave.FrameSequence, enc Encoder, opts ...Option) error {
	if seq == nil || seq.Len() == 0 {
		return renderErrorf(MethodAnimate, ErrNoFrames, "empty sequence")
	}
	if enc == nil {
		return renderErrorf(MethodAnimate, ErrEncoderUnavailable, "encoder=nil")
	}
	lo, hi := seq.Extrema()
	r, err := NewRenderer(g, lo, hi, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodAnimate, err)
	}

	frames := seq.Frames()
	return r.run(ctx, MethodAnimate, enc, len(frames), func(yield func(wave.Frame) bool) {
		for _, f := range frames {
			if !yield(f) {
				return
			}
		}
	})
}

// AnimateStream renders a lazy stream. The extrema of the kept frames are
// fixed up front from the spatial factor; each frame is then evaluated,
// drawn and encoded without retaining the volume.
func AnimateStream(ctx context.Context, g *grid.Grid, st *wave.Stream, stride int, enc Encoder, opts ...Option) error {
	if st == nil {
		return renderErrorf(MethodAnimateStream, ErrNoFrames, "stream=nil")
	}
	if enc == nil {
		return renderErrorf(MethodAnimateStream, ErrEncoderUnavailable, "encoder=nil")
	}
	frames, err := st.Frames(stride)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodAnimateStream, err)
	}
	lo, hi := st.StrideExtrema(stride)
	r, err := NewRenderer(g, lo, hi, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodAnimateStream, err)
	}

	return r.run(ctx, MethodAnimateStream, enc, st.FrameCount(stride), frames)
}

// run is the shared render → encode loop.
func (r *Renderer) run(ctx context.Context, method string, enc Encoder, total int, frames iter.Seq[wave.Frame]) error {
	log := r.cfg.logger.With(slog.String("method", method))
	log.Info("animation started",
		slog.Int("frames", total),
		slog.Int("width", r.cfg.width),
		slog.Int("height", r.cfg.height),
		slog.String("colormap", r.cmap.Name()),
		slog.Float64("vmin", r.lo),
		slog.Float64("vmax", r.hi),
	)
	start := time.Now()

	var runErr error
	k := 0
	frames(func(f wave.Frame) bool {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("%s: frame %d: %w", method, k, err)
			return false
		}
		img, err := r.Render(f, k, total)
		if err != nil {
			runErr = fmt.Errorf("%s: frame %d: %w", method, k, err)
			return false
		}
		if err := enc.AddFrame(img); err != nil {
			runErr = fmt.Errorf("%s: frame %d: %w", method, k, err)
			return false
		}
		log.Debug("frame encoded", slog.Int("frame", k), slog.Int("index", f.Index), slog.Float64("t", f.Time))
		k++

		return true
	})
	if runErr != nil {
		log.Warn("animation aborted", slog.Int("frames_done", k), slog.Any("error", runErr))
		return runErr
	}

	log.Info("animation rendered", slog.Int("frames", k), slog.Duration("elapsed", time.Since(start)))

	return nil
}
