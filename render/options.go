// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// options.go - functional options for NewRenderer, Animate and AnimateStream.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (non-positive sizes, nil logger). Values that come from user
//     configuration and may legitimately be wrong (colormap names) are
//     resolved later and surface as errors.
//   • Defaults live in newRenderConfig.

package render

import (
	"io"
	"log/slog"
)

// Option customizes rendering.
type Option func(*renderConfig)

type renderConfig struct {
	width, height    int
	camera           Camera
	rstride, cstride int
	colormap         string
	title            string
	lineWidth        float64
	hud              bool
	logger           *slog.Logger
}

func newRenderConfig(opts ...Option) renderConfig {
	cfg := renderConfig{
		width:     DefaultWidth,
		height:    DefaultHeight,
		camera:    DefaultCamera(),
		rstride:   DefaultRStride,
		cstride:   DefaultCStride,
		colormap:  DefaultColormap,
		title:     DefaultTitle,
		lineWidth: DefaultLineWidth,
		hud:       true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets the frame size in pixels. Panics below MinCanvasSide.
func WithSize(width, height int) Option {
	if width < MinCanvasSide || height < MinCanvasSide {
		panic("render: WithSize below minimum canvas side")
	}
	return func(c *renderConfig) {
		c.width, c.height = width, height
	}
}

// WithCamera sets the viewpoint. Panics if Distance <= 1 (the eye would sit
// inside the box).
func WithCamera(cam Camera) Option {
	if !(cam.Distance > 1) {
		panic("render: WithCamera distance must exceed 1")
	}
	return func(c *renderConfig) {
		c.camera = cam
	}
}

// WithStrides sets the surface subsampling in rows and columns. Panics if
// either is < 1.
func WithStrides(rstride, cstride int) Option {
	if rstride < 1 || cstride < 1 {
		panic("render: WithStrides(<1)")
	}
	return func(c *renderConfig) {
		c.rstride, c.cstride = rstride, cstride
	}
}

// WithColormap selects a colormap by name; unknown names fail in NewRenderer
// with ErrUnknownColormap.
func WithColormap(name string) Option {
	return func(c *renderConfig) {
		c.colormap = name
	}
}

// WithTitle sets the caption drawn above the surface. Empty hides it.
func WithTitle(title string) Option {
	return func(c *renderConfig) {
		c.title = title
	}
}

// WithLineWidth sets the face edge width in pixels. Panics if negative.
func WithLineWidth(w float64) Option {
	if w < 0 {
		panic("render: WithLineWidth(<0)")
	}
	return func(c *renderConfig) {
		c.lineWidth = w
	}
}

// WithHUD toggles the "frame k/N  t=…" status line.
func WithHUD(on bool) Option {
	return func(c *renderConfig) {
		c.hud = on
	}
}

// WithLogger routes progress logs. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("render: WithLogger(nil)")
	}
	return func(c *renderConfig) {
		c.logger = l
	}
}
