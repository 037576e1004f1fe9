// SPDX-License-Identifier: MIT
// Package: standwave/render

package render

// Render defaults match the reference figure.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFPS       = 15
	DefaultElevation = 30.0
	DefaultAzimuth   = 70.0
	DefaultDistance  = 8.0
	DefaultRStride   = 2
	DefaultCStride   = 2
	DefaultLineWidth = 1.0
	DefaultColormap  = ColormapRdPu
	DefaultTitle     = "3D function"
	DefaultOutput    = "wave_animation.avi"

	// MinCanvasSide is the smallest accepted width or height in pixels.
	MinCanvasSide = 16

	// zAspect is the height of the normalised box relative to its unit base.
	zAspect = 0.75

	// jpegQuality is used for every MJPEG frame.
	jpegQuality = 90
)

// Layout margins in pixels.
const (
	marginLeft     = 20
	marginBottom   = 24
	marginTop      = 44
	colorbarWidth  = 16
	colorbarMargin = 90
)

// Method tokens used as error context prefixes.
const (
	MethodNewRenderer   = "NewRenderer"
	MethodRender        = "Render"
	MethodAnimate       = "Animate"
	MethodAnimateStream = "AnimateStream"
	MethodNewEncoder    = "NewEncoder"
	MethodTracePlot     = "SaveTracePlot"
)
