// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// colormap.go - scalar → colour lookup for surface faces and the colorbar.

package render

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Colormap maps a normalised amplitude t ∈ [0, 1] to a colour.
// Values outside [0, 1] are clamped.
type Colormap interface {
	Name() string
	At(t float64) color.RGBA
}

// Built-in colormap names.
const (
	ColormapRdPu      = "RdPu"
	ColormapViridis   = "Viridis"
	ColormapGray      = "Gray"
	ColormapBlueRed   = "BlueRed"
	ColormapBlackBody = "BlackBody"
)

// gradient interpolates linearly between evenly spaced stops.
type gradient struct {
	name  string
	stops []color.RGBA
}

func (g gradient) Name() string { return g.name }

func (g gradient) At(t float64) color.RGBA {
	t = clamp01(t)
	pos := t * float64(len(g.stops)-1)
	k := int(math.Floor(pos))
	if k >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	f := pos - float64(k)
	a, b := g.stops[k], g.stops[k+1]

	return color.RGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: 0xff,
	}
}

// paletteMap adapts a gonum palette.ColorMap configured on [0, 1].
type paletteMap struct {
	name string
	cm   palette.ColorMap
}

func newPaletteMap(name string, cm palette.ColorMap) paletteMap {
	cm.SetMin(0)
	cm.SetMax(1)

	return paletteMap{name: name, cm: cm}
}

func (p paletteMap) Name() string { return p.name }

func (p paletteMap) At(t float64) color.RGBA {
	c, err := p.cm.At(clamp01(t))
	if err != nil {
		return color.RGBA{A: 0xff}
	}

	return color.RGBAModel.Convert(c).(color.RGBA)
}

// ColorBrewer RdPu, 9 classes.
var rdpuStops = []color.RGBA{
	{0xff, 0xf7, 0xf3, 0xff}, {0xfd, 0xe0, 0xdd, 0xff}, {0xfc, 0xc5, 0xc0, 0xff},
	{0xfa, 0x9f, 0xb5, 0xff}, {0xf7, 0x68, 0xa1, 0xff}, {0xdd, 0x34, 0x97, 0xff},
	{0xae, 0x01, 0x7e, 0xff}, {0x7a, 0x01, 0x77, 0xff}, {0x49, 0x00, 0x6a, 0xff},
}

// Viridis sampled at nine evenly spaced points.
var viridisStops = []color.RGBA{
	{0x44, 0x01, 0x54, 0xff}, {0x47, 0x2d, 0x7b, 0xff}, {0x3b, 0x52, 0x8b, 0xff},
	{0x2c, 0x72, 0x8e, 0xff}, {0x21, 0x91, 0x8c, 0xff}, {0x28, 0xae, 0x80, 0xff},
	{0x5e, 0xc9, 0x62, 0xff}, {0xad, 0xdc, 0x30, 0xff}, {0xfd, 0xe7, 0x25, 0xff},
}

var grayStops = []color.RGBA{{0, 0, 0, 0xff}, {0xff, 0xff, 0xff, 0xff}}

// colormapFactories builds a fresh instance per lookup; palette maps carry
// mutable min/max state.
var colormapFactories = map[string]func() Colormap{
	ColormapRdPu:      func() Colormap { return gradient{name: ColormapRdPu, stops: rdpuStops} },
	ColormapViridis:   func() Colormap { return gradient{name: ColormapViridis, stops: viridisStops} },
	ColormapGray:      func() Colormap { return gradient{name: ColormapGray, stops: grayStops} },
	ColormapBlueRed:   func() Colormap { return newPaletteMap(ColormapBlueRed, moreland.SmoothBlueRed()) },
	ColormapBlackBody: func() Colormap { return newPaletteMap(ColormapBlackBody, moreland.BlackBody()) },
}

// LookupColormap resolves a colormap by name (case-sensitive).
// Errors: ErrUnknownColormap.
func LookupColormap(name string) (Colormap, error) {
	f, ok := colormapFactories[name]
	if !ok {
		return nil, renderErrorf("LookupColormap", ErrUnknownColormap, "name=%q", name)
	}

	return f(), nil
}

// ColormapNames lists the built-in colormaps in sorted order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormapFactories))
	for n := range colormapFactories {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	}

	return t
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
