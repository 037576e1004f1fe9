// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// trace.go - line chart of one probe's amplitude over time, next to the
// per-frame minimum and maximum.

package render

import (
	"bufio"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/standwave/matrix"
	"github.com/katalvlaran/standwave/wave"
)

// Trace plot geometry.
const (
	traceWidthIn  = 8.0
	traceHeightIn = 4.5
	traceDPI      = 150
)

// SaveTracePlot writes a PNG chart of U(probeRow, probeCol, t) together with
// the minimum and maximum of each frame, against t.
//
// Errors:
//   - ErrNoFrames for a nil or empty sequence.
//   - matrix.ErrOutOfRange for a probe outside the slice.
//   - wrapped plotting and I/O errors.
func SaveTracePlot(path string, seq *wave.FrameSequence, probeRow, probeCol int) error {
	if seq == nil || seq.Len() == 0 {
		return renderErrorf(MethodTracePlot, ErrNoFrames, "empty sequence")
	}

	frames := seq.Frames()
	probe := make(plotter.XYs, len(frames))
	lows := make(plotter.XYs, len(frames))
	highs := make(plotter.XYs, len(frames))
	for k, f := range frames {
		v, err := f.Data.At(probeRow, probeCol)
		if err != nil {
			return fmt.Errorf("%s: probe (%d,%d): %w", MethodTracePlot, probeRow, probeCol, err)
		}
		lo, hi, err := matrix.Extrema(f.Data)
		if err != nil {
			return fmt.Errorf("%s: frame %d: %w", MethodTracePlot, k, err)
		}
		probe[k] = plotter.XY{X: f.Time, Y: v}
		lows[k] = plotter.XY{X: f.Time, Y: lo}
		highs[k] = plotter.XY{X: f.Time, Y: hi}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Amplitude at cell (%d, %d)", probeRow, probeCol)
	p.X.Label.Text = "t"
	p.Y.Label.Text = "U"
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		xys  plotter.XYs
		col  color.RGBA
		dash []vg.Length
	}{
		{"probe", probe, color.RGBA{0xae, 0x01, 0x7e, 0xff}, nil},
		{"frame min", lows, color.RGBA{0x3b, 0x52, 0x8b, 0xff}, []vg.Length{vg.Points(4), vg.Points(3)}},
		{"frame max", highs, color.RGBA{0x28, 0xae, 0x80, 0xff}, []vg.Length{vg.Points(4), vg.Points(3)}},
	}
	for _, s := range series {
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", MethodTracePlot, s.name, err)
		}
		line.LineStyle.Color = s.col
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = s.dash
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	return savePlotPNG(p, traceWidthIn, traceHeightIn, path)
}

// savePlotPNG draws p on a vgimg canvas and writes it as PNG.
func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(traceDPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		f.Close()
		return fmt.Errorf("cannot write png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write png: %w", err)
	}

	return f.Close()
}
