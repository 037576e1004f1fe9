// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// surface.go - rasterises one amplitude slice as a shaded 3D surface.
//
// Pipeline per frame:
//   - Stage 1: project the subsampled vertex lattice (rstride × cstride).
//   - Stage 2: build one quad per lattice cell, coloured by its mean amplitude
//     normalised over the shared [lo, hi] range.
//   - Stage 3: sort quads far-to-near and paint them (painter's algorithm)
//     on a gonum vgimg canvas backed by the output image.
//   - Stage 4: overlays (title, axis labels, colorbar, HUD).
//
// The Renderer only reads the grid and the slices handed to it.

package render

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	imgdraw "image/draw"
	"math"
	"slices"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
	"github.com/katalvlaran/standwave/wave"
)

var (
	boxColor      = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	outlineColor  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	textColor     = color.RGBA{0x10, 0x10, 0x10, 0xff}
	hudColor      = color.RGBA{0x40, 0x40, 0x40, 0xff}
	colorbarBands = 64
)

// Renderer turns slices of one grid into images with a fixed scale.
// A Renderer is safe for concurrent Render calls.
type Renderer struct {
	cfg       renderConfig
	cmap      Colormap
	size      int
	axis      []float64
	low, high float64 // spatial bounds
	lo, hi    float64 // amplitude bounds (colour and z)
	rows      []int   // sampled lattice indices
	cols      []int
	proj      projector
}

// NewRenderer prepares a renderer for grid g with amplitude range [lo, hi],
// normally the global extrema of the frames about to be drawn.
//
// A flat range (lo == hi) is widened by ±0.5 so the box keeps a height.
//
// Errors:
//   - matrix.ErrNilMatrix when g is nil.
//   - matrix.ErrNaNInf when lo or hi is not finite.
//   - ErrUnknownColormap for an unresolved WithColormap name.
func NewRenderer(g *grid.Grid, lo, hi float64, opts ...Option) (*Renderer, error) {
	if g == nil {
		return nil, renderErrorf(MethodNewRenderer, matrix.ErrNilMatrix, "grid=nil")
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, renderErrorf(MethodNewRenderer, matrix.ErrNaNInf, "range=[%g, %g]", lo, hi)
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}

	cfg := newRenderConfig(opts...)
	cmap, err := LookupColormap(cfg.colormap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewRenderer, err)
	}

	low, high := g.Bounds()
	r := &Renderer{
		cfg:  cfg,
		cmap: cmap,
		size: g.Size(),
		axis: g.Axis(),
		low:  low,
		high: high,
		lo:   lo,
		hi:   hi,
		rows: lattice(g.Size(), cfg.rstride),
		cols: lattice(g.Size(), cfg.cstride),
	}
	// Tiny canvases keep a minimal plot area instead of a negative one.
	areaW := math.Max(float64(cfg.width-marginLeft-colorbarMargin), 8)
	areaH := math.Max(float64(cfg.height-marginBottom-marginTop), 8)
	r.proj = newProjector(cfg.camera, zAspect, marginLeft, marginBottom, areaW, areaH)

	return r, nil
}

// Size returns the output image size in pixels.
func (r *Renderer) Size() (width, height int) { return r.cfg.width, r.cfg.height }

// Range returns the amplitude range used for colour and z scaling.
func (r *Renderer) Range() (lo, hi float64) { return r.lo, r.hi }

// Render draws frame f as image k of total (k and total feed the HUD).
//
// Errors:
//   - ErrNoFrames when f carries no data.
//   - matrix.ErrDimensionMismatch when the slice shape differs from the grid.
func (r *Renderer) Render(f wave.Frame, k, total int) (*image.RGBA, error) {
	if f.Data == nil {
		return nil, renderErrorf(MethodRender, ErrNoFrames, "frame %d has no data", f.Index)
	}
	if f.Data.Rows() != r.size || f.Data.Cols() != r.size {
		return nil, renderErrorf(MethodRender, matrix.ErrDimensionMismatch,
			"slice %dx%d, grid %dx%d", f.Data.Rows(), f.Data.Cols(), r.size, r.size)
	}

	// 72 dpi keeps one canvas unit equal to one pixel.
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.cfg.width), vg.Length(r.cfg.height)),
		vgimg.UseDPI(72),
	)
	dc := draw.New(c)

	r.drawBox(&dc)
	r.drawSurface(&dc, f.Data.View())
	r.drawColorbar(&dc)

	img := toRGBA(c.Image())
	r.drawOverlays(img, f, k, total)

	return img, nil
}

// toRGBA returns src as *image.RGBA, copying only when needed.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	imgdraw.Draw(dst, dst.Rect, src, b.Min, imgdraw.Src)

	return dst
}

// lattice returns 0, s, 2s, … and always the last index n-1.
func lattice(n, s int) []int {
	idx := make([]int, 0, n/s+2)
	for i := 0; i < n; i += s {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}

	return idx
}

// normalize maps world (x, y, z) into the projector's box.
func (r *Renderer) normalize(x, y, z float64) [3]float64 {
	span := r.high - r.low

	return [3]float64{
		(x-r.low)/span - 0.5,
		(y-r.low)/span - 0.5,
		((z-r.lo)/(r.hi-r.lo) - 0.5) * zAspect,
	}
}

func (r *Renderer) drawBox(dc *draw.Canvas) {
	corners := boxCorners(zAspect)
	sty := draw.LineStyle{Color: boxColor, Width: vg.Length(1)}
	for _, e := range boxEdges {
		ax, ay, _ := r.proj.project(corners[e[0]])
		bx, by, _ := r.proj.project(corners[e[1]])
		dc.StrokeLines(sty, []vg.Point{{X: vg.Length(ax), Y: vg.Length(ay)}, {X: vg.Length(bx), Y: vg.Length(by)}})
	}
}

type quad struct {
	pts   [4]vg.Point
	depth float64
	fill  color.RGBA
}

func (r *Renderer) drawSurface(dc *draw.Canvas, data []float64) {
	nr, nc := len(r.rows), len(r.cols)

	// Stage 1: project the lattice once.
	pts := make([]vg.Point, nr*nc)
	depth := make([]float64, nr*nc)
	for a, i := range r.rows {
		for b, j := range r.cols {
			x, y, d := r.proj.project(r.normalize(r.axis[j], r.axis[i], data[i*r.size+j]))
			pts[a*nc+b] = vg.Point{X: vg.Length(x), Y: vg.Length(y)}
			depth[a*nc+b] = d
		}
	}

	// Stage 2: quads.
	quads := make([]quad, 0, (nr-1)*(nc-1))
	span := r.hi - r.lo
	for a := 0; a+1 < nr; a++ {
		for b := 0; b+1 < nc; b++ {
			v := [4]int{a*nc + b, a*nc + b + 1, (a+1)*nc + b + 1, (a+1)*nc + b}
			i0, i1 := r.rows[a], r.rows[a+1]
			j0, j1 := r.cols[b], r.cols[b+1]
			mean := (data[i0*r.size+j0] + data[i0*r.size+j1] + data[i1*r.size+j1] + data[i1*r.size+j0]) / 4
			quads = append(quads, quad{
				pts:   [4]vg.Point{pts[v[0]], pts[v[1]], pts[v[2]], pts[v[3]]},
				depth: (depth[v[0]] + depth[v[1]] + depth[v[2]] + depth[v[3]]) / 4,
				fill:  r.cmap.At((mean - r.lo) / span),
			})
		}
	}

	// Stage 3: far to near.
	slices.SortStableFunc(quads, func(p, q quad) int { return cmp.Compare(p.depth, q.depth) })
	for _, q := range quads {
		dc.FillPolygon(q.fill, q.pts[:])
		if r.cfg.lineWidth > 0 {
			dc.StrokeLines(draw.LineStyle{Color: q.fill, Width: vg.Length(r.cfg.lineWidth)},
				[]vg.Point{q.pts[0], q.pts[1], q.pts[2], q.pts[3], q.pts[0]})
		}
	}
}

// colorbarRect returns the bar's left, bottom, right and top in canvas units.
func (r *Renderer) colorbarRect() (x0, y0, x1, y1 float64) {
	x0 = float64(r.cfg.width-colorbarMargin) + 24
	x1 = x0 + colorbarWidth
	y0 = marginBottom + 40
	y1 = float64(r.cfg.height-marginTop) - 40
	if y1 <= y0 {
		y0, y1 = marginBottom, float64(r.cfg.height-marginTop)
	}

	return x0, y0, x1, y1
}

func (r *Renderer) drawColorbar(dc *draw.Canvas) {
	x0, y0, x1, y1 := r.colorbarRect()
	band := (y1 - y0) / float64(colorbarBands)
	for k := 0; k < colorbarBands; k++ {
		lo := y0 + float64(k)*band
		hi := lo + band + 0.5 // overlap hides seams
		t := (float64(k) + 0.5) / float64(colorbarBands)
		dc.FillPolygon(r.cmap.At(t), []vg.Point{
			{X: vg.Length(x0), Y: vg.Length(lo)}, {X: vg.Length(x1), Y: vg.Length(lo)},
			{X: vg.Length(x1), Y: vg.Length(math.Min(hi, y1))}, {X: vg.Length(x0), Y: vg.Length(math.Min(hi, y1))},
		})
	}
	dc.StrokeLines(draw.LineStyle{Color: outlineColor, Width: vg.Length(1)}, []vg.Point{
		{X: vg.Length(x0), Y: vg.Length(y0)}, {X: vg.Length(x1), Y: vg.Length(y0)},
		{X: vg.Length(x1), Y: vg.Length(y1)}, {X: vg.Length(x0), Y: vg.Length(y1)},
		{X: vg.Length(x0), Y: vg.Length(y0)},
	})
}
