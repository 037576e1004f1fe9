// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// overlay.go - bitmap text drawn over the rasterised canvas: title, axis
// names with end ticks, colorbar labels and the HUD line.

package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/standwave/wave"
)

// labelFace is the only face used for overlays.
var labelFace font.Face = basicfont.Face7x13

// drawText writes s with its baseline at image point (x, y).
func drawText(img *image.RGBA, x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// textWidth measures s in pixels.
func textWidth(s string) int {
	return font.MeasureString(labelFace, s).Ceil()
}

// drawCentered writes s centred on image point (cx, baseline).
func drawCentered(img *image.RGBA, cx, baseline int, s string, col color.Color) {
	drawText(img, cx-textWidth(s)/2, baseline, s, col)
}

// toImage converts canvas coordinates (y up) to image pixels (y down).
func (r *Renderer) toImage(x, y float64) (int, int) {
	return int(math.Round(x)), r.cfg.height - int(math.Round(y))
}

func (r *Renderer) drawOverlays(img *image.RGBA, f wave.Frame, k, total int) {
	if r.cfg.title != "" {
		drawCentered(img, (r.cfg.width-colorbarMargin+marginLeft)/2, 24, r.cfg.title, textColor)
	}
	r.drawAxisLabels(img)
	r.drawColorbarLabels(img)
	if r.cfg.hud {
		hud := fmt.Sprintf("frame %d/%d  t=%.2f", k+1, total, f.Time)
		drawText(img, marginLeft, r.cfg.height-8, hud, hudColor)
	}
}

// edgeLabel places name at the midpoint of segment a-b, pushed away from
// the box centre by 18px, and the end values at a and b.
func (r *Renderer) edgeLabel(img *image.RGBA, a, b [3]float64, name, atA, atB string) {
	ax, ay, _ := r.proj.project(a)
	bx, by, _ := r.proj.project(b)
	cx, cy, _ := r.proj.project([3]float64{0, 0, 0})

	mx, my := (ax+bx)/2, (ay+by)/2
	dx, dy := mx-cx, my-cy
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	}
	px, py := r.toImage(mx+dx*22, my+dy*22)
	drawCentered(img, px, py+5, name, textColor)

	for _, tick := range []struct {
		x, y float64
		s    string
	}{{ax, ay, atA}, {bx, by, atB}} {
		tx, ty := r.toImage(tick.x+dx*12, tick.y+dy*12)
		drawCentered(img, tx, ty+5, tick.s, hudColor)
	}
}

// drawAxisLabels labels the two floor edges nearest the viewer and the
// leftmost vertical edge.
func (r *Renderer) drawAxisLabels(img *image.RGBA) {
	h := zAspect / 2
	lowS, highS := fmt.Sprintf("%.3g", r.low), fmt.Sprintf("%.3g", r.high)

	// X runs along y = ±½; keep the edge drawn lower on screen.
	xEdge := -0.5
	_, xa, _ := r.proj.project([3]float64{0, -0.5, -h})
	_, xb, _ := r.proj.project([3]float64{0, 0.5, -h})
	if xb < xa {
		xEdge = 0.5
	}
	r.edgeLabel(img, [3]float64{-0.5, xEdge, -h}, [3]float64{0.5, xEdge, -h}, "X", lowS, highS)

	// Y runs along x = ±½.
	yEdge := -0.5
	_, ya, _ := r.proj.project([3]float64{-0.5, 0, -h})
	_, yb, _ := r.proj.project([3]float64{0.5, 0, -h})
	if yb < ya {
		yEdge = 0.5
	}
	r.edgeLabel(img, [3]float64{yEdge, -0.5, -h}, [3]float64{yEdge, 0.5, -h}, "Y", lowS, highS)

	// Z on the leftmost vertical edge.
	corners := boxCorners(zAspect)
	left, leftX := 0, math.Inf(1)
	for i := 0; i < 4; i++ {
		if x, _, _ := r.proj.project(corners[i]); x < leftX {
			left, leftX = i, x
		}
	}
	r.edgeLabel(img, corners[left], corners[left+4], "Z",
		fmt.Sprintf("%.2f", r.lo), fmt.Sprintf("%.2f", r.hi))
}

func (r *Renderer) drawColorbarLabels(img *image.RGBA) {
	_, y0, x1, y1 := r.colorbarRect()
	ticks := []float64{r.lo, (r.lo + r.hi) / 2, r.hi}
	for k, v := range ticks {
		y := y0 + (y1-y0)*float64(k)/2
		px, py := r.toImage(x1+6, y)
		drawText(img, px, py+4, fmt.Sprintf("%.2f", v), textColor)
	}
}
