// SPDX-License-Identifier: MIT
// Package: standwave/render
//
// camera.go - view rotation and perspective projection of the unit box.
//
// World points are first normalised into a box centred at the origin
// (x, y ∈ [-½, ½], z ∈ [-zAspect/2, zAspect/2]), then rotated so that the
// eye looks down the new +z axis:
//
//	R = Rx(elev − 90°) · Rz(−(azim + 90°))
//
// and finally scaled by dist / (dist − depth) for a mild perspective.

package render

import "math"

// Camera describes the viewpoint in degrees and box units.
type Camera struct {
	Elevation float64 // degrees above the x-y plane
	Azimuth   float64 // degrees counter-clockwise from +x
	Distance  float64 // eye distance; larger flattens perspective
}

// DefaultCamera returns elevation 30°, azimuth 70°, distance 8.
func DefaultCamera() Camera {
	return Camera{Elevation: DefaultElevation, Azimuth: DefaultAzimuth, Distance: DefaultDistance}
}

// mat3 is a row-major 3×3 rotation.
type mat3 [3][3]float64

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}

	return r
}

func (m mat3) apply(v [3]float64) [3]float64 {
	var r [3]float64
	for i := range 3 {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return r
}

func rotX(deg float64) mat3 {
	s, c := math.Sincos(deg * math.Pi / 180)

	return mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotZ(deg float64) mat3 {
	s, c := math.Sincos(deg * math.Pi / 180)

	return mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// projector maps normalised box coordinates to canvas points (y up).
type projector struct {
	rot    mat3
	dist   float64
	scale  float64
	ox, oy float64
}

// newProjector fits the projected box corners into the given canvas area.
func newProjector(cam Camera, zAspect, left, bottom, width, height float64) projector {
	p := projector{
		rot:   rotX(cam.Elevation - 90).mul(rotZ(-(cam.Azimuth + 90))),
		dist:  cam.Distance,
		scale: 1,
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range boxCorners(zAspect) {
		x, y, _ := p.raw(c)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	p.scale = math.Min(width/(maxX-minX), height/(maxY-minY))
	p.ox = left + (width-(maxX-minX)*p.scale)/2 - minX*p.scale
	p.oy = bottom + (height-(maxY-minY)*p.scale)/2 - minY*p.scale

	return p
}

// raw rotates and applies perspective; depth grows toward the eye.
func (p projector) raw(v [3]float64) (x, y, depth float64) {
	r := p.rot.apply(v)
	f := p.dist / (p.dist - r[2])

	return r[0] * f, r[1] * f, r[2]
}

// project returns canvas coordinates and depth.
func (p projector) project(v [3]float64) (x, y, depth float64) {
	x, y, depth = p.raw(v)

	return p.ox + x*p.scale, p.oy + y*p.scale, depth
}

// boxCorners lists the eight corners of the normalised box.
func boxCorners(zAspect float64) [8][3]float64 {
	h := zAspect / 2

	return [8][3]float64{
		{-0.5, -0.5, -h}, {0.5, -0.5, -h}, {0.5, 0.5, -h}, {-0.5, 0.5, -h},
		{-0.5, -0.5, h}, {0.5, -0.5, h}, {0.5, 0.5, h}, {-0.5, 0.5, h},
	}
}

// boxEdges indexes boxCorners pairwise.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
