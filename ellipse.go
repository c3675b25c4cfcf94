// seehuhn.de/go/phantom - synthetic test images for image reconstruction
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package phantom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Ellipse is an ellipse in the normalized design square.
//
// MajorAxis and MinorAxis are the half-lengths of the ellipse along its
// rotated x and y directions. Theta rotates the ellipse about its center,
// counter-clockwise, in degrees. Intensity may be negative, in which case
// the ellipse darkens the pixels it covers.
type Ellipse struct {
	Center    vec.Vec2
	MajorAxis float64
	MinorAxis float64
	Theta     float64
	Intensity float64
}

// NewEllipse returns an ellipse with the given parameters, in the argument
// order used by the Shepp-Logan tables.
func NewEllipse(centerX, centerY, majorAxis, minorAxis, theta, intensity float64) Ellipse {
	return Ellipse{
		Center:    vec.Vec2{X: centerX, Y: centerY},
		MajorAxis: majorAxis,
		MinorAxis: minorAxis,
		Theta:     theta,
		Intensity: intensity,
	}
}

func (e Ellipse) canvas(width, height int) CanvasShape {
	return e.OnCanvas(width, height)
}

// OnCanvas projects the ellipse onto a width×height pixel grid.
//
// The bounding box is computed in the design square and then mapped to
// pixels, the axes are scaled to pixels and squared once, so that the
// containment test needs no trigonometry and no square roots.
func (e Ellipse) OnCanvas(width, height int) EllipseOnCanvas {
	theta := e.Theta * degree
	sin, cos := math.Sincos(theta)
	sinPerp, cosPerp := math.Sincos(theta + math.Pi/2)

	// Explicit float64 conversions stop the compiler from fusing
	// multiply-add, so that results agree across architectures.
	ux := e.MajorAxis * cos
	uy := e.MajorAxis * sin
	vx := e.MinorAxis * cosPerp
	vy := e.MinorAxis * sinPerp
	halfWidth := math.Sqrt(float64(ux*ux) + float64(vx*vx))
	halfHeight := math.Sqrt(float64(uy*uy) + float64(vy*vy))

	s, cx, cy := canvasScale(width, height)
	toPixels := func(v, c float64) float64 { return float64(v*s) + c }

	bbox := boxFromBounds(
		toPixels(e.Center.X-halfWidth, cx),
		toPixels(e.Center.X+halfWidth, cx),
		toPixels(e.Center.Y-halfHeight, cy),
		toPixels(e.Center.Y+halfHeight, cy),
		width, height)

	major := e.MajorAxis * s
	minor := e.MinorAxis * s
	return EllipseOnCanvas{
		center: vec.Vec2{
			X: toPixels(e.Center.X, cx),
			Y: toPixels(e.Center.Y, cy),
		},
		majorSq:   major * major,
		minorSq:   minor * minor,
		sin:       sin,
		cos:       cos,
		intensity: e.Intensity,
		bbox:      bbox,
	}
}

// EllipseOnCanvas is an [Ellipse] projected onto a pixel grid.
type EllipseOnCanvas struct {
	center  vec.Vec2 // in pixels
	majorSq float64  // squared semi-axis in pixels
	minorSq float64  // squared semi-axis in pixels
	sin     float64
	cos     float64

	intensity float64
	bbox      BoundingBox
}

// Inside reports whether (x, y) lies inside or on the boundary of the
// ellipse. An ellipse with a zero axis contains no points.
func (e EllipseOnCanvas) Inside(x, y float64) bool {
	return e.level(x, y) <= 1
}

// level evaluates the quadratic form of the ellipse at (x, y). The value is
// 1 on the boundary, smaller inside and larger outside.
func (e EllipseOnCanvas) level(x, y float64) float64 {
	dx := x - e.center.X
	dy := y - e.center.Y
	u := float64(e.cos*dx) + float64(e.sin*dy)
	v := float64(e.sin*dx) - float64(e.cos*dy)
	return float64(u*u)/e.majorSq + float64(v*v)/e.minorSq
}

// Intensity returns the value added to every covered pixel.
func (e EllipseOnCanvas) Intensity() float64 {
	return e.intensity
}

// BoundingBox returns the pixel box enclosing the ellipse.
func (e EllipseOnCanvas) BoundingBox() BoundingBox {
	return e.bbox
}
