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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Rectangle is a rectangle in the normalized design square.
//
// Width and Height are the full side lengths before rotation. Theta rotates
// the corners about the origin of the design square, counter-clockwise, in
// degrees; for a rectangle centered at the origin this is a rotation about
// its own center.
type Rectangle struct {
	Center    vec.Vec2
	Width     float64
	Height    float64
	Theta     float64
	Intensity float64
}

// NewRectangle returns a rectangle with the given parameters.
func NewRectangle(centerX, centerY, width, height, theta, intensity float64) Rectangle {
	return Rectangle{
		Center:    vec.Vec2{X: centerX, Y: centerY},
		Width:     width,
		Height:    height,
		Theta:     theta,
		Intensity: intensity,
	}
}

func (r Rectangle) canvas(width, height int) CanvasShape {
	return r.OnCanvas(width, height)
}

// Corners returns the corners A, B, C, D of the rectangle in the design
// square, after rotation. Consecutive corners share an edge: A is
// bottom-left and B is top-left before rotation.
func (r Rectangle) Corners() [4]vec.Vec2 {
	sin, cos := math.Sincos(r.Theta * degree)
	rot := matrix.Matrix{cos, sin, -sin, cos, 0, 0}

	w := r.Width / 2
	h := r.Height / 2
	corners := [4]vec.Vec2{
		{X: r.Center.X - w, Y: r.Center.Y - h},
		{X: r.Center.X - w, Y: r.Center.Y + h},
		{X: r.Center.X + w, Y: r.Center.Y + h},
		{X: r.Center.X + w, Y: r.Center.Y - h},
	}
	for i, p := range corners {
		corners[i] = apply(rot, p)
	}
	return corners
}

// OnCanvas projects the rectangle onto a width×height pixel grid.
func (r Rectangle) OnCanvas(width, height int) RectangleOnCanvas {
	s, cx, cy := canvasScale(width, height)
	toCanvas := matrix.Matrix{s, 0, 0, s, cx, cy}

	corners := r.Corners()
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, p := range corners {
		p = apply(toCanvas, p)
		corners[i] = p
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}

	a, b, c := corners[0], corners[1], corners[2]
	ab := b.Sub(a)
	bc := c.Sub(b)
	abab := ab.Dot(ab)
	bcbc := bc.Dot(bc)

	return RectangleOnCanvas{
		a:         a,
		b:         b,
		ab:        ab,
		bc:        bc,
		abab:      abab,
		bcbc:      bcbc,
		empty:     !(abab > 0 && bcbc > 0),
		intensity: r.Intensity,
		bbox:      boxFromBounds(xMin, xMax, yMin, yMax, width, height),
	}
}

// RectangleOnCanvas is a [Rectangle] projected onto a pixel grid.
//
// A point M is inside if its projections onto the edges AB and BC fall
// within the edges: 0 <= AB·AM <= AB·AB and 0 <= BC·BM <= BC·BC.
type RectangleOnCanvas struct {
	a, b       vec.Vec2 // corners in pixels
	ab, bc     vec.Vec2 // edge vectors
	abab, bcbc float64  // squared edge lengths
	empty      bool     // an edge has zero length

	intensity float64
	bbox      BoundingBox
}

// Inside reports whether (x, y) lies inside or on the boundary of the
// rectangle. A rectangle with a side of zero length contains no points.
func (r RectangleOnCanvas) Inside(x, y float64) bool {
	if r.empty {
		return false
	}
	abam := r.ab.Dot(vec.Vec2{X: x - r.a.X, Y: y - r.a.Y})
	bcbm := r.bc.Dot(vec.Vec2{X: x - r.b.X, Y: y - r.b.Y})
	return 0 <= abam && abam <= r.abab && 0 <= bcbm && bcbm <= r.bcbc
}

// Intensity returns the value added to every covered pixel.
func (r RectangleOnCanvas) Intensity() float64 {
	return r.intensity
}

// BoundingBox returns the pixel box enclosing the rectangle.
func (r RectangleOnCanvas) BoundingBox() BoundingBox {
	return r.bbox
}

// apply maps p through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: float64(m[0]*p.X) + float64(m[2]*p.Y) + m[4],
		Y: float64(m[1]*p.X) + float64(m[3]*p.Y) + m[5],
	}
}
