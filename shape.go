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

import "math"

// Shape is a geometric shape in the normalized design square
// [-1,1]×[-1,1], together with the intensity it adds to every pixel it
// covers. The set of shapes is closed: the implementations are [Ellipse]
// and [Rectangle].
//
// Shapes are plain values. They are never modified by this package.
type Shape interface {
	// canvas projects the shape onto a width×height pixel grid.
	canvas(width, height int) CanvasShape
}

// CanvasShape is a shape projected onto one specific pixel grid.
// Coordinates are in pixels, with the origin at the bottom-left corner of
// the canvas and y pointing up.
type CanvasShape interface {
	// Inside reports whether the point (x, y) lies inside the shape.
	// Points on the boundary are inside.
	Inside(x, y float64) bool

	// Intensity returns the value added to every covered pixel.
	Intensity() float64

	// BoundingBox returns the pixels which need to be tested to find all
	// pixels covered by the shape.
	BoundingBox() BoundingBox
}

// Project maps a shape from the design square onto a width×height pixel
// grid. The design square is scaled uniformly by min(width, height)/2 and
// centered on the canvas, so that shapes keep their aspect ratio.
func Project(s Shape, width, height int) CanvasShape {
	return s.canvas(width, height)
}

// degree converts degrees to radians.
const degree = float64(math.Pi) / 180

// canvasScale returns the uniform scale factor from the design square to
// the canvas, together with the canvas center.
func canvasScale(width, height int) (scale, halfWidth, halfHeight float64) {
	halfWidth = float64(width) / 2
	halfHeight = float64(height) / 2
	return min(halfWidth, halfHeight), halfWidth, halfHeight
}
