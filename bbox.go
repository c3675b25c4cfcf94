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

// BoundingBox is an axis-aligned rectangle of pixels. Both ranges are
// inclusive and, for a non-empty canvas, lie inside [0, n-1] of the
// corresponding canvas dimension.
//
// Coordinates use the rasterizer's y-up convention: YLow is the bottom row
// of the box, not the top row of the output image.
type BoundingBox struct {
	XLow, XHigh int
	YLow, YHigh int
}

// Width returns the number of pixel columns covered by the box.
func (b BoundingBox) Width() int {
	return b.XHigh - b.XLow + 1
}

// Height returns the number of pixel rows covered by the box.
func (b BoundingBox) Height() int {
	return b.YHigh - b.YLow + 1
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b BoundingBox) Contains(x, y int) bool {
	return b.XLow <= x && x <= b.XHigh && b.YLow <= y && y <= b.YHigh
}

// boxFromBounds converts real-valued bounds in canvas space into a clamped
// pixel box. Lower bounds are rounded down and upper bounds are rounded up.
func boxFromBounds(xMin, xMax, yMin, yMax float64, width, height int) BoundingBox {
	return BoundingBox{
		XLow:  clampPixel(math.Floor(xMin), width, 0),
		XHigh: clampPixel(math.Ceil(xMax), width, width-1),
		YLow:  clampPixel(math.Floor(yMin), height, 0),
		YHigh: clampPixel(math.Ceil(yMax), height, height-1),
	}
}

// clampPixel maps an integral coordinate to a pixel index in [0, n-1].
// NaN maps to ifNaN, so that a lower bound falls back to the first pixel
// and an upper bound to the last one.
func clampPixel(v float64, n, ifNaN int) int {
	if n <= 0 {
		return 0
	}
	switch {
	case v < 0:
		return 0
	case v >= float64(n):
		return n - 1
	case v >= 0:
		return int(v)
	default:
		return max(min(ifNaN, n-1), 0)
	}
}
