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

// Package phantom renders phantoms: synthetic test images built by summing
// the intensities of overlapping ellipses and rectangles, as used to test
// image reconstruction algorithms.
//
// Shapes are defined in the normalized design square [-1,1]×[-1,1] and
// rendered onto a pixel grid of any size with [Render]. The result is a
// [Phantom], a row-major buffer of float64 intensities with row 0 at the
// top of the image. Shape tables for the Shepp-Logan phantoms are in the
// presets subpackage.
package phantom

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// Phantom holds a rendered image. The pixel values are stored in row-major
// order, with row 0 at the top of the image.
//
// The only way to modify the pixel values is [Phantom.Scale], which keeps
// the cached extrema consistent.
type Phantom struct {
	width, height int
	pix           []float64

	hasExtrema bool
	lo, hi     float64
}

// Width returns the width of the image in pixels.
func (p *Phantom) Width() int {
	return p.width
}

// Height returns the height of the image in pixels.
func (p *Phantom) Height() int {
	return p.height
}

// Pix returns the pixel values in row-major order, row 0 at the top.
// The slice shares memory with p; use [Values] for a copy. Callers must
// not modify the values, since the cached extrema would become stale.
func (p *Phantom) Pix() []float64 {
	return p.pix
}

// At returns the intensity of the pixel in column x and image row y,
// where row 0 is the top of the image.
func (p *Phantom) At(x, y int) float64 {
	return p.pix[y*p.width+x]
}

// Scale multiplies every pixel by factor and returns p.
// If the extrema have already been computed, they are scaled as well.
func (p *Phantom) Scale(factor float64) *Phantom {
	for i := range p.pix {
		p.pix[i] *= factor
	}
	if p.hasExtrema {
		p.lo, p.hi = p.lo*factor, p.hi*factor
		if factor < 0 {
			p.lo, p.hi = p.hi, p.lo
		}
	}
	return p
}

// Extrema returns the smallest and largest pixel value. The values are
// computed on the first call and cached. An empty image has extrema
// (+Inf, -Inf).
func (p *Phantom) Extrema() (lo, hi float64) {
	if p.hasExtrema {
		return p.lo, p.hi
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range p.pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	p.lo, p.hi, p.hasExtrema = lo, hi, true
	return lo, hi
}

// Values returns a copy of the pixel values, converted to T.
// Conversions follow the Go rules for numeric conversions; converting a
// value which does not fit into an integer type gives an
// implementation-specific result.
func Values[T constraints.Integer | constraints.Float](p *Phantom) []T {
	out := make([]T, len(p.pix))
	for i, v := range p.pix {
		out[i] = T(v)
	}
	return out
}

// Bytes returns the pixel values narrowed to 8 bits. Values are not
// clamped: the fractional part is discarded and the result is taken modulo
// 256. Use [Phantom.Scale] first to bring the values into [0, 255].
func (p *Phantom) Bytes() []byte {
	out := make([]byte, len(p.pix))
	for i, v := range p.pix {
		out[i] = byte(int64(v))
	}
	return out
}

// Gray returns the image as an 8-bit grayscale image, using the same
// narrowing as [Phantom.Bytes].
func (p *Phantom) Gray() *image.Gray {
	return &image.Gray{
		Pix:    p.Bytes(),
		Stride: p.width,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}
