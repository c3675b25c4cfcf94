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
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// Rasterizer sums the intensities of a list of shapes onto a pixel grid.
// Create one instance and reuse it for multiple renders; the buffer of
// projected shapes grows as needed but never shrinks.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Width and Height give the canvas size in pixels. A zero or negative
	// value produces an empty image.
	Width, Height int

	// Workers is the number of goroutines used to accumulate intensities.
	// Values below 2 select the sequential path. Parallel rendering splits
	// the canvas into bands of rows; every pixel belongs to exactly one
	// band and sees the shapes in list order, so the output is the same as
	// for the sequential path.
	Workers int

	projected []CanvasShape // reused across calls
}

// NewRasterizer returns a sequential Rasterizer for a width×height canvas.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		Width:   width,
		Height:  height,
		Workers: 1,
	}
}

// Render renders the shapes onto a width×height canvas, using the
// sequential path.
func Render(shapes []Shape, width, height int) *Phantom {
	return NewRasterizer(width, height).Render(shapes)
}

// Render projects every shape onto the canvas and adds the intensity of
// each shape to all pixels it covers. Overlapping shapes combine
// additively.
func (r *Rasterizer) Render(shapes []Shape) *Phantom {
	start := time.Now()

	nx := max(r.Width, 0)
	ny := max(r.Height, 0)
	pix := make([]float64, nx*ny)

	workers := 0
	if nx > 0 && ny > 0 {
		r.projected = slices.Grow(r.projected[:0], len(shapes))
		for _, s := range shapes {
			r.projected = append(r.projected, s.canvas(nx, ny))
		}

		workers = min(max(r.Workers, 1), ny)
		if workers > 1 {
			r.accumulateParallel(pix, nx, ny, workers)
		} else {
			r.accumulateRows(pix, nx, ny, 0, ny)
		}
	}

	Logger().Debug("phantom rendered",
		"width", nx,
		"height", ny,
		"shapes", len(shapes),
		"workers", workers,
		"elapsed", time.Since(start))

	return &Phantom{width: nx, height: ny, pix: pix}
}

// accumulateParallel splits the canvas into horizontal bands and
// accumulates each band in its own goroutine.
func (r *Rasterizer) accumulateParallel(pix []float64, nx, ny, workers int) {
	band := (ny + workers - 1) / workers

	var g errgroup.Group
	for yMin := 0; yMin < ny; yMin += band {
		yMax := min(yMin+band, ny)
		g.Go(func() error {
			r.accumulateRows(pix, nx, ny, yMin, yMax)
			return nil
		})
	}
	g.Wait()
}

// accumulateRows adds the contributions of all projected shapes to the
// canvas rows y with yMin <= y < yMax.
func (r *Rasterizer) accumulateRows(pix []float64, nx, ny, yMin, yMax int) {
	// Switching on the concrete type lets each shape kind get its own
	// instance of accumulate.
	for _, s := range r.projected {
		switch s := s.(type) {
		case EllipseOnCanvas:
			accumulate(pix, nx, ny, yMin, yMax, s)
		case RectangleOnCanvas:
			accumulate(pix, nx, ny, yMin, yMax, s)
		}
	}
}

// accumulate scans the bounding box of s, restricted to the rows
// yMin <= y < yMax, and adds the intensity of s to every pixel inside.
//
// Canvas row y is stored in image row ny-y-1, so that row 0 of the
// output is the top of the canvas.
func accumulate[S CanvasShape](pix []float64, nx, ny, yMin, yMax int, s S) {
	bbox := s.BoundingBox()
	yLow := max(bbox.YLow, yMin)
	yHigh := min(bbox.YHigh, yMax-1)
	intensity := s.Intensity()

	for y := yLow; y <= yHigh; y++ {
		row := pix[(ny-y-1)*nx : (ny-y)*nx]
		yf := float64(y)
		for x := bbox.XLow; x <= bbox.XHigh; x++ {
			if s.Inside(float64(x), yf) {
				row[x] += intensity
			}
		}
	}
}
