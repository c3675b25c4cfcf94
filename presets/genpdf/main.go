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

// Command genpdf writes a vector outline of every preset to a PDF file.
// The outlines show the geometry of the shapes, independent of any pixel
// grid; shapes with positive intensity are drawn in white, shapes with
// negative intensity in grey.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/phantom"
	"seehuhn.de/go/phantom/presets"
)

const (
	outDir   = "testdata/outline"
	pageSize = 512 // points
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498307936

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, name := range presets.Names() {
		pdfPath := filepath.Join(outDir, name+".pdf")
		if err := generatePDF(presets.All[name](), pdfPath); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
	}
}

func generatePDF(shapes []phantom.Shape, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageSize,
		URy: pageSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, pageSize, pageSize)
	page.Fill()

	// Map the design square onto the page. PDF has y pointing up, like the
	// rasterizer's canvas space.
	const s = pageSize / 2
	page.Transform(matrix.Matrix{s, 0, 0, s, s, s})
	page.SetLineWidth(1.0 / s)

	moveTo := func(p vec.Vec2) { page.MoveTo(p.X, p.Y) }
	lineTo := func(p vec.Vec2) { page.LineTo(p.X, p.Y) }
	curveTo := func(p1, p2, p3 vec.Vec2) {
		page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}

	// Colors must be set before the path is constructed.
	setColor := func(intensity float64) {
		if intensity < 0 {
			page.SetStrokeColor(color.DeviceGray(0.5))
		} else {
			page.SetStrokeColor(color.DeviceGray(1))
		}
	}

	for i, shape := range shapes {
		switch shape := shape.(type) {
		case phantom.Ellipse:
			setColor(shape.Intensity)
			ellipseOutline(shape, moveTo, curveTo)
		case phantom.Rectangle:
			setColor(shape.Intensity)
			c := shape.Corners()
			moveTo(c[0])
			for _, p := range c[1:] {
				lineTo(p)
			}
		default:
			return fmt.Errorf("shape %d: unsupported type %T", i, shape)
		}
		page.ClosePath()
		page.Stroke()
	}

	return page.Close()
}

// ellipseOutline approximates the ellipse by four cubic Bézier curves, one
// per quadrant of the unit circle.
func ellipseOutline(e phantom.Ellipse, moveTo func(vec.Vec2), curveTo func(p1, p2, p3 vec.Vec2)) {
	sin, cos := math.Sincos(e.Theta * math.Pi / 180)
	a, b := e.MajorAxis, e.MinorAxis
	m := matrix.Matrix{a * cos, a * sin, -b * sin, b * cos, e.Center.X, e.Center.Y}
	at := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*x + m[2]*y + m[4],
			Y: m[1]*x + m[3]*y + m[5],
		}
	}

	moveTo(at(1, 0))
	curveTo(at(1, kappa), at(kappa, 1), at(0, 1))
	curveTo(at(-kappa, 1), at(-1, kappa), at(-1, 0))
	curveTo(at(-1, -kappa), at(-kappa, -1), at(0, -1))
	curveTo(at(kappa, -1), at(1, -kappa), at(1, 0))
}
