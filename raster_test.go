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
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"testing"
)

// shapeCase is a random single shape on a random canvas.
type shapeCase struct {
	S      Shape
	Width  int
	Height int
}

func randomShapeCase(random *rand.Rand) shapeCase {
	c := shapeCase{
		Width:  1 + random.Intn(128),
		Height: 1 + random.Intn(128),
	}
	cx := random.Float64() - 0.5
	cy := random.Float64() - 0.5
	theta := random.Float64() * 360
	if random.Intn(2) == 0 {
		c.S = NewEllipse(cx, cy, 0.05+0.4*random.Float64(), 0.05+0.4*random.Float64(), theta, 1)
	} else {
		c.S = NewRectangle(cx, cy, 0.1+0.6*random.Float64(), 0.1+0.6*random.Float64(), theta, 1)
	}
	return c
}

func TestRenderSmallCircle(t *testing.T) {
	p := Render([]Shape{NewEllipse(0, 0, 0.5, 0.5, 0, 1)}, 4, 4)
	want := []float64{
		0, 0, 1, 0,
		0, 1, 1, 1,
		0, 0, 1, 0,
		0, 0, 0, 0,
	}
	if !slices.Equal(p.pix, want) {
		t.Errorf("got %v, want %v", p.pix, want)
	}
	if p.Width() != 4 || p.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", p.Width(), p.Height())
	}
}

func TestRenderRowOrder(t *testing.T) {
	// a rectangle covering the upper half of the design square
	p := Render([]Shape{NewRectangle(0, 0.5, 2, 1, 0, 1)}, 4, 4)
	for y := range 4 {
		for x := range 4 {
			want := 0.0
			if y < 2 {
				want = 1
			}
			if got := p.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %g, want %g", x, y, got, want)
			}
		}
	}
}

// TestRenderMatchesInside checks that rendering a single shape marks exactly
// the pixels for which the containment test succeeds.
func TestRenderMatchesInside(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := range 200 {
		c := randomShapeCase(random)
		p := Render([]Shape{c.S}, c.Width, c.Height)
		cs := Project(c.S, c.Width, c.Height)

	scan:
		for y := range c.Height {
			for x := range c.Width {
				want := 0.0
				if cs.Inside(float64(x), float64(y)) {
					want = cs.Intensity()
				}
				// canvas row y is image row Height-y-1
				if got := p.At(x, c.Height-y-1); got != want {
					t.Errorf("case %d, %v on %dx%d: pixel (%d, %d) = %g, want %g",
						i, c.S, c.Width, c.Height, x, y, got, want)
					break scan
				}
			}
		}
	}
}

func TestRenderEmptyCanvas(t *testing.T) {
	shapes := []Shape{NewEllipse(0, 0, 0.5, 0.5, 0, 1)}
	for _, size := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {-3, 5}} {
		p := Render(shapes, size[0], size[1])
		if len(p.pix) != 0 {
			t.Errorf("%dx%d: got %d pixels, want 0", size[0], size[1], len(p.pix))
		}
	}
}

func TestRenderOutsideCanvas(t *testing.T) {
	shapes := []Shape{
		NewEllipse(3, 0, 0.5, 0.5, 0, 1),
		NewEllipse(0, -3, 0.5, 0.5, 0, 1),
		NewRectangle(-4, -4, 1, 1, 10, 1),
	}
	p := Render(shapes, 16, 8)
	if len(p.pix) != 16*8 {
		t.Fatalf("got %d pixels, want %d", len(p.pix), 16*8)
	}
	for i, v := range p.pix {
		if v != 0 {
			t.Fatalf("pixel %d = %g, want 0", i, v)
		}
	}
}

func TestRenderAdditive(t *testing.T) {
	shapes := []Shape{
		NewEllipse(0, 0, 0.8, 0.8, 0, 1),
		NewRectangle(0, 0, 0.5, 0.5, 0, -0.25),
	}
	p := Render(shapes, 64, 64)

	got := map[float64]bool{}
	for _, v := range p.pix {
		got[v] = true
	}
	want := map[float64]bool{0: true, 1: true, 0.75: true}
	if !maps.Equal(got, want) {
		t.Errorf("pixel values %v, want %v", got, want)
	}
	if v := p.At(32, 32); v != 0.75 {
		t.Errorf("center = %g, want 0.75", v)
	}
}

func TestRenderParallel(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	var shapes []Shape
	for range 40 {
		shapes = append(shapes, randomShapeCase(random).S)
	}

	for _, size := range [][2]int{{1, 1}, {7, 3}, {64, 64}, {100, 37}} {
		want := Render(shapes, size[0], size[1])
		for _, workers := range []int{2, 3, 8, 200} {
			t.Run(fmt.Sprintf("%dx%d_%d", size[0], size[1], workers), func(t *testing.T) {
				r := NewRasterizer(size[0], size[1])
				r.Workers = workers
				got := r.Render(shapes)
				if !slices.Equal(got.pix, want.pix) {
					t.Error("parallel result differs from sequential result")
				}
			})
		}
	}
}

func TestRasterizerReuse(t *testing.T) {
	r := NewRasterizer(4, 4)
	many := []Shape{
		NewEllipse(0, 0, 0.5, 0.5, 0, 1),
		NewEllipse(0, 0, 0.9, 0.9, 0, 1),
		NewRectangle(0, 0, 1, 1, 0, 1),
	}
	r.Render(many)

	p := r.Render(many[:1])
	want := Render(many[:1], 4, 4)
	if !slices.Equal(p.pix, want.pix) {
		t.Errorf("got %v, want %v", p.pix, want.pix)
	}

	r.Width, r.Height = 6, 2
	p = r.Render(many[:1])
	if p.Width() != 6 || p.Height() != 2 || len(p.pix) != 12 {
		t.Errorf("got %dx%d with %d pixels, want 6x2 with 12", p.Width(), p.Height(), len(p.pix))
	}
}

func TestProject(t *testing.T) {
	e := Project(NewEllipse(0, 0, 0.5, 0.5, 0, 2), 10, 10)
	if _, ok := e.(EllipseOnCanvas); !ok {
		t.Errorf("ellipse projected to %T", e)
	}
	if e.Intensity() != 2 {
		t.Errorf("ellipse intensity = %g, want 2", e.Intensity())
	}

	r := Project(NewRectangle(0, 0, 0.5, 0.5, 0, -1), 10, 10)
	if _, ok := r.(RectangleOnCanvas); !ok {
		t.Errorf("rectangle projected to %T", r)
	}
	if r.Intensity() != -1 {
		t.Errorf("rectangle intensity = %g, want -1", r.Intensity())
	}
}

// TestRenderMixedBands renders both shape kinds with worker counts that
// split five rows into uneven bands.
func TestRenderMixedBands(t *testing.T) {
	shapes := []Shape{
		NewRectangle(0, 0, 2, 2, 0, 1),
		NewEllipse(0, 0, 0.5, 0.5, 0, 1),
	}
	want := []float64{
		1, 1, 1, 1, 1,
		1, 1, 2, 2, 1,
		1, 1, 2, 2, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
	}
	for _, workers := range []int{1, 2, 4, 5} {
		r := NewRasterizer(5, 5)
		r.Workers = workers
		if got := r.Render(shapes).Pix(); !slices.Equal(got, want) {
			t.Errorf("workers=%d: got %v, want %v", workers, got, want)
		}
	}
}
