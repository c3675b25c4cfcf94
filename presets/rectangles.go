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

package presets

import "seehuhn.de/go/phantom"

// rectangleSteps is the number of rotated copies in [Rectangles].
const rectangleSteps = 5

// Rectangles returns a star of squares: five unit squares rotated in steps
// of 18 degrees, with five smaller squares subtracted from the middle.
// Intensities are chosen so that the brightest pixels reach 255.
func Rectangles() []phantom.Shape {
	const step = 90.0 / rectangleSteps
	const value = 255.0 / rectangleSteps

	shapes := make([]phantom.Shape, 0, 2*rectangleSteps)
	for i := range rectangleSteps {
		shapes = append(shapes, phantom.NewRectangle(0, 0, 1, 1, float64(i)*step, value))
	}
	for i := range rectangleSteps {
		shapes = append(shapes, phantom.NewRectangle(0, 0, 0.6, 0.6, float64(i)*step, -value))
	}
	return shapes
}
