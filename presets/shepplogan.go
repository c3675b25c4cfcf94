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

// SheppLogan returns the ten ellipses of the original Shepp-Logan phantom.
// The intensities range over [0, 2]; most of the interior has values close
// to 1, which makes the smaller features hard to see.
func SheppLogan() []phantom.Shape {
	return sheppLogan([10]float64{0.01, 0.01, 0.01, 0.01, 0.01, 0.01, -0.02, -0.02, -0.98, 2})
}

// ModifiedSheppLogan returns the ten ellipses of the modified Shepp-Logan
// phantom, which uses higher contrast between the interior features.
// The intensities range over [0, 1].
func ModifiedSheppLogan() []phantom.Shape {
	return sheppLogan([10]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, -0.2, -0.2, -0.8, 1})
}

// sheppLogan builds the Shepp-Logan geometry with the given intensities.
// The two large ellipses come last, so that the small features are added
// before the skull and brain.
func sheppLogan(v [10]float64) []phantom.Shape {
	return []phantom.Shape{
		phantom.NewEllipse(0, 0.35, 0.21, 0.25, 0, v[0]),
		phantom.NewEllipse(0, 0.1, 0.046, 0.046, 0, v[1]),
		phantom.NewEllipse(0, -0.1, 0.046, 0.046, 0, v[2]),
		phantom.NewEllipse(-0.08, -0.605, 0.046, 0.023, 0, v[3]),
		phantom.NewEllipse(0, -0.605, 0.023, 0.023, 0, v[4]),
		phantom.NewEllipse(0.06, -0.605, 0.023, 0.046, 0, v[5]),
		phantom.NewEllipse(0.22, 0, 0.11, 0.31, -18, v[6]),
		phantom.NewEllipse(-0.22, 0, 0.16, 0.41, 18, v[7]),
		phantom.NewEllipse(0, -0.0184, 0.6624, 0.874, 0, v[8]),
		phantom.NewEllipse(0, 0, 0.69, 0.92, 0, v[9]),
	}
}
