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

// Package presets contains named shape tables for well-known phantoms.
package presets

//go:generate go run ./export
//go:generate go run ./genpdf

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/phantom"
)

// All maps preset names to functions returning the shape table.
// Every call returns a fresh slice.
var All = map[string]func() []phantom.Shape{
	"original":   SheppLogan,
	"modified":   ModifiedSheppLogan,
	"rectangles": Rectangles,
}

// Names returns the names of all presets, in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Render renders the named preset onto a width×height canvas.
func Render(name string, width, height int) (*phantom.Phantom, error) {
	shapes, ok := All[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return phantom.Render(shapes(), width, height), nil
}
