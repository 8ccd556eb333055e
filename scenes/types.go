// seehuhn.de/go/viewport - fit abstract drawings onto pixel canvases
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

// Package scenes defines the drawings used for reference image tests.
package scenes

import (
	"seehuhn.de/go/viewport"
)

// Scene defines a single drawing together with the viewport it is
// rendered through.
type Scene struct {
	Name string // lowercase a-z and _ only
	Box  viewport.BoundingBox
	Side viewport.SideLength
	Draw viewport.DrawFunc
}

// box builds a bounding box from static coordinates.
func box(xMin, xMax, yMin, yMax float64) viewport.BoundingBox {
	b, err := viewport.NewBox(xMin, xMax, yMin, yMax)
	if err != nil {
		panic(err)
	}
	return b
}
