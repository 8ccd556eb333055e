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

package viewport

// SideLength selects which dimension of a bounding box is pinned to a fixed
// number of pixels when fitting a [Viewport].  The four variants are [Long],
// [Short], [Width] and [Height]; no other implementations exist.
//
// [Long] and [Short] refer to whichever of the box's width and height is
// numerically larger or smaller; [Width] and [Height] pin a fixed axis
// regardless of the box's proportions.
type SideLength interface {
	// resolve returns the requested pixel count, the extent of the
	// constrained dimension, and whether that dimension is the width.
	resolve(w, h float64) (px int, dim float64, dimIsWidth bool)
}

// Long pins the longer side of the bounding box to the given pixel count.
type Long int

// Short pins the shorter side of the bounding box to the given pixel count.
type Short int

// Width pins the width of the bounding box to the given pixel count.
type Width int

// Height pins the height of the bounding box to the given pixel count.
type Height int

func (l Long) resolve(w, h float64) (int, float64, bool) {
	if w >= h {
		return int(l), w, true
	}
	return int(l), h, false
}

func (s Short) resolve(w, h float64) (int, float64, bool) {
	if w <= h {
		return int(s), w, true
	}
	return int(s), h, false
}

func (x Width) resolve(w, h float64) (int, float64, bool) {
	return int(x), w, true
}

func (y Height) resolve(w, h float64) (int, float64, bool) {
	return int(y), h, false
}
