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

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
)

// BoundingBox is an axis-aligned rectangle in abstract drawing coordinates,
// with y increasing upwards.  The zero value is the empty box at the origin.
//
// A BoundingBox is an immutable value: all methods return new values and
// valid boxes always satisfy XMin <= XMax and YMin <= YMax.  Boxes with zero
// width or height are legal; they only become an error when a [Viewport]
// tries to pin a pixel count to the zero-extent axis.
type BoundingBox struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewBox returns the bounding box with the given extents.
// All extents must be finite, with xMin <= xMax and yMin <= yMax.
func NewBox(xMin, xMax, yMin, yMax float64) (BoundingBox, error) {
	ok := xMin <= xMax && yMin <= yMax
	for _, v := range [4]float64{xMin, xMax, yMin, yMax} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			ok = false
		}
	}
	if !ok {
		return BoundingBox{}, &InvalidBoundingBoxError{
			XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax,
		}
	}
	return BoundingBox{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}

// FromRect converts a rectangle from seehuhn.de/go/geom into a BoundingBox.
func FromRect(r rect.Rect) (BoundingBox, error) {
	return NewBox(r.LLx, r.URx, r.LLy, r.URy)
}

// Rect converts the bounding box to a rectangle for use with
// seehuhn.de/go/geom.
func (b BoundingBox) Rect() rect.Rect {
	return rect.Rect{LLx: b.XMin, LLy: b.YMin, URx: b.XMax, URy: b.YMax}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.YMax - b.YMin
}

// Union returns the smallest bounding box covering all the given boxes.
// At least one box must be given.
func Union(boxes ...BoundingBox) (BoundingBox, error) {
	if len(boxes) == 0 {
		return BoundingBox{}, errors.New("viewport: union of no bounding boxes")
	}
	res := boxes[0]
	for _, b := range boxes[1:] {
		res.XMin = min(res.XMin, b.XMin)
		res.XMax = max(res.XMax, b.XMax)
		res.YMin = min(res.YMin, b.YMin)
		res.YMax = max(res.YMax, b.YMax)
	}
	return res, nil
}

// Grow returns the box enlarged by margin on all four sides.  A negative
// margin shrinks the box; if the box would invert, the affected axis
// collapses to its midpoint.
func (b BoundingBox) Grow(margin float64) BoundingBox {
	res := BoundingBox{
		XMin: b.XMin - margin,
		XMax: b.XMax + margin,
		YMin: b.YMin - margin,
		YMax: b.YMax + margin,
	}
	if res.XMin > res.XMax {
		mid := (b.XMin + b.XMax) / 2
		res.XMin, res.XMax = mid, mid
	}
	if res.YMin > res.YMax {
		mid := (b.YMin + b.YMax) / 2
		res.YMin, res.YMax = mid, mid
	}
	return res
}
