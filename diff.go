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
	"image"
	"image/color"
	"image/png"
	"os"
)

// SaveDiffImage writes a side-by-side comparison of two images of equal
// dimensions to a PNG file, for inspecting why a comparison failed.
//
// The output has three panels: got (left), the difference (middle) and
// want (right).  In the difference panel, pixels where got is darker than
// want show green, pixels where it is lighter show red, and matching
// pixels stay black.  The intensity encodes the size of the difference.
func SaveDiffImage(path string, got, want image.Image) (err error) {
	gw, gh := got.Bounds().Dx(), got.Bounds().Dy()
	ww, wh := want.Bounds().Dx(), want.Bounds().Dy()
	if gw != ww || gh != wh {
		return &DimensionMismatchError{
			AWidth: gw, AHeight: gh,
			BWidth: ww, BHeight: wh,
		}
	}

	pg := grayPix(got)
	pw := grayPix(want)

	img := image.NewRGBA(image.Rect(0, 0, gw*3, gh))
	for y := range gh {
		for x := range gw {
			i := y*gw + x

			g := uint8(pg[i])
			img.Set(x, y, color.RGBA{R: g, G: g, B: g, A: 255})

			// Middle panel: green where got is darker than want,
			// red where it is lighter, black where they match.
			diff := int(pw[i]) - int(pg[i])
			var c color.RGBA
			switch {
			case diff > 0:
				c = color.RGBA{G: uint8(diff), A: 255}
			case diff < 0:
				c = color.RGBA{R: uint8(-diff), A: 255}
			default:
				c = color.RGBA{A: 255}
			}
			img.Set(x+gw, y, c)

			w := uint8(pw[i])
			img.Set(x+gw*2, y, color.RGBA{R: w, G: w, B: w, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
