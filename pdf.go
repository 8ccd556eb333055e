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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// writePDF embeds the rendered canvas into a single-page PDF document.
// The page is sized at one PDF point per pixel, so the image fills the
// page exactly.
func (v *Viewport) writePDF(path string, img image.Image) error {
	paper := &pdf.Rectangle{URx: float64(v.Width), URy: float64(v.Height)}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Image XObjects are drawn into the unit square.
	xobj := pdfimage.FromImage(img, color.SpaceDeviceRGB, 8)
	page.PushGraphicsState()
	page.Transform(matrix.Scale(float64(v.Width), float64(v.Height)))
	page.DrawXObject(xobj)
	page.PopGraphicsState()

	return page.Close()
}
