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

package scenes

import (
	"math"

	"github.com/gogpu/gg"

	"seehuhn.de/go/viewport"
)

var shapeScenes = []Scene{
	{
		Name: "rectangle_with_origin",
		Box:  box(-2, 7, -4, 4),
		Side: viewport.Width(450),
		Draw: drawRectangleWithOrigin,
	},
	{
		Name: "filled_star",
		Box:  box(-1.2, 1.2, -1.2, 1.2),
		Side: viewport.Short(120),
		Draw: drawFilledStar,
	},
	{
		Name: "circle",
		Box:  box(-1.5, 1.5, -1.5, 1.5),
		Side: viewport.Long(96),
		Draw: drawCircle,
	},
}

// drawRectangleWithOrigin strokes a blue rectangle together with a black
// origin marker, demonstrating a drawing that is not centred on the origin.
func drawRectangleWithOrigin(dc *gg.Context) error {
	dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})

	dc.MoveTo(-1, -3)
	dc.LineTo(6, -3)
	dc.LineTo(6, 3)
	dc.LineTo(-1, 3)
	dc.ClosePath()
	dc.SetLineWidth(0.1)
	dc.SetRGB(0, 0, 1)
	if err := dc.Stroke(); err != nil {
		return err
	}

	// origin marker
	dc.SetLineWidth(0.2)
	dc.SetRGB(0, 0, 0)
	dc.MoveTo(0, 0)
	dc.LineTo(0.5, 0)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.MoveTo(0, 0)
	dc.LineTo(0, 0.5)
	return dc.Stroke()
}

// drawFilledStar fills a five-pointed star centred on the origin.
func drawFilledStar(dc *gg.Context) error {
	dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})

	for i := range 5 {
		angle := math.Pi/2 + float64(i)*4*math.Pi/5
		x := math.Cos(angle)
		y := math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetRGB(0, 0, 0)
	return dc.Fill()
}

// drawCircle strokes a unit circle centred on the origin.
func drawCircle(dc *gg.Context) error {
	dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})

	dc.DrawCircle(0, 0, 1)
	dc.SetLineWidth(0.15)
	dc.SetRGB(0, 0, 0)
	return dc.Stroke()
}
