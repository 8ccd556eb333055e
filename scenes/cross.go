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
	"github.com/gogpu/gg"

	"seehuhn.de/go/viewport"
)

var crossScenes = []Scene{
	{
		Name: "black",
		Box:  box(-1, 1, -1, 1),
		Side: viewport.Long(100),
		Draw: drawCross(0, 0, 0),
	},
	{
		Name: "blue",
		Box:  box(-1, 1, -1, 1),
		Side: viewport.Long(100),
		Draw: drawCross(0, 0, 1),
	},
	{
		Name: "offcentre",
		Box:  box(-1, 3, -1, 1),
		Side: viewport.Height(100),
		Draw: drawCross(0, 0, 0),
	},
}

// drawCross paints a white background and strokes two unit-length axis
// segments through the origin in the given colour.
func drawCross(r, g, b float64) viewport.DrawFunc {
	return func(dc *gg.Context) error {
		dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})

		dc.SetRGB(r, g, b)
		dc.SetLineWidth(0.2)

		dc.MoveTo(-1, 0)
		dc.LineTo(1, 0)
		if err := dc.Stroke(); err != nil {
			return err
		}

		dc.MoveTo(0, -1)
		dc.LineTo(0, 1)
		return dc.Stroke()
	}
}
