// Package viewport fits abstract 2D drawings onto pixel canvases.
//
// A [BoundingBox] describes the extent of a drawing in its own coordinate
// system (y up).  A [Viewport] derives a canvas size and an affine transform
// from a bounding box and a [SideLength] policy, so that the drawing exactly
// fills the canvas with the aspect ratio preserved.  Drawing happens through
// a caller-supplied [DrawFunc] which receives a transformed
// [github.com/gogpu/gg] context.
//
// For regression testing, [Viewport.CompareOrCreate] renders a drawing and
// scores it against a stored reference image, creating the reference on
// first use.
package viewport

//go:generate go run ./scenes/genrefs

import (
	"math"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Viewport maps a bounding box onto a pixel canvas of fixed size.
//
// Use [FromBoundingBox] to construct a Viewport.  A Viewport is immutable
// once constructed; the exported fields are for reading only.
type Viewport struct {
	// Width and Height give the canvas size in pixels.
	Width, Height int

	// Scale converts abstract units into device pixels.
	Scale float64

	// M transforms abstract coordinates into device coordinates.
	// Device y increases downwards, so the box corner (XMin, YMax)
	// maps to the device origin (0, 0).
	M matrix.Matrix
}

// FromBoundingBox fits a viewport to the given bounding box.
//
// The dimension selected by side is pinned to the requested pixel count,
// which determines the scale factor; the other canvas dimension follows from
// the box's aspect ratio, rounded to the nearest pixel (at least 1).
//
// FromBoundingBox returns a [*SideLengthError] if the pixel count is not
// positive, and a [*DegenerateBoundingBoxError] if the selected dimension of
// the box has zero extent.
func FromBoundingBox(box BoundingBox, side SideLength) (*Viewport, error) {
	px, dim, dimIsWidth := side.resolve(box.Width(), box.Height())
	if px <= 0 {
		return nil, &SideLengthError{Pixels: px}
	}
	if dim == 0 {
		return nil, &DegenerateBoundingBoxError{Box: box}
	}

	s := float64(px) / dim

	var wPx, hPx int
	if dimIsWidth {
		wPx = px
		hPx = max(int(math.Round(s*box.Height())), 1)
	} else {
		hPx = px
		wPx = max(int(math.Round(s*box.Width())), 1)
	}

	// Move (XMin, YMax) to the origin, then scale by s with y flipped.
	m := matrix.Translate(-box.XMin, -box.YMax).Mul(matrix.Scale(s, -s))

	return &Viewport{
		Width:  wPx,
		Height: hPx,
		Scale:  s,
		M:      m,
	}, nil
}

// ToDevice maps a point from abstract coordinates to device pixel
// coordinates.
func (v *Viewport) ToDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: v.M[0]*p.X + v.M[2]*p.Y + v.M[4],
		Y: v.M[1]*p.X + v.M[3]*p.Y + v.M[5],
	}
}

// ggMatrix converts the transform into the drawing engine's representation.
func (v *Viewport) ggMatrix() gg.Matrix {
	return gg.Matrix{
		A: v.M[0], B: v.M[2], C: v.M[4],
		D: v.M[1], E: v.M[3], F: v.M[5],
	}
}
