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
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DrawFunc draws onto a context which the viewport has sized and
// transformed.  Inside the callback, coordinates are abstract coordinates;
// line widths are in abstract units as well, since the drawing engine scales
// stroke geometry together with the path.
//
// The callback is invoked exactly once, synchronously.  An error returned
// from the callback aborts the surrounding operation and is reported to the
// caller wrapped in a [*DrawError].
type DrawFunc func(dc *gg.Context) error

// FileExtensions lists the file types known to [Viewport.WriteToFile].
//
// All except "pdf" are raster formats encoded at the viewport's pixel
// dimensions.  For "pdf", the rendered canvas is embedded into a single-page
// document at one PDF point per pixel.
var FileExtensions = []string{"bmp", "jpeg", "jpg", "pdf", "png", "tiff", "webp"}

// rasterEncoders maps file extensions to raster codecs.
var rasterEncoders = map[string]func(w io.Writer, img image.Image) error{
	"bmp": bmp.Encode,
	"jpg": encodeJPEG, "jpeg": encodeJPEG,
	"png":  png.Encode,
	"tiff": encodeTIFF,
	"webp": encodeWebP,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

func encodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: true})
}

// fileExt returns the lower-case file extension of path, without the dot.
func fileExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Render draws the callback into an in-memory pixel buffer sized to the
// viewport's dimensions.  The drawing context exists only for the duration
// of the call; the returned buffer is an independent copy.
func (v *Viewport) Render(draw DrawFunc) (*image.NRGBA, error) {
	dc := gg.NewContext(v.Width, v.Height)
	defer dc.Close()

	dc.SetTransform(v.ggMatrix())
	if err := draw(dc); err != nil {
		return nil, &DrawError{Err: err}
	}

	// Detach the pixels from the context before it is closed.
	return imaging.Clone(dc.Image()), nil
}

// WriteToFile draws the callback through the viewport and writes the result
// to the named file.  The output format is chosen from the file extension;
// see [FileExtensions] for the supported types.
//
// The file is only created after the callback has completed successfully, so
// a failing callback leaves no output file behind.  Errors from the callback
// are reported as [*DrawError]; unrecognised extensions as [*FormatError];
// file system and codec failures keep their original error values.
func (v *Viewport) WriteToFile(path string, draw DrawFunc) error {
	ext := fileExt(path)
	encode, isRaster := rasterEncoders[ext]
	if !isRaster && ext != "pdf" {
		return &FormatError{Path: path, Allowed: FileExtensions}
	}

	img, err := v.Render(draw)
	if err != nil {
		return err
	}

	if ext == "pdf" {
		return v.writePDF(path, img)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	return nil
}
