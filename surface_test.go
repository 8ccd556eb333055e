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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// testViewport returns a small viewport together with a draw callback which
// strokes a black cross on a white background.
func testViewport(t *testing.T) (*Viewport, DrawFunc) {
	t.Helper()

	box := BoundingBox{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	v, err := FromBoundingBox(box, Long(64))
	if err != nil {
		t.Fatal(err)
	}

	draw := func(dc *gg.Context) error {
		dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})
		dc.SetRGB(0, 0, 0)
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
	return v, draw
}

func TestRender(t *testing.T) {
	v, draw := testViewport(t)

	img, err := v.Render(draw)
	if err != nil {
		t.Fatal(err)
	}

	b := img.Bounds()
	if b.Dx() != v.Width || b.Dy() != v.Height {
		t.Fatalf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), v.Width, v.Height)
	}

	// centre of the cross is black, the corners stay white
	centre := img.NRGBAAt(32, 32)
	if centre.R > 32 || centre.G > 32 || centre.B > 32 {
		t.Errorf("centre pixel not black: %v", centre)
	}
	corner := img.NRGBAAt(2, 2)
	if corner.R < 224 || corner.G < 224 || corner.B < 224 {
		t.Errorf("corner pixel not white: %v", corner)
	}
}

func TestWriteToFilePNG(t *testing.T) {
	v, draw := testViewport(t)

	path := filepath.Join(t.TempDir(), "cross.png")
	if err := v.WriteToFile(path, draw); err != nil {
		t.Fatal(err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != v.Width || b.Dy() != v.Height {
		t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), v.Width, v.Height)
	}
}

func TestWriteToFileFormats(t *testing.T) {
	v, draw := testViewport(t)
	dir := t.TempDir()

	// file formats which imaging can read back
	for _, ext := range []string{"bmp", "jpg", "jpeg", "tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "cross."+ext)
			if err := v.WriteToFile(path, draw); err != nil {
				t.Fatal(err)
			}
			img, err := imaging.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			b := img.Bounds()
			if b.Dx() != v.Width || b.Dy() != v.Height {
				t.Errorf("got %dx%d, want %dx%d",
					b.Dx(), b.Dy(), v.Width, v.Height)
			}
		})
	}

	// file formats checked by signature only
	magic := map[string][]byte{
		"webp": []byte("RIFF"),
		"pdf":  []byte("%PDF"),
	}
	for ext, want := range magic {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "cross."+ext)
			if err := v.WriteToFile(path, draw); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, want) {
				t.Errorf("file does not start with %q", want)
			}
		})
	}
}

func TestWriteToFileUnknownExtension(t *testing.T) {
	v, draw := testViewport(t)

	path := filepath.Join(t.TempDir(), "cross.gif")
	err := v.WriteToFile(path, draw)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want *FormatError", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("file was created despite unsupported extension")
	}
}

func TestDrawCallbackError(t *testing.T) {
	v, _ := testViewport(t)

	sentinel := errors.New("no ink")
	draw := func(dc *gg.Context) error {
		return sentinel
	}

	path := filepath.Join(t.TempDir(), "cross.png")
	err := v.WriteToFile(path, draw)
	var drawErr *DrawError
	if !errors.As(err, &drawErr) {
		t.Fatalf("got %v, want *DrawError", err)
	}
	if !errors.Is(err, sentinel) {
		t.Error("callback error not preserved in chain")
	}

	// a failing callback must not leave a file behind
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("file was created despite draw error")
	}
}
