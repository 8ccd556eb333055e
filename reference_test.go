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

package viewport_test

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/viewport"
	"seehuhn.de/go/viewport/scenes"
)

// TestAgainstReference renders every scene and compares the result against
// the stored reference image.  Missing references are created on the first
// run; use `go generate` to regenerate them all.
func TestAgainstReference(t *testing.T) {
	if err := os.MkdirAll(filepath.Join("testdata", "reference"), 0755); err != nil {
		t.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				v, err := viewport.FromBoundingBox(sc.Box, sc.Side)
				if err != nil {
					t.Fatal(err)
				}

				refPath := filepath.Join("testdata", "reference", name+".png")
				res, err := v.CompareOrCreate(refPath, sc.Draw, 0.99)
				if err != nil {
					t.Fatal(err)
				}
				if res.Created {
					t.Logf("created new reference %s", refPath)
					return
				}

				if !res.Pass {
					writeDebugImage(t, name, v, sc.Draw, refPath)
					t.Errorf("similarity %g below 0.99", res.Score)
				}
			})
		}
	}
}

// writeDebugImage stores a got/diff/want panel for a failing comparison
// under debug/, for manual inspection.
func writeDebugImage(t *testing.T, name string, v *viewport.Viewport, draw viewport.DrawFunc, refPath string) {
	t.Helper()

	got, err := v.Render(draw)
	if err != nil {
		return
	}
	want, err := imaging.Open(refPath)
	if err != nil {
		return
	}
	if err := os.MkdirAll("debug", 0755); err != nil {
		return
	}
	path := filepath.Join("debug", name+".png")
	if err := viewport.SaveDiffImage(path, got, want); err == nil {
		t.Logf("debug image written to %s", path)
	}
}
