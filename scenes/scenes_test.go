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
	"regexp"
	"testing"

	"seehuhn.de/go/viewport"
)

var validName = regexp.MustCompile(`^[a-z][a-z_]*$`)

func TestSceneNames(t *testing.T) {
	for category, ss := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, sc := range ss {
			if !validName.MatchString(sc.Name) {
				t.Errorf("%s: invalid scene name %q", category, sc.Name)
			}
			if seen[sc.Name] {
				t.Errorf("%s: duplicate scene name %q", category, sc.Name)
			}
			seen[sc.Name] = true
		}
	}
}

func TestScenesRender(t *testing.T) {
	for category, ss := range All {
		for _, sc := range ss {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				v, err := viewport.FromBoundingBox(sc.Box, sc.Side)
				if err != nil {
					t.Fatal(err)
				}
				img, err := v.Render(sc.Draw)
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
	}
}
