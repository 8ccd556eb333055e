// Command genrefs renders all scenes and stores the results as reference
// images under testdata/reference.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/viewport"
	"seehuhn.de/go/viewport/scenes"
)

func main() {
	const dir = "testdata/reference"
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			v, err := viewport.FromBoundingBox(sc.Box, sc.Side)
			if err != nil {
				panic(err)
			}

			name := category + "_" + sc.Name + ".png"
			path := filepath.Join(dir, name)
			if err := v.WriteToFile(path, sc.Draw); err != nil {
				panic(err)
			}
			fmt.Println(path)
		}
	}
}
