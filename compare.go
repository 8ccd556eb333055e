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
	"errors"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

// Result reports the outcome of a comparison against a reference image.
type Result struct {
	// Score is the structural similarity between the rendered canvas and
	// the reference, in the range [0, 1].  1 means pixel-identical.
	Score float64

	// Pass reports whether Score reached the caller's threshold.
	Pass bool

	// Created reports that no reference existed and the rendered canvas
	// was stored as the new reference instead of being compared.
	Created bool
}

// referenceExtensions restricts comparisons to lossless references.
var referenceExtensions = []string{"png"}

// CompareToImage renders the draw callback through the viewport and scores
// the result against the reference image stored at refPath.
//
// The comparison passes if the similarity score (see [Similarity]) is at
// least threshold; threshold must be in the range [0, 1].  The score is
// returned even when the comparison fails, so callers can report how far
// off the rendering is.
//
// Only PNG references are supported ([*FormatError] otherwise).  A missing
// reference is reported as [*ReferenceNotFoundError], an unreadable one as
// [*DecodeError], and a reference whose pixel dimensions differ from the
// viewport's as [*DimensionMismatchError].
func (v *Viewport) CompareToImage(refPath string, draw DrawFunc, threshold float64) (Result, error) {
	if fileExt(refPath) != "png" {
		return Result{}, &FormatError{Path: refPath, Allowed: referenceExtensions}
	}

	img, err := v.Render(draw)
	if err != nil {
		return Result{}, err
	}

	ref, err := loadReference(refPath)
	if err != nil {
		return Result{}, err
	}

	score, err := Similarity(img, ref)
	if err != nil {
		return Result{}, err
	}

	return Result{Score: score, Pass: score >= threshold}, nil
}

// CompareOrCreate behaves like [Viewport.CompareToImage] if the reference
// image exists.  Otherwise the rendered canvas is written to refPath as the
// new reference and a Result with Created set is returned.
//
// This makes the same call usable both for bootstrapping a golden file on
// the first run and for checking against it on subsequent runs.
func (v *Viewport) CompareOrCreate(refPath string, draw DrawFunc, threshold float64) (Result, error) {
	if fileExt(refPath) != "png" {
		return Result{}, &FormatError{Path: refPath, Allowed: referenceExtensions}
	}

	_, err := os.Stat(refPath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := v.WriteToFile(refPath, draw); err != nil {
			return Result{}, err
		}
		// A freshly created reference trivially matches itself.
		return Result{Score: 1, Pass: true, Created: true}, nil
	} else if err != nil {
		return Result{}, err
	}

	return v.CompareToImage(refPath, draw, threshold)
}

func loadReference(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ReferenceNotFoundError{Path: path}
		}
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// SSIM parameters.  The stabilising constants follow Wang et al. 2004 for
// 8-bit pixel values.
const (
	ssimWindow = 8
	ssimC1     = (0.01 * 255) * (0.01 * 255)
	ssimC2     = (0.03 * 255) * (0.03 * 255)
)

// Similarity returns a structural similarity score for two images of equal
// pixel dimensions, in the range [0, 1].  A score of 1 means the images are
// pixel-identical; small amounts of anti-aliasing noise reduce the score
// only slightly.
//
// The metric is the mean SSIM over non-overlapping 8x8 windows of the
// grayscale versions of both images (partial windows at the right and
// bottom edges are included).  Images of differing dimensions yield a
// [*DimensionMismatchError].
func Similarity(a, b image.Image) (float64, error) {
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bw, bh := b.Bounds().Dx(), b.Bounds().Dy()
	if aw != bw || ah != bh {
		return 0, &DimensionMismatchError{
			AWidth: aw, AHeight: ah,
			BWidth: bw, BHeight: bh,
		}
	}

	pa := grayPix(a)
	pb := grayPix(b)

	var sum float64
	var n int
	for y0 := 0; y0 < ah; y0 += ssimWindow {
		for x0 := 0; x0 < aw; x0 += ssimWindow {
			x1 := min(x0+ssimWindow, aw)
			y1 := min(y0+ssimWindow, ah)
			sum += windowSSIM(pa, pb, aw, x0, y0, x1, y1)
			n++
		}
	}

	score := sum / float64(n)

	// SSIM of strongly anti-correlated windows can be negative.
	return min(max(score, 0), 1), nil
}

// grayPix returns the grayscale pixel values of img in row-major order.
func grayPix(img image.Image) []float64 {
	g := imaging.Grayscale(img)
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]float64, w*h)
	for y := range h {
		row := g.Pix[y*g.Stride:]
		for x := range w {
			pix[y*w+x] = float64(row[x*4])
		}
	}
	return pix
}

// windowSSIM computes the SSIM score of one window.  Both pixel slices are
// in row-major order with the given stride; the window covers
// [x0,x1) x [y0,y1).
func windowSSIM(a, b []float64, stride, x0, y0, x1, y1 int) float64 {
	n := float64((x1 - x0) * (y1 - y0))

	var muA, muB float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			muA += a[y*stride+x]
			muB += b[y*stride+x]
		}
	}
	muA /= n
	muB /= n

	var varA, varB, cov float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			da := a[y*stride+x] - muA
			db := b[y*stride+x] - muB
			varA += da * da
			varB += db * db
			cov += da * db
		}
	}
	varA /= n
	varB /= n
	cov /= n

	return ((2*muA*muB + ssimC1) * (2*cov + ssimC2)) /
		((muA*muA + muB*muB + ssimC1) * (varA + varB + ssimC2))
}
