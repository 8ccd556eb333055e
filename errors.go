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
	"io/fs"
	"strings"
)

// InvalidBoundingBoxError indicates that the extents passed to [NewBox] are
// reversed on at least one axis, or not finite.
type InvalidBoundingBoxError struct {
	XMin, XMax, YMin, YMax float64
}

func (e *InvalidBoundingBoxError) Error() string {
	return fmt.Sprintf("viewport: invalid bounding box [%g,%g]x[%g,%g]",
		e.XMin, e.XMax, e.YMin, e.YMax)
}

// DegenerateBoundingBoxError indicates that the dimension selected by a
// [SideLength] has zero extent, so that no finite scale factor exists.
type DegenerateBoundingBoxError struct {
	Box BoundingBox
}

func (e *DegenerateBoundingBoxError) Error() string {
	return fmt.Sprintf("viewport: bounding box [%g,%g]x[%g,%g] is degenerate in the constrained dimension",
		e.Box.XMin, e.Box.XMax, e.Box.YMin, e.Box.YMax)
}

// SideLengthError indicates a non-positive pixel count in a [SideLength].
type SideLengthError struct {
	Pixels int
}

func (e *SideLengthError) Error() string {
	return fmt.Sprintf("viewport: side length must be positive, got %d", e.Pixels)
}

// DrawError wraps an error reported by a draw callback.  The callback's
// error is available via [errors.Unwrap].
type DrawError struct {
	Err error
}

func (e *DrawError) Error() string {
	return "viewport: draw callback failed: " + e.Err.Error()
}

func (e *DrawError) Unwrap() error {
	return e.Err
}

// FormatError indicates that the file extension of a path is not supported
// by the requested operation.
type FormatError struct {
	Path string

	// Allowed lists the file extensions valid for the operation.
	Allowed []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("viewport: unsupported file extension in %q (supported: %s)",
		e.Path, strings.Join(e.Allowed, ", "))
}

// ReferenceNotFoundError indicates that no reference image exists at the
// given path.  The error matches [io/fs.ErrNotExist] under [errors.Is].
type ReferenceNotFoundError struct {
	Path string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("viewport: reference image %q not found", e.Path)
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// DecodeError indicates that a reference image exists but could not be
// decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("viewport: cannot decode reference image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DimensionMismatchError indicates that two images have different pixel
// dimensions, so that no similarity score can be computed.
type DimensionMismatchError struct {
	AWidth, AHeight int
	BWidth, BHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("viewport: image dimensions differ: %dx%d vs %dx%d",
		e.AWidth, e.AHeight, e.BWidth, e.BHeight)
}
