// seehuhn.de/go/pixels - classical raster algorithms
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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterisation test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	P0, P1 vec.Vec2  // segment endpoints; P0 is the center for circles
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // what to do with the geometry
}

// Operation is the algorithm to apply to the test case geometry.
type Operation interface {
	isOperation()
}

// LineMethod selects a line rasterisation algorithm.
type LineMethod int

const (
	Bresenham LineMethod = iota
	DDA
)

func (m LineMethod) String() string {
	switch m {
	case Bresenham:
		return "bresenham"
	case DDA:
		return "dda"
	default:
		return "unknown"
	}
}

// Line rasterises the segment P0-P1.
type Line struct {
	Method LineMethod
}

func (Line) isOperation() {}

// Circle rasterises the circle around P0.  P1 is ignored.
type Circle struct {
	Radius int
}

func (Circle) isOperation() {}

// ClipMethod selects a clipping algorithm.
type ClipMethod int

const (
	CohenSutherland ClipMethod = iota
	LiangBarsky
)

func (m ClipMethod) String() string {
	switch m {
	case CohenSutherland:
		return "cohen_sutherland"
	case LiangBarsky:
		return "liang_barsky"
	default:
		return "unknown"
	}
}

// Clip clips the segment P0-P1 to a viewport and rasterises the visible
// part with Bresenham's algorithm.
type Clip struct {
	Method   ClipMethod
	Viewport rect.Rect // LLx/LLy are the minimum coordinates
}

func (Clip) isOperation() {}

// Transform maps the segment P0-P1 through an affine matrix and rasterises
// the result with Bresenham's algorithm.  The endpoints are truncated to
// integers before the transform.
type Transform struct {
	CTM   matrix.Matrix
	About bool // use P0 as the fixed point instead of the origin
}

func (Transform) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ipt truncates a vec.Vec2 to integer coordinates.
func ipt(v vec.Vec2) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}
