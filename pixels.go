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

// Package pixels implements the classical algorithms for turning 2D
// geometry into raster output: DDA and Bresenham lines, the midpoint
// circle, Cohen-Sutherland and Liang-Barsky clipping against a viewport,
// and affine transforms of segments in homogeneous coordinates.
//
// All functions are pure.  They allocate their results and keep no state
// between calls, so they may be used concurrently without synchronisation.
//
// Coordinates follow the mathematical convention: y grows upwards, so the
// "top" edge of a viewport is the one with the larger y value.  Callers
// painting onto a y-down surface can flip the result, the algorithms do not
// depend on the orientation.
package pixels

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNegativeRadius is returned when a circle is requested with r < 0.
	ErrNegativeRadius = errors.New("negative radius")

	// ErrInvalidViewport is returned when a viewport has xMin > xMax or
	// yMin > yMax.
	ErrInvalidViewport = errors.New("invalid viewport")
)

// Segment is a directed line segment with real-valued endpoints.
type Segment struct {
	P0, P1 vec.Vec2
}

// PixelSegment is a directed line segment between pixel positions.
type PixelSegment struct {
	P0, P1 image.Point
}

// Pixels rasterises the segment using Bresenham's algorithm.
func (s PixelSegment) Pixels() []image.Point {
	return LineBresenham(s.P0, s.P1)
}

// Round returns the segment with both endpoints rounded to the nearest
// pixel, halfway cases away from zero.
func (s Segment) Round() PixelSegment {
	return PixelSegment{P0: roundPoint(s.P0), P1: roundPoint(s.P1)}
}

// Real converts the segment to real-valued coordinates.
func (s PixelSegment) Real() Segment {
	return Segment{P0: toVec(s.P0), P1: toVec(s.P1)}
}

func roundPoint(v vec.Vec2) image.Point {
	return image.Point{X: roundInt(v.X), Y: roundInt(v.Y)}
}

func roundInt(x float64) int {
	return int(math.Round(x))
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
