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

package pixels

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrix3 is a 3×3 matrix in homogeneous coordinates, stored in row-major
// order.  A point (x, y) is lifted to the column vector (x, y, 1) and
// multiplied from the left, so the translation is in entries 2 and 5.
//
// The bottom row is not restricted to (0, 0, 1), but Apply and
// ApplyTransform ignore the third homogeneous component.
type Matrix3 [9]float64

// Identity3 is the identity transformation.
var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Translation returns the matrix which moves points by (dx, dy).
func Translation(dx, dy float64) Matrix3 {
	return Matrix3{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	}
}

// Scaling returns the matrix which scales by sx and sy about the origin.
func Scaling(sx, sy float64) Matrix3 {
	return Matrix3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Rotation returns the matrix for a counter-clockwise rotation about the
// origin by the given angle in degrees.
func Rotation(angleDeg float64) Matrix3 {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Matrix3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// FromAffine converts a PDF-style affine matrix [a b c d e f], which maps
// (x, y) to (a·x + c·y + e, b·x + d·y + f), to homogeneous form.
func FromAffine(m matrix.Matrix) Matrix3 {
	return Matrix3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
		0, 0, 1,
	}
}

// Mul returns the product A·B.  Applying the product is the same as
// applying B first and then A.
func (A Matrix3) Mul(B Matrix3) Matrix3 {
	var C Matrix3
	for i := range 3 {
		for j := range 3 {
			var s float64
			for k := range 3 {
				s += A[3*i+k] * B[3*k+j]
			}
			C[3*i+j] = s
		}
	}
	return C
}

// Apply transforms a point without rounding.
func (A Matrix3) Apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: A[0]*v.X + A[1]*v.Y + A[2],
		Y: A[3]*v.X + A[4]*v.Y + A[5],
	}
}

// ApplyTransform maps both endpoints of a segment through m.  The
// transformed coordinates are truncated toward zero, not rounded, so for
// example a rotation by 360° can move a point by one pixel towards the
// origin.  Use Matrix3.Apply for the exact values.
func ApplyTransform(p0, p1 image.Point, m Matrix3) PixelSegment {
	return PixelSegment{
		P0: truncPoint(m.Apply(toVec(p0))),
		P1: truncPoint(m.Apply(toVec(p1))),
	}
}

// Rotate rotates both endpoints about the coordinate origin by the given
// angle in degrees, truncating like ApplyTransform.
func Rotate(p0, p1 image.Point, angleDeg float64) PixelSegment {
	return ApplyTransform(p0, p1, Rotation(angleDeg))
}

// OffsetToOrigin translates the segment so that p0 becomes the origin.
func OffsetToOrigin(p0, p1 image.Point) PixelSegment {
	return PixelSegment{P1: p1.Sub(p0)}
}

// OffsetFromOrigin translates both endpoints of s by origin.  It undoes
// OffsetToOrigin when origin is the first endpoint passed to it.
func OffsetFromOrigin(s PixelSegment, origin image.Point) PixelSegment {
	return PixelSegment{P0: s.P0.Add(origin), P1: s.P1.Add(origin)}
}

// TransformAbout applies m with p0 as the fixed point: the segment is moved
// so that p0 is at the origin, transformed, and moved back.
func TransformAbout(p0, p1 image.Point, m Matrix3) PixelSegment {
	s := OffsetToOrigin(p0, p1)
	s = ApplyTransform(s.P0, s.P1, m)
	return OffsetFromOrigin(s, p0)
}

func truncPoint(v vec.Vec2) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}
