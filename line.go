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

	"seehuhn.de/go/geom/vec"
)

// LineDDA rasterises the segment from p0 to p1 with the digital differential
// analyser.  The number of steps is the larger of |dx| and |dy|, rounded to
// an integer; each step adds a fixed real-valued increment to the current
// position and rounds it to the nearest pixel (halfway cases away from zero).
//
// The result starts at p0 and ends at p1, both rounded.  The last pixel is
// taken from p1 directly, since the accumulated increments can miss it by
// one ulp and land on the wrong side of a halfway case.  If the step count
// is zero, the result is the single pixel at p0.
func LineDDA(p0, p1 vec.Vec2) []image.Point {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	steps := roundInt(max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return []image.Point{roundPoint(p0)}
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)

	res := make([]image.Point, 0, steps+1)
	x, y := p0.X, p0.Y
	res = append(res, image.Point{X: roundInt(x), Y: roundInt(y)})
	for range steps - 1 {
		x += xInc
		y += yInc
		res = append(res, image.Point{X: roundInt(x), Y: roundInt(y)})
	}
	res = append(res, roundPoint(p1))
	return res
}

// LineBresenham rasterises the segment from p0 to p1 using only integer
// arithmetic.  The result contains exactly max(|dx|, |dy|)+1 pixels, starts
// at p0 and ends at p1.
//
// The axis with the larger delta drives the iteration; when both deltas are
// equal, x drives.  The error term is kept doubled, which gives the same
// decisions as the textbook form with a half-delta starting error.
func LineBresenham(p0, p1 image.Point) []image.Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx := 1
	if p0.X > p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}

	res := make([]image.Point, 0, max(dx, dy)+1)
	x, y := p0.X, p0.Y
	if dx >= dy {
		err := dx
		for x != p1.X {
			res = append(res, image.Point{X: x, Y: y})
			err -= 2 * dy
			if err < 0 {
				y += sy
				err += 2 * dx
			}
			x += sx
		}
	} else {
		err := dy
		for y != p1.Y {
			res = append(res, image.Point{X: x, Y: y})
			err -= 2 * dx
			if err < 0 {
				x += sx
				err += 2 * dy
			}
			y += sy
		}
	}
	res = append(res, image.Point{X: x, Y: y})
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
