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
	"fmt"
	"image"
)

// CircleBresenham rasterises the circle with the given center and radius
// using the midpoint (Bresenham) circle algorithm.
//
// One octant is traced from (0, r) until x > y, and every step emits the
// eight mirror images of the current offset.  Points on the diagonals and
// on the axes therefore occur more than once; for r = 0 the result is the
// center repeated eight times.
//
// A negative radius gives an error wrapping ErrNegativeRadius.
func CircleBresenham(center image.Point, r int) ([]image.Point, error) {
	if r < 0 {
		return nil, fmt.Errorf("circle at %v with radius %d: %w", center, r, ErrNegativeRadius)
	}

	// One octant has about r/√2 steps.
	res := make([]image.Point, 0, 8*(r*3/4+1))

	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		res = append(res,
			image.Point{X: center.X + x, Y: center.Y + y},
			image.Point{X: center.X + x, Y: center.Y - y},
			image.Point{X: center.X - x, Y: center.Y + y},
			image.Point{X: center.X - x, Y: center.Y - y},
			image.Point{X: center.X + y, Y: center.Y + x},
			image.Point{X: center.X + y, Y: center.Y - x},
			image.Point{X: center.X - y, Y: center.Y + x},
			image.Point{X: center.X - y, Y: center.Y - x},
		)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return res, nil
}
