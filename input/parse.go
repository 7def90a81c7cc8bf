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

package input

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ParseSegment parses the contents of four text fields as the integer
// endpoints of a segment.
func ParseSegment(x0, y0, x1, y1 string) (p0, p1 image.Point, err error) {
	v, err := parseInts([]field{{"x0", x0}, {"y0", y0}, {"x1", x1}, {"y1", y1}})
	if err != nil {
		return image.Point{}, image.Point{}, err
	}
	return image.Pt(v[0], v[1]), image.Pt(v[2], v[3]), nil
}

// ParseCircle parses the contents of three text fields as the center and
// radius of a circle.  Negative radii are accepted here and rejected by
// the rasteriser.
func ParseCircle(xc, yc, r string) (center image.Point, radius int, err error) {
	v, err := parseInts([]field{{"x", xc}, {"y", yc}, {"r", r}})
	if err != nil {
		return image.Point{}, 0, err
	}
	return image.Pt(v[0], v[1]), v[2], nil
}

// ParseAngle parses an angle in degrees.
func ParseAngle(s string) (float64, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("angle: %w", err)
	}
	return a, nil
}

type field struct {
	name, text string
}

func parseInts(fields []field) ([]int, error) {
	res := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f.text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		res[i] = v
	}
	return res, nil
}
