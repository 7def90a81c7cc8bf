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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// clipViewport is the viewport used by most clip cases.
var clipViewport = rect.Rect{LLx: 16, LLy: 16, URx: 48, URy: 48}

// clipCases contains every clip geometry twice, once for each method,
// so that the reference output of the two algorithms can be compared.
var clipCases = bothClipMethods([]clipInput{
	{
		name: "horizontal_through",
		p0:   pt(-5, 32),
		p1:   pt(70, 32),
		vp:   clipViewport,
	},
	{
		name: "diagonal_through",
		p0:   pt(0, 0),
		p1:   pt(63, 63),
		vp:   clipViewport,
	},
	{
		name: "inside",
		p0:   pt(20, 24),
		p1:   pt(44, 40),
		vp:   clipViewport,
	},
	{
		name: "outside_above",
		p0:   pt(20, 56),
		p1:   pt(44, 60),
		vp:   clipViewport,
	},
	{
		name: "parallel_outside",
		p0:   pt(8, 4),
		p1:   pt(8, 60),
		vp:   clipViewport,
	},
	{
		name: "misses_corner",
		p0:   pt(2, 40),
		p1:   pt(26, 62),
		vp:   clipViewport,
	},
	{
		name: "one_end_inside",
		p0:   pt(30, 30),
		p1:   pt(60, 5),
		vp:   clipViewport,
	},
	{
		name: "steep_crossing",
		p0:   pt(30.5, 2.25),
		p1:   pt(35.75, 61.5),
		vp:   clipViewport,
	},
	{
		name: "degenerate_viewport",
		p0:   pt(0, 32),
		p1:   pt(63, 32),
		vp:   rect.Rect{LLx: 32, LLy: 32, URx: 32, URy: 32},
	},
})

type clipInput struct {
	name   string
	p0, p1 vec.Vec2
	vp     rect.Rect
}

func bothClipMethods(in []clipInput) []TestCase {
	var res []TestCase
	for _, method := range []ClipMethod{CohenSutherland, LiangBarsky} {
		for _, c := range in {
			res = append(res, TestCase{
				Name:   method.String() + "_" + c.name,
				P0:     c.p0,
				P1:     c.p1,
				Width:  64,
				Height: 64,
				Op:     Clip{Method: method, Viewport: c.vp},
			})
		}
	}
	return res
}
