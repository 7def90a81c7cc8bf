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
	"fmt"
	"image"

	"seehuhn.de/go/pixels"
)

// Result is the outcome of running a test case.
type Result struct {
	// Pixels is the rasterised output.  It is empty if a clip operation
	// found no intersection.
	Pixels []image.Point

	// Segment is the geometry which was rasterised for clip and transform
	// operations, before rounding.
	Segment pixels.Segment

	// Visible is false if a clip operation rejected the segment.
	Visible bool
}

// Run applies the test case operation.
func (tc TestCase) Run() (*Result, error) {
	res := &Result{Visible: true}

	switch op := tc.Op.(type) {
	case Line:
		switch op.Method {
		case DDA:
			res.Pixels = pixels.LineDDA(tc.P0, tc.P1)
		default:
			res.Pixels = pixels.LineBresenham(ipt(tc.P0), ipt(tc.P1))
		}
		res.Segment = pixels.Segment{P0: tc.P0, P1: tc.P1}

	case Circle:
		pix, err := pixels.CircleBresenham(ipt(tc.P0), op.Radius)
		if err != nil {
			return nil, err
		}
		res.Pixels = pix

	case Clip:
		vp, err := pixels.ViewportFromRect(op.Viewport)
		if err != nil {
			return nil, err
		}
		switch op.Method {
		case LiangBarsky:
			seg, ok := pixels.ClipLiangBarsky(tc.P0, tc.P1, vp)
			res.Segment, res.Visible = seg, ok
		default:
			seg, ok := pixels.ClipCohenSutherland(tc.P0, tc.P1, vp)
			res.Segment, res.Visible = seg.Real(), ok
		}
		if res.Visible {
			res.Pixels = res.Segment.Round().Pixels()
		}

	case Transform:
		m := pixels.FromAffine(op.CTM)
		var seg pixels.PixelSegment
		if op.About {
			seg = pixels.TransformAbout(ipt(tc.P0), ipt(tc.P1), m)
		} else {
			seg = pixels.ApplyTransform(ipt(tc.P0), ipt(tc.P1), m)
		}
		res.Segment = seg.Real()
		res.Pixels = seg.Pixels()

	default:
		return nil, fmt.Errorf("test case %q: unsupported operation %T", tc.Name, tc.Op)
	}

	return res, nil
}
