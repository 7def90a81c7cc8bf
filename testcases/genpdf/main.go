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

// Command genpdf generates reference PDFs for the test cases.
// Every pixel of a result is drawn as a white unit square on a black page,
// with the exact input geometry stroked in grey on top.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pixels/testcases"
)

const refDir = "testdata/reference"

// circleGuideSegments is the number of line segments used to approximate
// a circle guide.
const circleGuideSegments = 72

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	res, err := tc.Run()
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF user space is y-up like the pixel coordinates, so no flip is needed.
	page.SetFillColor(color.DeviceGray(1))
	for _, p := range res.Pixels {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	if len(res.Pixels) > 0 {
		page.Fill()
	}

	// Guides are drawn through pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.25)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, guide := range guides(tc) {
		for cmd, pts := range guide.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// guides returns the exact geometry of a test case.
func guides(tc testcases.TestCase) []*path.Data {
	switch op := tc.Op.(type) {
	case testcases.Circle:
		return []*path.Data{circle(tc.P0, float64(op.Radius))}
	case testcases.Clip:
		return []*path.Data{segment(tc.P0, tc.P1), rectangle(op.Viewport)}
	default:
		return []*path.Data{segment(tc.P0, tc.P1)}
	}
}

func segment(p0, p1 vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(p0).LineTo(p1)
}

func rectangle(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

func circle(center vec.Vec2, radius float64) *path.Data {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: center.X + radius, Y: center.Y})
	for i := 1; i < circleGuideSegments; i++ {
		phi := 2 * math.Pi * float64(i) / circleGuideSegments
		p = p.LineTo(vec.Vec2{X: center.X + radius*math.Cos(phi), Y: center.Y + radius*math.Sin(phi)})
	}
	return p.Close()
}
