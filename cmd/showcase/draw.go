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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/input"
	"seehuhn.de/go/pixels/paint"
)

// draw runs the named algorithm on the command line arguments and paints
// the result.
func draw(c *paint.Canvas, name string) error {
	switch name {
	case "bresenham", "dda":
		p0, p1, err := input.ParseSegment(*x0, *y0, *x1, *y1)
		if err != nil {
			return err
		}
		seg := pixels.PixelSegment{P0: p0, P1: p1}
		if name == "dda" {
			pix := pixels.LineDDA(seg.Real().P0, seg.Real().P1)
			logger.Debug("dda", "from", p0, "to", p1, "pixels", len(pix))
			c.Plot(pix, colorDDA)
		} else {
			pix := seg.Pixels()
			logger.Debug("bresenham", "from", p0, "to", p1, "pixels", len(pix))
			c.Plot(pix, colorResult)
		}
		if *guides {
			c.GuideLine(seg.Real(), colorGuide)
		}

	case "circle":
		center, r, err := input.ParseCircle(*x0, *y0, *radius)
		if err != nil {
			return err
		}
		pix, err := pixels.CircleBresenham(center, r)
		if err != nil {
			return err
		}
		logger.Debug("circle", "center", center, "radius", r, "pixels", len(pix))
		c.Plot(pix, colorResult)
		if *guides {
			c.GuideCircle(vec.Vec2{X: float64(center.X), Y: float64(center.Y)}, float64(r), colorGuide)
		}

	case "cohen-sutherland", "liang-barsky":
		p0, p1, err := input.ParseSegment(*x0, *y0, *x1, *y1)
		if err != nil {
			return err
		}
		v, err := parseViewport(*viewport)
		if err != nil {
			return err
		}
		orig := pixels.PixelSegment{P0: p0, P1: p1}.Real()
		c.Viewport(v, colorFaint)

		var clipped pixels.PixelSegment
		var ok bool
		if name == "liang-barsky" {
			var seg pixels.Segment
			seg, ok = pixels.ClipLiangBarsky(orig.P0, orig.P1, v)
			clipped = seg.Round()
		} else {
			clipped, ok = pixels.ClipCohenSutherland(orig.P0, orig.P1, v)
		}
		if *guides {
			c.GuideLine(orig, colorGuide)
		}
		if !ok {
			logger.Info("segment does not intersect the viewport", "from", p0, "to", p1)
			return nil
		}
		logger.Debug(name, "clipped", clipped)
		c.Plot(clipped.Pixels(), colorResult)

	case "rotate":
		p0, p1, err := input.ParseSegment(*x0, *y0, *x1, *y1)
		if err != nil {
			return err
		}
		a, err := input.ParseAngle(*angle)
		if err != nil {
			return err
		}
		c.Plot(pixels.LineBresenham(p0, p1), colorFaint)
		rotated := pixels.TransformAbout(p0, p1, pixels.Rotation(a))
		logger.Debug("rotate", "angle", a, "result", rotated)
		c.Plot(rotated.Pixels(), colorResult)
		if *guides {
			m := pixels.Translation(float64(p0.X), float64(p0.Y)).
				Mul(pixels.Rotation(a)).
				Mul(pixels.Translation(-float64(p0.X), -float64(p0.Y)))
			orig := pixels.PixelSegment{P0: p0, P1: p1}.Real()
			c.GuideLine(pixels.Segment{P0: m.Apply(orig.P0), P1: m.Apply(orig.P1)}, colorGuide)
		}

	default:
		return fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(algorithms, ", "))
	}
	return nil
}

// parseViewport parses "xMin,yMin,xMax,yMax".
func parseViewport(s string) (pixels.Viewport, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return pixels.Viewport{}, fmt.Errorf("viewport %q: need four comma-separated numbers", s)
	}
	var b [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return pixels.Viewport{}, fmt.Errorf("viewport %q: %w", s, err)
		}
		b[i] = v
	}
	return pixels.NewViewport(b[0], b[1], b[2], b[3])
}
