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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport is an axis-aligned clip rectangle, including its boundary.
// The zero value is the degenerate viewport containing only the origin.
// Other viewports are constructed with NewViewport or ViewportFromRect,
// which reject inverted bounds.
type Viewport struct {
	xMin, yMin, xMax, yMax float64
}

// NewViewport returns the viewport [xMin, xMax] × [yMin, yMax].
// If xMin > xMax, yMin > yMax, or any bound is NaN, the returned error
// wraps ErrInvalidViewport.
func NewViewport(xMin, yMin, xMax, yMax float64) (Viewport, error) {
	// written as negations so that NaN bounds are rejected
	if !(xMin <= xMax) || !(yMin <= yMax) {
		return Viewport{}, fmt.Errorf("viewport (%g, %g, %g, %g): %w",
			xMin, yMin, xMax, yMax, ErrInvalidViewport)
	}
	return Viewport{xMin: xMin, yMin: yMin, xMax: xMax, yMax: yMax}, nil
}

// ViewportFromRect converts a rectangle to a viewport.  LLx/LLy give the
// minimum and URx/URy the maximum coordinates.
func ViewportFromRect(r rect.Rect) (Viewport, error) {
	return NewViewport(r.LLx, r.LLy, r.URx, r.URy)
}

// Rect returns the viewport as a rectangle.
func (v Viewport) Rect() rect.Rect {
	return rect.Rect{LLx: v.xMin, LLy: v.yMin, URx: v.xMax, URy: v.yMax}
}

// Bounds returns xMin, yMin, xMax and yMax.
func (v Viewport) Bounds() (xMin, yMin, xMax, yMax float64) {
	return v.xMin, v.yMin, v.xMax, v.yMax
}

// Contains reports whether p lies inside the viewport or on its boundary.
func (v Viewport) Contains(p vec.Vec2) bool {
	return v.outcode(p) == outcodeInside
}

// Outcode bits for Cohen-Sutherland clipping.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode classifies p relative to the viewport.
func (v Viewport) outcode(p vec.Vec2) int {
	code := outcodeInside

	if p.X < v.xMin {
		code |= outcodeLeft
	} else if p.X > v.xMax {
		code |= outcodeRight
	}

	if p.Y < v.yMin {
		code |= outcodeBottom
	} else if p.Y > v.yMax {
		code |= outcodeTop
	}

	return code
}

// maxClipIterations bounds the Cohen-Sutherland loop.  With exact arithmetic
// each endpoint is moved at most twice; the extra room covers rounding near
// the corners of the viewport.
const maxClipIterations = 8

// clipTolerance is the relative distance within which a computed
// intersection is treated as lying on a viewport boundary.  Without it, a
// segment touching a corner at coordinates which are not exactly
// representable is accepted or rejected depending on the last bit of the
// intersection computation.
const clipTolerance = 1e-12

// snap moves x onto lo or hi if it is within clipTolerance of it.
func snap(x, lo, hi float64) float64 {
	if math.Abs(x-lo) <= clipTolerance*max(1, math.Abs(lo)) {
		return lo
	}
	if math.Abs(x-hi) <= clipTolerance*max(1, math.Abs(hi)) {
		return hi
	}
	return x
}

// ClipCohenSutherland clips the segment from p0 to p1 to the viewport using
// outcodes.  If the segment misses the viewport, ok is false.  Otherwise the
// visible part is returned with its endpoints rounded to the nearest pixel,
// in the same direction as the input.
//
// Each iteration moves the endpoint with the larger outcode (p0 when the
// codes are equal) onto one boundary it violates, testing top, bottom,
// right and left in that order.
func ClipCohenSutherland(p0, p1 vec.Vec2, v Viewport) (seg PixelSegment, ok bool) {
	code0 := v.outcode(p0)
	code1 := v.outcode(p1)

	for range maxClipIterations {
		if code0|code1 == 0 {
			return Segment{P0: p0, P1: p1}.Round(), true
		}
		if code0&code1 != 0 {
			return PixelSegment{}, false
		}

		codeOut := code0
		if code1 > code0 {
			codeOut = code1
		}

		// The chosen endpoint violates a boundary the other endpoint
		// satisfies, so the divisors below are non-zero.
		var p vec.Vec2
		switch {
		case codeOut&outcodeTop != 0:
			p.X = snap(p0.X+(p1.X-p0.X)*(v.yMax-p0.Y)/(p1.Y-p0.Y), v.xMin, v.xMax)
			p.Y = v.yMax
		case codeOut&outcodeBottom != 0:
			p.X = snap(p0.X+(p1.X-p0.X)*(v.yMin-p0.Y)/(p1.Y-p0.Y), v.xMin, v.xMax)
			p.Y = v.yMin
		case codeOut&outcodeRight != 0:
			p.Y = snap(p0.Y+(p1.Y-p0.Y)*(v.xMax-p0.X)/(p1.X-p0.X), v.yMin, v.yMax)
			p.X = v.xMax
		case codeOut&outcodeLeft != 0:
			p.Y = snap(p0.Y+(p1.Y-p0.Y)*(v.xMin-p0.X)/(p1.X-p0.X), v.yMin, v.yMax)
			p.X = v.xMin
		}

		if codeOut == code0 {
			p0 = p
			code0 = v.outcode(p0)
		} else {
			p1 = p
			code1 = v.outcode(p1)
		}
	}

	// Only reached when rounding keeps a point oscillating around a
	// corner, i.e. the segment touches the viewport in a single point.
	return PixelSegment{}, false
}

// ClipLiangBarsky clips the segment from p0 to p1 to the viewport using the
// parametric form p0 + u·(p1-p0), 0 ≤ u ≤ 1.  If the segment misses the
// viewport, ok is false.  Otherwise the endpoints of the visible part are
// returned without rounding.
func ClipLiangBarsky(p0, p1 vec.Vec2, v Viewport) (seg Segment, ok bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	// Constraints p[i]·u ≤ q[i] for the left, right, bottom and top edges.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{p0.X - v.xMin, v.xMax - p0.X, p0.Y - v.yMin, v.yMax - p0.Y}

	u1, u2 := 0.0, 1.0
	for i := range 4 {
		switch {
		case p[i] == 0:
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		case p[i] < 0:
			u1 = math.Max(u1, q[i]/p[i])
		default:
			u2 = math.Min(u2, q[i]/p[i])
		}
		if u1-u2 > clipTolerance {
			return Segment{}, false
		}
	}
	u1 = min(u1, u2)

	seg = Segment{
		P0: vec.Vec2{X: p0.X + u1*dx, Y: p0.Y + u1*dy},
		P1: vec.Vec2{X: p0.X + u2*dx, Y: p0.Y + u2*dy},
	}
	return seg, true
}
