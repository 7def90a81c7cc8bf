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

// Package paint draws the output of the raster algorithms into an image.
//
// Each pixel of a result is painted as a filled square of PixelSize device
// pixels, with its top-left corner at the pixel position.  The exact
// geometry can be overlaid as a thin anti-aliased guide for comparison.
//
// Pixel coordinates are used as image coordinates without a flip, so y
// grows downwards on the canvas.  Output of the pixels package, which
// treats y as growing upwards, therefore appears vertically mirrored: the
// top edge of a viewport is drawn at the bottom of the image.
package paint

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixels"
)

// Default values for canvas parameters.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultPixelSize = 2

	// guideWidth is the stroke width of guide lines in device pixels.
	guideWidth = 1.0
)

// Canvas is a raster image on which pixel sequences are painted.
// Pixel (x, y) covers the square with top-left corner (x, y) of the image,
// so larger y values are further down.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// PixelSize is the edge length of the square painted for each pixel.
	// Must be at least 1.
	PixelSize int

	// Background is the colour used by Clear.
	Background color.Color

	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewCanvas returns a cleared canvas of the given size with a white
// background and the default pixel size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		PixelSize:  DefaultPixelSize,
		Background: color.White,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		raster:     vector.NewRasterizer(width, height),
	}
	c.Clear()
	return c
}

// Image returns the underlying image.  It is shared with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// Plot paints one square per pixel.  Pixels outside the canvas are
// ignored; duplicates are painted again.
func (c *Canvas) Plot(pix []image.Point, col color.Color) {
	src := image.NewUniform(col)
	s := max(c.PixelSize, 1)
	for _, p := range pix {
		r := image.Rect(p.X, p.Y, p.X+s, p.Y+s)
		draw.Draw(c.img, r, src, image.Point{}, draw.Over)
	}
}

// Viewport paints the outline of a viewport, rasterising its four edges
// with Bresenham's algorithm.
func (c *Canvas) Viewport(v pixels.Viewport, col color.Color) {
	xMin, yMin, xMax, yMax := v.Bounds()
	ll := image.Pt(int(math.Floor(xMin)), int(math.Floor(yMin)))
	ur := image.Pt(int(math.Ceil(xMax)), int(math.Ceil(yMax)))
	lr := image.Pt(ur.X, ll.Y)
	ul := image.Pt(ll.X, ur.Y)

	for _, e := range []pixels.PixelSegment{{P0: ll, P1: lr}, {P0: lr, P1: ur}, {P0: ur, P1: ul}, {P0: ul, P1: ll}} {
		c.Plot(e.Pixels(), col)
	}
}

// GuideLine draws the exact segment as a thin anti-aliased line through
// the centres of the painted squares.
func (c *Canvas) GuideLine(s pixels.Segment, col color.Color) {
	d := s.P1.Sub(s.P0)
	length := d.Length()
	if length == 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(guideWidth / 2 / length)

	off := c.centreOffset()
	a := s.P0.Add(off)
	b := s.P1.Add(off)

	c.beginGuide()
	c.moveTo(a.Add(n))
	c.lineTo(b.Add(n))
	c.lineTo(b.Sub(n))
	c.lineTo(a.Sub(n))
	c.raster.ClosePath()
	c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// GuideCircle draws the exact circle as a thin anti-aliased ring through
// the centres of the painted squares.
func (c *Canvas) GuideCircle(center vec.Vec2, radius float64, col color.Color) {
	ctr := center.Add(c.centreOffset())

	c.beginGuide()
	c.addCircle(ctr, radius+guideWidth/2, false)
	if inner := radius - guideWidth/2; inner > 0 {
		c.addCircle(ctr, inner, true)
	}
	c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Zoomed returns a copy of the canvas enlarged by an integer factor, using
// nearest-neighbour sampling so that pixels stay sharp.
func (c *Canvas) Zoomed(factor int) *image.RGBA {
	factor = max(factor, 1)
	b := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes the canvas as PNG, enlarged by the given factor.
func (c *Canvas) WritePNG(w io.Writer, zoom int) error {
	var img image.Image = c.img
	if zoom > 1 {
		img = c.Zoomed(zoom)
	}
	return png.Encode(w, img)
}

func (c *Canvas) centreOffset() vec.Vec2 {
	h := float64(max(c.PixelSize, 1)) / 2
	return vec.Vec2{X: h, Y: h}
}

func (c *Canvas) beginGuide() {
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) moveTo(p vec.Vec2) {
	c.raster.MoveTo(float32(p.X), float32(p.Y))
}

func (c *Canvas) lineTo(p vec.Vec2) {
	c.raster.LineTo(float32(p.X), float32(p.Y))
}

// addCircle adds a circle to the rasteriser using cubic Bézier curves.
func (c *Canvas) addCircle(ctr vec.Vec2, radius float64, clockwise bool) {
	const k = 0.5522847498
	cx, cy := float32(ctr.X), float32(ctr.Y)
	r := float32(radius)
	kr := float32(k * radius)

	c.raster.MoveTo(cx, cy-r)
	if clockwise {
		c.raster.CubeTo(cx-kr, cy-r, cx-r, cy-kr, cx-r, cy)
		c.raster.CubeTo(cx-r, cy+kr, cx-kr, cy+r, cx, cy+r)
		c.raster.CubeTo(cx+kr, cy+r, cx+r, cy+kr, cx+r, cy)
		c.raster.CubeTo(cx+r, cy-kr, cx+kr, cy-r, cx, cy-r)
	} else {
		c.raster.CubeTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
		c.raster.CubeTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
		c.raster.CubeTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
		c.raster.CubeTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	}
	c.raster.ClosePath()
}
