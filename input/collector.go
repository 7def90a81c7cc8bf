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

// Package input turns user interaction into arguments for the raster
// algorithms.  It holds the state that a drawing front-end needs between
// events, so that the algorithms themselves can stay stateless.
package input

import (
	"fmt"
	"image"

	"seehuhn.de/go/pixels"
)

// Mode determines how a completed pair of clicks is interpreted.
type Mode int

const (
	// ModeLine makes each pair of clicks the endpoints of a segment.
	ModeLine Mode = iota

	// ModeViewport makes the next pair of clicks the corners of a viewport.
	ModeViewport
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeViewport:
		return "viewport"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Pair is a completed pair of clicks.
type Pair struct {
	Mode   Mode
	P0, P1 image.Point
}

// Segment returns the clicks as a segment from the first to the second.
func (p Pair) Segment() pixels.PixelSegment {
	return pixels.PixelSegment{P0: p.P0, P1: p.P1}
}

// Viewport returns the rectangle spanned by the two clicks.  The clicks may
// be any two opposite corners.
func (p Pair) Viewport() pixels.Viewport {
	v, err := pixels.NewViewport(
		float64(min(p.P0.X, p.P1.X)), float64(min(p.P0.Y, p.P1.Y)),
		float64(max(p.P0.X, p.P1.X)), float64(max(p.P0.Y, p.P1.Y)))
	if err != nil {
		// min/max ordering makes this unreachable
		panic(err)
	}
	return v
}

// Collector gathers clicks into pairs.  The first click sets the start
// point, the second the end point and completes the pair, and a third
// click discards both and starts over without being recorded.
//
// After a pair is completed in ModeViewport, the collector returns to
// ModeLine.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	mode   Mode
	n      int // number of points collected, 0-2
	p0     image.Point
	p1     image.Point
	onPair func(Pair)
}

// NewCollector returns a collector in ModeLine.  If onPair is not nil, it
// is called for every completed pair.
func NewCollector(onPair func(Pair)) *Collector {
	return &Collector{onPair: onPair}
}

// Mode returns the current mode.
func (c *Collector) Mode() Mode {
	return c.mode
}

// SetMode changes the mode and discards any partial input.
func (c *Collector) SetMode(m Mode) {
	c.mode = m
	c.n = 0
}

// Pending returns the points collected since the last reset.
func (c *Collector) Pending() []image.Point {
	return []image.Point{c.p0, c.p1}[:c.n]
}

// Reset discards all collected points.  The mode is kept.
func (c *Collector) Reset() {
	c.n = 0
}

// Click records a click at p.  When the click completes a pair, the pair
// is returned and ok is true.
func (c *Collector) Click(p image.Point) (pair Pair, ok bool) {
	switch c.n {
	case 0:
		c.p0 = p
		c.n = 1
		return Pair{}, false
	case 1:
		c.p1 = p
		c.n = 2
		pair = Pair{Mode: c.mode, P0: c.p0, P1: c.p1}
		if c.mode == ModeViewport {
			c.mode = ModeLine
		}
		if c.onPair != nil {
			c.onPair(pair)
		}
		return pair, true
	default:
		c.n = 0
		return Pair{}, false
	}
}
