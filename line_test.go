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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestLineBresenhamKnown(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{
			name: "diagonal",
			p0:   image.Pt(0, 0),
			p1:   image.Pt(3, 3),
			want: []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "shallow",
			p0:   image.Pt(0, 0),
			p1:   image.Pt(5, 2),
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}},
		},
		{
			name: "shallow_reversed",
			p0:   image.Pt(5, 2),
			p1:   image.Pt(0, 0),
			want: []image.Point{{5, 2}, {4, 2}, {3, 1}, {2, 1}, {1, 0}, {0, 0}},
		},
		{
			name: "steep",
			p0:   image.Pt(0, 0),
			p1:   image.Pt(1, 4),
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}},
		},
		{
			name: "vertical_down",
			p0:   image.Pt(7, 3),
			p1:   image.Pt(7, 0),
			want: []image.Point{{7, 3}, {7, 2}, {7, 1}, {7, 0}},
		},
		{
			name: "point",
			p0:   image.Pt(-4, 9),
			p1:   image.Pt(-4, 9),
			want: []image.Point{{-4, 9}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, LineBresenham(c.p0, c.p1))
		})
	}
}

// TestLineBresenhamProperties checks length, endpoints and connectivity
// for random segments.
func TestLineBresenhamProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		p0 := image.Pt(rng.IntN(201)-100, rng.IntN(201)-100)
		p1 := image.Pt(rng.IntN(201)-100, rng.IntN(201)-100)

		got := LineBresenham(p0, p1)

		want := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
		if len(got) != want {
			t.Fatalf("%v-%v: got %d pixels, want %d", p0, p1, len(got), want)
		}
		if got[0] != p0 || got[len(got)-1] != p1 {
			t.Fatalf("%v-%v: endpoints are %v, %v", p0, p1, got[0], got[len(got)-1])
		}
		for i := 1; i < len(got); i++ {
			d := got[i].Sub(got[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
				t.Fatalf("%v-%v: step %d from %v to %v", p0, p1, i, got[i-1], got[i])
			}
		}
	}
}

func TestLineDDAKnown(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 vec.Vec2
		want   []image.Point
	}{
		{
			name: "shallow",
			p0:   vec.Vec2{X: 0, Y: 0},
			p1:   vec.Vec2{X: 5, Y: 2},
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}},
		},
		{
			// exact halves round away from zero
			name: "half_steps",
			p0:   vec.Vec2{X: 0, Y: 0},
			p1:   vec.Vec2{X: 4, Y: 2},
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}},
		},
		{
			name: "fractional",
			p0:   vec.Vec2{X: 0.4, Y: 0.2},
			p1:   vec.Vec2{X: 3.4, Y: 0.2},
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "point",
			p0:   vec.Vec2{X: 3, Y: 4},
			p1:   vec.Vec2{X: 3, Y: 4},
			want: []image.Point{{3, 4}},
		},
		{
			name: "nearly_point",
			p0:   vec.Vec2{X: 3.1, Y: 4},
			p1:   vec.Vec2{X: 3.3, Y: 4.2},
			want: []image.Point{{3, 4}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, LineDDA(c.p0, c.p1))
		})
	}
}

func TestLineDDAProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 2000 {
		p0 := image.Pt(rng.IntN(201)-100, rng.IntN(201)-100)
		p1 := image.Pt(rng.IntN(201)-100, rng.IntN(201)-100)

		got := LineDDA(toVec(p0), toVec(p1))

		require.NotEmpty(t, got)
		if got[0] != p0 || got[len(got)-1] != p1 {
			t.Fatalf("%v-%v: endpoints are %v, %v", p0, p1, got[0], got[len(got)-1])
		}
		want := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
		if len(got) != want {
			t.Fatalf("%v-%v: got %d pixels, want %d", p0, p1, len(got), want)
		}
	}
}

// TestLineDDARealEndpoints checks that the first and last pixel are
// exactly the rounded endpoints, also for halfway and fractional input.
func TestLineDDARealEndpoints(t *testing.T) {
	known := []Segment{
		{P0: vec.Vec2{X: 17, Y: 72.5}, P1: vec.Vec2{X: 97.5, Y: 8}},
		{P0: vec.Vec2{X: 57.5, Y: 60}, P1: vec.Vec2{X: 83, Y: 48.5}},
	}

	rng := rand.New(rand.NewPCG(7, 8))
	segs := known
	for range 5000 {
		// halfway cases
		segs = append(segs, Segment{
			P0: vec.Vec2{X: float64(rng.IntN(401)-200) / 2, Y: float64(rng.IntN(401)-200) / 2},
			P1: vec.Vec2{X: float64(rng.IntN(401)-200) / 2, Y: float64(rng.IntN(401)-200) / 2},
		})
		// arbitrary real coordinates
		segs = append(segs, Segment{
			P0: vec.Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100},
			P1: vec.Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100},
		})
	}

	for _, s := range segs {
		got := LineDDA(s.P0, s.P1)
		require.NotEmpty(t, got)

		steps := roundInt(max(math.Abs(s.P1.X-s.P0.X), math.Abs(s.P1.Y-s.P0.Y)))
		if len(got) != steps+1 {
			t.Fatalf("%v: got %d pixels, want %d", s, len(got), steps+1)
		}
		if got[0] != roundPoint(s.P0) {
			t.Fatalf("%v: starts at %v, want %v", s, got[0], roundPoint(s.P0))
		}
		if steps > 0 && got[len(got)-1] != roundPoint(s.P1) {
			t.Fatalf("%v: ends at %v, want %v", s, got[len(got)-1], roundPoint(s.P1))
		}
	}
}

// TestLineMethodsAgreeOnAxes checks that both line algorithms give the
// same pixels where no rounding decisions are involved.
func TestLineMethodsAgreeOnAxes(t *testing.T) {
	segs := []PixelSegment{
		{P0: image.Pt(0, 0), P1: image.Pt(10, 0)},
		{P0: image.Pt(0, 0), P1: image.Pt(0, -10)},
		{P0: image.Pt(-3, -3), P1: image.Pt(4, 4)},
		{P0: image.Pt(5, -5), P1: image.Pt(-5, 5)},
	}
	for _, s := range segs {
		assert.Equal(t, LineBresenham(s.P0, s.P1), LineDDA(toVec(s.P0), toVec(s.P1)), "%v", s)
	}
}
