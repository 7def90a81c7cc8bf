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
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleZeroRadius(t *testing.T) {
	got, err := CircleBresenham(image.Pt(0, 0), 0)
	require.NoError(t, err)

	require.Len(t, got, 8)
	for _, p := range got {
		assert.Equal(t, image.Pt(0, 0), p)
	}
}

func TestCircleRadiusOne(t *testing.T) {
	got, err := CircleBresenham(image.Pt(5, 5), 1)
	require.NoError(t, err)

	want := []image.Point{
		{5, 6}, {5, 4}, {5, 6}, {5, 4},
		{6, 5}, {6, 5}, {4, 5}, {4, 5},
	}
	assert.Equal(t, want, got)
}

func TestCircleNegativeRadius(t *testing.T) {
	got, err := CircleBresenham(image.Pt(1, 2), -3)
	if !errors.Is(err, ErrNegativeRadius) {
		t.Fatalf("expected ErrNegativeRadius, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no pixels, got %v", got)
	}
}

// TestCircleDistance verifies that every pixel is within one unit of the
// ideal circle.
func TestCircleDistance(t *testing.T) {
	center := image.Pt(-7, 12)
	for r := range 100 {
		got, err := CircleBresenham(center, r)
		require.NoError(t, err)

		if len(got)%8 != 0 {
			t.Errorf("r=%d: %d pixels is not a multiple of 8", r, len(got))
		}
		for _, p := range got {
			d := p.Sub(center)
			dist := math.Hypot(float64(d.X), float64(d.Y))
			if math.Abs(dist-float64(r)) > 1 {
				t.Errorf("r=%d: pixel %v is at distance %.3f", r, p, dist)
			}
		}
	}
}

// TestCircleSymmetry verifies that the pixel set is invariant under the
// eight reflections about the center.
func TestCircleSymmetry(t *testing.T) {
	center := image.Pt(20, 30)
	reflections := []func(x, y int) (int, int){
		func(x, y int) (int, int) { return x, y },
		func(x, y int) (int, int) { return x, -y },
		func(x, y int) (int, int) { return -x, y },
		func(x, y int) (int, int) { return -x, -y },
		func(x, y int) (int, int) { return y, x },
		func(x, y int) (int, int) { return y, -x },
		func(x, y int) (int, int) { return -y, x },
		func(x, y int) (int, int) { return -y, -x },
	}

	for _, r := range []int{0, 1, 2, 7, 25, 64} {
		got, err := CircleBresenham(center, r)
		require.NoError(t, err)

		set := make(map[image.Point]bool, len(got))
		for _, p := range got {
			set[p] = true
		}
		for p := range set {
			d := p.Sub(center)
			for i, f := range reflections {
				x, y := f(d.X, d.Y)
				q := center.Add(image.Pt(x, y))
				if !set[q] {
					t.Errorf("r=%d: reflection %d of %v (%v) is missing", r, i, p, q)
				}
			}
		}
	}
}
