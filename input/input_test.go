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
	"image"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCycle(t *testing.T) {
	var got []Pair
	c := NewCollector(func(p Pair) { got = append(got, p) })

	_, ok := c.Click(image.Pt(1, 2))
	assert.False(t, ok)
	assert.Equal(t, []image.Point{{1, 2}}, c.Pending())

	pair, ok := c.Click(image.Pt(3, 4))
	require.True(t, ok)
	assert.Equal(t, Pair{Mode: ModeLine, P0: image.Pt(1, 2), P1: image.Pt(3, 4)}, pair)
	assert.Len(t, c.Pending(), 2)

	// the third click only clears the fields
	_, ok = c.Click(image.Pt(5, 6))
	assert.False(t, ok)
	assert.Empty(t, c.Pending())

	_, ok = c.Click(image.Pt(7, 8))
	assert.False(t, ok)
	_, ok = c.Click(image.Pt(9, 10))
	assert.True(t, ok)

	assert.Len(t, got, 2)
	assert.Equal(t, image.Pt(7, 8), got[1].P0)
}

func TestCollectorViewportMode(t *testing.T) {
	c := NewCollector(nil)
	c.Click(image.Pt(0, 0))
	c.SetMode(ModeViewport)
	assert.Empty(t, c.Pending(), "changing mode discards partial input")

	c.Click(image.Pt(30, 5))
	pair, ok := c.Click(image.Pt(10, 25))
	require.True(t, ok)
	assert.Equal(t, ModeViewport, pair.Mode)
	assert.Equal(t, ModeLine, c.Mode(), "viewport mode is used for one pair")

	xMin, yMin, xMax, yMax := pair.Viewport().Bounds()
	assert.Equal(t, []float64{10, 5, 30, 25}, []float64{xMin, yMin, xMax, yMax})

	c.Reset()
	c.Click(image.Pt(1, 1))
	pair, ok = c.Click(image.Pt(2, 2))
	require.True(t, ok)
	assert.Equal(t, ModeLine, pair.Mode)
}

func TestParseSegment(t *testing.T) {
	p0, p1, err := ParseSegment("10", " -3", "7 ", "0")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, -3), p0)
	assert.Equal(t, image.Pt(7, 0), p1)

	_, _, err = ParseSegment("10", "", "7", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y0")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseCircle(t *testing.T) {
	c, r, err := ParseCircle("5", "6", "-2")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(5, 6), c)
	assert.Equal(t, -2, r)

	_, _, err = ParseCircle("5", "6", "2.5")
	assert.ErrorContains(t, err, "r:")
}

func TestParseAngle(t *testing.T) {
	a, err := ParseAngle(" 22.5")
	require.NoError(t, err)
	assert.Equal(t, 22.5, a)

	_, err = ParseAngle("north")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "line", ModeLine.String())
	assert.Equal(t, "viewport", ModeViewport.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
