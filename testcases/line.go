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

var lineCases = []TestCase{
	// ========================================
	// Bresenham
	// ========================================
	{
		Name:   "bresenham_horizontal",
		P0:     pt(4, 32),
		P1:     pt(60, 32),
		Width:  64,
		Height: 64,
		Op:     Line{Method: Bresenham},
	},
	{
		Name:   "bresenham_vertical",
		P0:     pt(32, 60),
		P1:     pt(32, 4),
		Width:  64,
		Height: 64,
		Op:     Line{Method: Bresenham},
	},
	{
		Name:   "bresenham_diagonal",
		P0:     pt(0, 0),
		P1:     pt(63, 63),
		Width:  64,
		Height: 64,
		Op:     Line{Method: Bresenham},
	},
	{
		Name:   "bresenham_shallow",
		P0:     pt(2, 10),
		P1:     pt(61, 29),
		Width:  64,
		Height: 64,
		Op:     Line{Method: Bresenham},
	},
	{
		Name:   "bresenham_steep_reversed",
		P0:     pt(40, 62),
		P1:     pt(25, 3),
		Width:  64,
		Height: 64,
		Op:     Line{Method: Bresenham},
	},
	{
		Name:   "bresenham_point",
		P0:     pt(16, 16),
		P1:     pt(16, 16),
		Width:  32,
		Height: 32,
		Op:     Line{Method: Bresenham},
	},

	// ========================================
	// DDA
	// ========================================
	{
		Name:   "dda_shallow",
		P0:     pt(2, 10),
		P1:     pt(61, 29),
		Width:  64,
		Height: 64,
		Op:     Line{Method: DDA},
	},
	{
		Name:   "dda_steep_reversed",
		P0:     pt(40, 62),
		P1:     pt(25, 3),
		Width:  64,
		Height: 64,
		Op:     Line{Method: DDA},
	},
	{
		Name:   "dda_half_steps",
		P0:     pt(0, 0),
		P1:     pt(60, 30),
		Width:  64,
		Height: 64,
		Op:     Line{Method: DDA},
	},
	{
		Name:   "dda_fractional",
		P0:     pt(3.3, 7.8),
		P1:     pt(50.6, 41.2),
		Width:  64,
		Height: 64,
		Op:     Line{Method: DDA},
	},
	{
		Name:   "dda_halfway_endpoints",
		P0:     pt(17, 62.5),
		P1:     pt(57.5, 8),
		Width:  64,
		Height: 64,
		Op:     Line{Method: DDA},
	},
	{
		Name:   "dda_point",
		P0:     pt(16, 16),
		P1:     pt(16, 16),
		Width:  32,
		Height: 32,
		Op:     Line{Method: DDA},
	},
}
