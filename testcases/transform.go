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
	"seehuhn.de/go/geom/matrix"
)

var transformCases = []TestCase{
	// ========================================
	// Rotation
	// ========================================
	{
		Name:   "rotate_90_about_start",
		P0:     pt(32, 32),
		P1:     pt(56, 32),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.RotateDeg(90), About: true},
	},
	{
		Name:   "rotate_45_about_start",
		P0:     pt(16, 16),
		P1:     pt(56, 16),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.RotateDeg(45), About: true},
	},
	{
		Name:   "rotate_30_about_origin",
		P0:     pt(10, 5),
		P1:     pt(50, 5),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.RotateDeg(30)},
	},
	{
		Name:   "rotate_360_about_start",
		P0:     pt(8, 8),
		P1:     pt(56, 40),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.RotateDeg(360), About: true},
	},

	// ========================================
	// Scaling and shear
	// ========================================
	{
		Name:   "scale_2x_about_start",
		P0:     pt(10, 10),
		P1:     pt(30, 20),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.Scale(2, 2), About: true},
	},
	{
		Name:   "scale_half_about_origin",
		P0:     pt(11, 11),
		P1:     pt(63, 37),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.Scale(0.5, 0.5)},
	},
	{
		Name:   "shear_x",
		P0:     pt(8, 8),
		P1:     pt(8, 48),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.Matrix{1, 0, 0.5, 1, 0, 0}, About: true},
	},
	{
		Name:   "translate",
		P0:     pt(4, 4),
		P1:     pt(30, 12),
		Width:  64,
		Height: 64,
		Op:     Transform{CTM: matrix.Matrix{1, 0, 0, 1, 20, 30}},
	},
}
