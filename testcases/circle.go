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

var circleCases = []TestCase{
	{
		Name:   "radius_0",
		P0:     pt(16, 16),
		Width:  32,
		Height: 32,
		Op:     Circle{Radius: 0},
	},
	{
		Name:   "radius_1",
		P0:     pt(16, 16),
		Width:  32,
		Height: 32,
		Op:     Circle{Radius: 1},
	},
	{
		Name:   "radius_5",
		P0:     pt(16, 16),
		Width:  32,
		Height: 32,
		Op:     Circle{Radius: 5},
	},
	{
		Name:   "radius_20",
		P0:     pt(32, 32),
		Width:  64,
		Height: 64,
		Op:     Circle{Radius: 20},
	},
	{
		Name:   "radius_60",
		P0:     pt(64, 64),
		Width:  128,
		Height: 128,
		Op:     Circle{Radius: 60},
	},
	{
		Name:   "partly_outside",
		P0:     pt(8, 8),
		Width:  64,
		Height: 64,
		Op:     Circle{Radius: 24},
	},
}
