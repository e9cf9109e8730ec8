// seehuhn.de/go/paint - a presence-layer paint surface
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

import "seehuhn.de/go/geom/matrix"

// ctmCases are brush outlines defined around the origin and moved into
// place by the CTM.  Rotated and squashed tips are used for calligraphic
// brushes.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 10, 10),
		Width:  32,
		Height: 32,
		CTM:    matrix.Scale(2, 2).Translate(6, 6),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  32,
		Height: 32,
		CTM:    matrix.RotateDeg(45).Translate(16, 16),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-12, -6, 12, 6),
		Width:  32,
		Height: 32,
		CTM:    matrix.RotateDeg(5).Translate(16, 16),
	},
	{
		Name:   "disc_to_ellipse",
		Path:   circle(0, 0, 10),
		Width:  48,
		Height: 24,
		CTM:    matrix.Scale(2, 1).Translate(24, 12),
	},
	{
		Name:   "calligraphy_nib",
		Path:   ellipse(0, 0, 12, 3),
		Width:  32,
		Height: 32,
		CTM:    matrix.RotateDeg(30).Translate(16, 16),
	},
}
