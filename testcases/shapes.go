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

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var shapeCases = []TestCase{
	{
		Name:   "disc",
		Path:   circle(16, 16, 12),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "disc_small",
		Path:   circle(4, 4, 3),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(24, 12, 20, 8),
		Width:  48,
		Height: 24,
	},
	{
		Name:   "square",
		Path:   rectangle(4, 4, 28, 28),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "square_offset",
		Path:   rectangle(4.5, 4.5, 27.5, 27.5),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "triangle",
		Path:   triangle(4, 28, 16, 4, 28, 28),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring",
		Path:   ring(16, 16, 14, 8),
		Width:  32,
		Height: 32,
	},
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves,
// in clockwise direction on screen.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// ring builds a disc with a hole, using opposite orientations for the two
// circles so that the hole is left empty under the nonzero rule.
func ring(cx, cy, outer, inner float64) *path.Data {
	k := inner * kappa
	p := ellipse(cx, cy, outer, outer)
	return p.
		MoveTo(pt(cx+inner, cy)).
		CubeTo(pt(cx+inner, cy-k), pt(cx+k, cy-inner), pt(cx, cy-inner)).
		CubeTo(pt(cx-k, cy-inner), pt(cx-inner, cy-k), pt(cx-inner, cy)).
		CubeTo(pt(cx-inner, cy+k), pt(cx-k, cy+inner), pt(cx, cy+inner)).
		CubeTo(pt(cx+k, cy+inner), pt(cx+inner, cy+k), pt(cx+inner, cy)).
		Close()
}

// rectangle builds an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).  Under the
// nonzero rule, the central pentagon is filled.
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts [5]struct{ x, y float64 }
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i].x = cx + r*math.Cos(angle)
		pts[i].y = cy + r*math.Sin(angle)
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pt(pts[0].x, pts[0].y))
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pt(pts[i].x, pts[i].y))
	}
	return p.Close()
}
