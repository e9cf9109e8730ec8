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

package brush

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/paint"
)

// Shape rasterizes the outline p into a brush tip, using the nonzero
// winding rule and anti-aliasing.  The outline is first mapped through
// ctm; the zero matrix is treated as the identity.  The clip rectangle, in
// the transformed coordinates, becomes the mask: its lower-left corner is
// mask pixel (0, 0) and its size, rounded up to whole pixels, is the size
// of the mask.
//
// As for image coordinates, y grows downwards.
func Shape(p *path.Data, ctm matrix.Matrix, clip rect.Rect) (*paint.Mask, error) {
	w := int(math.Ceil(clip.URx - clip.LLx))
	h := int(math.Ceil(clip.URy - clip.LLy))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape clip %dx%d: %w", w, h, ErrInvalidSize)
	}
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	dev := func(v vec.Vec2) (float32, float32) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4] - clip.LLx
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5] - clip.LLy
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(w, h)
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(dev(pts[0]))
		case path.CmdLineTo:
			z.LineTo(dev(pts[0]))
		case path.CmdQuadTo:
			bx, by := dev(pts[0])
			cx, cy := dev(pts[1])
			z.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := dev(pts[0])
			cx, cy := dev(pts[1])
			dx, dy := dev(pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return paint.FromAlpha(dst), nil
}

// FromShape is like [Shape], but returns a brush with the default
// spacing for the larger of the two mask dimensions.
func FromShape(p *path.Data, ctm matrix.Matrix, clip rect.Rect) (*paint.Brush, error) {
	m, err := Shape(p, ctm, clip)
	if err != nil {
		return nil, err
	}
	return &paint.Brush{Mask: m, Spacing: Spacing(max(m.Width, m.Height))}, nil
}
