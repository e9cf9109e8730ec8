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

package paint

import "image"

// Raster records how much of one color is present at each canvas pixel.
// Values are opaque-equivalent coverage: the alpha of the color itself is
// already folded in when the value is written.
type Raster struct {
	Mask
}

// NewRaster allocates an all-zero raster.
func NewRaster(width, height int) *Raster {
	return &Raster{Mask: *NewMask(width, height)}
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	c := &Raster{Mask: Mask{Width: r.Width, Height: r.Height}}
	c.Pix = make([]uint8, len(r.Pix))
	copy(c.Pix, r.Pix)
	return c
}

// Clear sets all values to zero.
func (r *Raster) Clear() {
	clear(r.Pix)
}

// IsZero reports whether all values are zero.
func (r *Raster) IsZero() bool {
	for _, v := range r.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// SetMax composites m onto r with its top-left corner at pos, keeping the
// larger of the two values at every pixel.  Mask pixels falling outside
// the raster are skipped.  If touched is not nil, it is called with the
// index of every pixel whose value increased.
func (r *Raster) SetMax(m *Mask, pos image.Point, touched func(idx int)) {
	x0 := max(0, -pos.X)
	y0 := max(0, -pos.Y)
	x1 := min(m.Width, r.Width-pos.X)
	y1 := min(m.Height, r.Height-pos.Y)
	for y := y0; y < y1; y++ {
		src := m.Pix[y*m.Width : (y+1)*m.Width]
		base := (y+pos.Y)*r.Width + pos.X
		for x := x0; x < x1; x++ {
			v := src[x]
			if v == 0 {
				continue
			}
			idx := base + x
			if v <= r.Pix[idx] {
				continue
			}
			r.Pix[idx] = v
			if touched != nil {
				touched(idx)
			}
		}
	}
}
