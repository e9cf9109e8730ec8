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

// Mask is a grid of 8-bit opacity values, stored in row-major order.
// Masks are used as brush tips and as the source for [Store.Apply].
// A value of 0 leaves the canvas untouched, 255 is full opacity.
type Mask struct {
	Width, Height int
	Pix           []uint8
}

// NewMask allocates a zero mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// FromAlpha creates a mask from the alpha channel of img.
func FromAlpha(img *image.Alpha) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := range m.Height {
		copy(m.Pix[y*m.Width:(y+1)*m.Width], img.Pix[y*img.Stride:])
	}
	return m
}

// Bounds returns the mask dimensions with the origin at (0, 0).
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At returns the value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set changes the value at (x, y).  Coordinates outside the mask are
// ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v
}

// Alpha returns a copy of the mask as an [image.Alpha].
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	copy(img.Pix, m.Pix)
	return img
}

// Brush is a brush tip together with the distance between two consecutive
// applications of the tip along a stroke, in canvas pixels.
type Brush struct {
	Mask    *Mask
	Spacing float64
}
