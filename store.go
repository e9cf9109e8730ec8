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

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"
)

// ErrInvalidDimensions is returned when a canvas is created with a zero or
// negative width or height.
var ErrInvalidDimensions = errors.New("invalid canvas dimensions")

// Store holds the committed state of an image as one presence raster per
// color, in the order the colors were first used.
//
// Painting a color shrinks the other colors present at a pixel to make
// room.  Repeated layers of the same color add up, saturating at 255.
type Store struct {
	width, height int
	colors        registry[Color, *Raster]

	// version is incremented on every mutation.  [Stroke.Preview] uses it
	// to detect stale cached renders.
	version uint64

	// scratch buffers for Fill, reused across calls
	fillVisited []uint64
	fillStack   []span
}

// NewStore returns an empty store for a canvas of the given size.
func NewStore(width, height int) (*Store, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Store{width: width, height: height}, nil
}

// Width returns the canvas width in pixels.
func (s *Store) Width() int { return s.width }

// Height returns the canvas height in pixels.
func (s *Store) Height() int { return s.height }

// Bounds returns the canvas rectangle, with the origin at (0, 0).
func (s *Store) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Colors returns the registered colors, in the order they were first used.
func (s *Store) Colors() []Color {
	res := make([]Color, s.colors.len())
	copy(res, s.colors.keys)
	return res
}

// Presence returns the presence of color c at (x, y).  The result is 0 for
// unregistered colors and for positions outside the canvas.
func (s *Store) Presence(c Color, x, y int) uint8 {
	r, ok := s.colors.get(c)
	if !ok {
		return 0
	}
	return r.At(x, y)
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	return &Store{
		width:   s.width,
		height:  s.height,
		colors:  s.colors.clone((*Raster).Clone),
		version: s.version,
	}
}

// layer returns the registry index of c, registering the color with an
// all-zero raster if needed.
func (s *Store) layer(c Color) int {
	t, added := s.colors.getOrInsert(c, func() *Raster {
		return NewRaster(s.width, s.height)
	})
	if added {
		Logger().Debug("new color layer",
			zap.Stringer("color", c),
			zap.Int("colors", s.colors.len()))
	}
	return t
}

// Apply blends color c into the store, using m as the opacity mask.  The
// top-left corner of m is placed at offset; mask pixels outside the canvas
// are ignored.
//
// At every pixel, the mask value is scaled by the alpha of c.  The colors
// already present are shrunk proportionally to make room, and the scaled
// value is added to the presence of c, saturating at 255.
func (s *Store) Apply(m *Mask, offset image.Point, c Color) {
	t := s.layer(c)
	s.version++

	x0 := max(0, -offset.X)
	y0 := max(0, -offset.Y)
	x1 := min(m.Width, s.width-offset.X)
	y1 := min(m.Height, s.height-offset.Y)
	for y := y0; y < y1; y++ {
		src := m.Pix[y*m.Width : (y+1)*m.Width]
		base := (y+offset.Y)*s.width + offset.X
		for x := x0; x < x1; x++ {
			v := src[x]
			if v == 0 {
				continue
			}
			s.blendIn(base+x, t, scale(v, c.A))
		}
	}
}

// blendIn shrinks all layers except t at pixel idx by the factor
// (255-newVal)/255 and then adds newVal to the presence of layer t,
// saturating at 255.
func (s *Store) blendIn(idx, t int, newVal uint8) {
	spare := 255 - newVal
	for i, r := range s.colors.vals {
		p := r.Pix[idx]
		if i == t || p == 0 {
			continue
		}
		if spare == 0 {
			r.Pix[idx] = 0
		} else {
			r.Pix[idx] = scale(p, spare)
		}
	}
	target := s.colors.vals[t]
	target.Pix[idx] = addSat(target.Pix[idx], newVal)
}

// SetPixel paints a single pixel with color c, as if applying a one pixel
// mask of full opacity.  Positions outside the canvas are ignored.
func (s *Store) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	t := s.layer(c)
	s.version++
	s.blendIn(y*s.width+x, t, c.A)
}

// AddImage paints img onto the store with the top-left corner of the
// image bounds placed at the canvas position at.  Fully transparent image
// pixels are skipped.
func (s *Store) AddImage(img image.Image, at image.Point) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := ColorOf(img.At(x, y))
			if c.A == 0 {
				continue
			}
			s.SetPixel(x-b.Min.X+at.X, y-b.Min.Y+at.Y, c)
		}
	}
}

// others returns the sum of the presences of all layers except t at
// pixel idx, saturated at 255.  Pass t = -1 to sum all layers.
func (s *Store) others(idx, t int) uint8 {
	var sum uint8
	for i, r := range s.colors.vals {
		if i != t {
			sum = addSat(sum, r.Pix[idx])
		}
	}
	return sum
}
