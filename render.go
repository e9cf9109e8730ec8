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

// Package paint implements a raster paint surface built from per-color
// presence layers.
//
// Instead of a single pixel buffer, a [Store] keeps one [Raster] per color
// that has ever been used.  The value of a raster at a pixel is the
// opaque-equivalent amount of that color present there.  Painting a new
// color proportionally displaces the colors already present, and the final
// image is obtained by blending all layers in [Store.Render].
//
// Brush strokes are accumulated in a [Stroke] using max-compositing, so that
// going over the same area twice within one stroke does not build up
// opacity, and are committed to the store once when the stroke ends.
// [Sampler] turns irregular pointer input into evenly spaced brush
// positions.  [Canvas] ties these pieces together.
//
// None of the types in this package are safe for concurrent use.
package paint

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"
	"image/color"
)

// accumulator sums the contributions of all presence layers at one pixel.
type accumulator struct {
	r, g, b, a uint32
}

func (acc *accumulator) add(c Color, p uint8) {
	acc.r += uint32(c.R) * uint32(p) / 255
	acc.g += uint32(c.G) * uint32(p) / 255
	acc.b += uint32(c.B) * uint32(p) / 255
	acc.a += uint32(p)
}

func (acc *accumulator) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(min(acc.r, 255)),
		G: uint8(min(acc.g, 255)),
		B: uint8(min(acc.b, 255)),
		A: uint8(min(acc.a, 255)),
	}
}

// Render blends all presence layers into a new image.  The result uses
// non-premultiplied alpha and has its origin at (0, 0).
//
// Render touches every pixel of every layer.  During a stroke, use
// [Stroke.Preview] instead, which only updates the pixels that changed.
func (s *Store) Render() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	s.RenderTo(img, img.Bounds())
	return img
}

// RenderTo re-renders the pixels of dst inside r.  Pixels outside the
// canvas or outside dst are left unchanged.
func (s *Store) RenderTo(dst *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(s.Bounds()).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setNRGBA(dst, x, y, s.pixel(y*s.width+x))
		}
	}
}

// pixel computes the rendered color of the pixel with the given index.
func (s *Store) pixel(idx int) color.NRGBA {
	var acc accumulator
	for i, r := range s.colors.vals {
		if p := r.Pix[idx]; p != 0 {
			acc.add(s.colors.keys[i], p)
		}
	}
	return acc.nrgba()
}

// previewPixel computes the rendered color of the pixel with the given
// index as it would be after blending in c with mask value v.  The store
// is not modified.
func (s *Store) previewPixel(idx int, v uint8, c Color) color.NRGBA {
	newVal := scale(v, c.A)
	spare := 255 - newVal
	var acc accumulator
	found := false
	for i, key := range s.colors.keys {
		p := s.colors.vals[i].Pix[idx]
		switch {
		case key == c:
			p = addSat(p, newVal)
			found = true
		case spare == 0:
			p = 0
		default:
			p = scale(p, spare)
		}
		if p != 0 {
			acc.add(key, p)
		}
	}
	if !found && newVal != 0 {
		acc.add(c, newVal)
	}
	return acc.nrgba()
}

func setNRGBA(dst *image.NRGBA, x, y int, c color.NRGBA) {
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}
