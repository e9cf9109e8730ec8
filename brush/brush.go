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

// Package brush constructs brush tips for use with a paint canvas.
package brush

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/paint"
)

// ErrInvalidSize is returned when a brush is requested with a non-positive
// size.
var ErrInvalidSize = errors.New("invalid brush size")

// Easing maps the normalized distance from the edge of a round brush
// (0 at the rim, 1 at the center) to an opacity in [0, 1].
type Easing func(t float64) float64

// Identity is a linear falloff from the center to the rim.
func Identity(t float64) float64 {
	return t
}

// Exponential is a steep falloff: the brush is nearly opaque over most of
// its area and fades out close to the rim.
func Exponential(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Hard gives full opacity everywhere inside the circle.
func Hard(t float64) float64 {
	if t > 0 {
		return 1
	}
	return 0
}

// Spacing returns the default distance between dabs for a brush of the
// given diameter: a quarter of the diameter, but at least one pixel.
func Spacing(diameter int) float64 {
	return max(1, float64(diameter)/4)
}

// Round returns a circular brush of the given diameter.  The opacity at
// each pixel is ease applied to the relative distance of the pixel center
// from the rim.  If ease is nil, [Exponential] is used.
func Round(diameter int, ease Easing) (*paint.Brush, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("round brush of diameter %d: %w", diameter, ErrInvalidSize)
	}
	if ease == nil {
		ease = Exponential
	}

	m := paint.NewMask(diameter, diameter)
	r := float64(diameter) / 2
	for y := range diameter {
		dy := float64(y) + 0.5 - r
		for x := range diameter {
			dx := float64(x) + 0.5 - r
			t := 1 - math.Hypot(dx, dy)/r
			if t <= 0 {
				continue
			}
			v := ease(min(t, 1))
			m.Pix[y*diameter+x] = uint8(math.Round(255 * max(0, min(1, v))))
		}
	}

	return &paint.Brush{Mask: m, Spacing: Spacing(diameter)}, nil
}

// Resize scales the mask m to the given size using Catmull-Rom
// interpolation.
func Resize(m *paint.Mask, width, height int) (*paint.Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidSize)
	}
	dst := paint.NewMask(width, height).Alpha()
	draw.CatmullRom.Scale(dst, dst.Bounds(), m.Alpha(), m.Bounds(), draw.Src, nil)
	return paint.FromAlpha(dst), nil
}
