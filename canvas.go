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
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Canvas is a paint surface: a [Store] with the committed image, the
// [Stroke] currently being drawn and the [Sampler] which spaces out the
// brush positions of that stroke.
//
// A typical interaction calls StrokeTo for every pointer event while the
// button is held, Preview to display the stroke in progress, and
// CommitStroke when the button is released.
type Canvas struct {
	store   *Store
	stroke  *Stroke
	sampler Sampler
}

// New returns an empty, fully transparent canvas.
func New(width, height int) (*Canvas, error) {
	store, err := NewStore(width, height)
	if err != nil {
		return nil, err
	}
	stroke, err := NewStroke(width, height)
	if err != nil {
		return nil, err
	}
	return &Canvas{store: store, stroke: stroke}, nil
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.store.width }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.store.height }

// Bounds returns the canvas rectangle.
func (cv *Canvas) Bounds() image.Rectangle { return cv.store.Bounds() }

// Store gives access to the committed image.
func (cv *Canvas) Store() *Store { return cv.store }

// Render returns the committed image, without the stroke in progress.
func (cv *Canvas) Render() *image.NRGBA {
	return cv.store.Render()
}

// StrokeTo moves the pointer of the current stroke to pos and stamps the
// brush at every sample point between the previous position and pos.
// The sample points are returned.
func (cv *Canvas) StrokeTo(b *Brush, pos vec.Vec2) []vec.Vec2 {
	samples := cv.sampler.Update(pos, b.Spacing)
	cv.stamp(b.Mask, samples)
	return samples
}

// PreviewStroke stamps the brush at the given sample points and returns
// the image with the stroke in progress blended in using color c.
func (cv *Canvas) PreviewStroke(b *Brush, c Color, samples []vec.Vec2) *image.NRGBA {
	cv.stamp(b.Mask, samples)
	return cv.stroke.Preview(cv.store, c)
}

// Preview returns the image with the stroke in progress blended in using
// color c.  The returned image is reused by later calls.
func (cv *Canvas) Preview(c Color) *image.NRGBA {
	return cv.stroke.Preview(cv.store, c)
}

func (cv *Canvas) stamp(m *Mask, samples []vec.Vec2) {
	for _, p := range samples {
		cv.stroke.Stamp(m, canvasPoint(p))
	}
}

// CommitStroke blends the stroke in progress into the image using color c
// and starts a new stroke.
func (cv *Canvas) CommitStroke(c Color) {
	cv.stroke.Commit(cv.store, c)
	cv.sampler.Reset()
}

// CancelStroke discards the stroke in progress.
func (cv *Canvas) CancelStroke() {
	cv.stroke.Reset()
	cv.sampler.Reset()
}

// Fill flood-fills the region around seed with color c.
// See [Store.Fill].
func (cv *Canvas) Fill(seed image.Point, c Color) {
	cv.store.Fill(seed, c)
}

// SetPixel paints a single pixel.  See [Store.SetPixel].
func (cv *Canvas) SetPixel(x, y int, c Color) {
	cv.store.SetPixel(x, y, c)
}

// AddImage paints img onto the canvas.  See [Store.AddImage].
func (cv *Canvas) AddImage(img image.Image, at image.Point) {
	cv.store.AddImage(img, at)
}

// Colors returns the colors used on the canvas, in order of first use.
func (cv *Canvas) Colors() []Color {
	return cv.store.Colors()
}

// Presence returns the presence of color c at (x, y).
func (cv *Canvas) Presence(c Color, x, y int) uint8 {
	return cv.store.Presence(c, x, y)
}

// Clear erases the canvas, including any stroke in progress.
func (cv *Canvas) Clear() {
	store, _ := NewStore(cv.store.width, cv.store.height)
	cv.store = store
	cv.CancelStroke()
}

// canvasPoint converts a canvas position to pixel coordinates, truncating
// towards zero.
func canvasPoint(p vec.Vec2) image.Point {
	return image.Pt(int(math.Trunc(p.X)), int(math.Trunc(p.Y)))
}
