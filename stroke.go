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
	"fmt"
	"image"

	"go.uber.org/zap"
)

// Stroke accumulates a brush stroke in progress.  Brush dabs are combined
// by taking the maximum, so that painting over the same spot twice within
// one stroke does not increase the opacity.  When the stroke ends, it is
// blended into a [Store] once, by [Stroke.Commit].
type Stroke struct {
	raster *Raster

	// touched lists the raster indices changed since the last preview,
	// each index at most once.  dirty has the corresponding bits set.
	touched []int
	dirty   []uint64

	preview        *image.NRGBA
	previewStore   *Store
	previewVersion uint64
	previewColor   Color
}

// NewStroke allocates an empty stroke for a canvas of the given size.
func NewStroke(width, height int) (*Stroke, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Stroke{
		raster: NewRaster(width, height),
		dirty:  make([]uint64, (width*height+63)/64),
	}, nil
}

// Raster returns the accumulated stroke.  The raster is owned by the
// stroke and must not be modified.
func (st *Stroke) Raster() *Raster {
	return st.raster
}

// Stamp adds one dab of the brush tip m, centered at center.  Parts of the
// tip outside the canvas are clipped.
func (st *Stroke) Stamp(m *Mask, center image.Point) {
	pos := center.Sub(image.Pt(m.Width/2, m.Height/2))
	st.raster.SetMax(m, pos, st.touch)
}

func (st *Stroke) touch(idx int) {
	bit := uint64(1) << (idx & 63)
	if st.dirty[idx>>6]&bit != 0 {
		return
	}
	st.dirty[idx>>6] |= bit
	st.touched = append(st.touched, idx)
}

// clearTouched empties the set of changed pixels.
func (st *Stroke) clearTouched() {
	for _, idx := range st.touched {
		st.dirty[idx>>6] = 0
	}
	st.touched = st.touched[:0]
}

// Commit blends the stroke into s using color c and clears the stroke.
func (st *Stroke) Commit(s *Store, c Color) {
	s.Apply(&st.raster.Mask, image.Point{}, c)
	Logger().Debug("stroke committed", zap.Stringer("color", c))
	st.Reset()
}

// Reset discards the stroke without committing it.
func (st *Stroke) Reset() {
	st.raster.Clear()
	st.clearTouched()
	st.previewStore = nil
}

// Preview returns the image s would render to if the stroke was committed
// with color c.  The store is not modified and must have the same size as
// the stroke.
//
// Between calls, only the pixels touched by [Stroke.Stamp] are recomputed.
// A full render is done on the first call, after s was modified, and when
// a different store or color is used.  The returned image is reused by the
// next call to Preview; callers must not modify it.
func (st *Stroke) Preview(s *Store, c Color) *image.NRGBA {
	full := st.preview == nil ||
		st.previewStore != s ||
		st.previewVersion != s.version ||
		st.previewColor != c ||
		!st.preview.Bounds().Eq(s.Bounds())

	if full {
		if st.preview == nil || !st.preview.Bounds().Eq(s.Bounds()) {
			st.preview = image.NewNRGBA(s.Bounds())
		}
		s.RenderTo(st.preview, s.Bounds())
		for idx, v := range st.raster.Pix {
			if v != 0 {
				st.setPreview(s, idx, c)
			}
		}
	} else {
		for _, idx := range st.touched {
			st.setPreview(s, idx, c)
		}
	}

	st.clearTouched()
	st.previewStore = s
	st.previewVersion = s.version
	st.previewColor = c
	return st.preview
}

func (st *Stroke) setPreview(s *Store, idx int, c Color) {
	x, y := idx%st.raster.Width, idx/st.raster.Width
	setNRGBA(st.preview, x, y, s.previewPixel(idx, st.raster.Pix[idx], c))
}

// PreviewClone computes the same image as [Stroke.Preview], by committing
// the stroke to a copy of s and rendering the copy.  This is much slower
// than Preview and is mainly useful for testing.
func (st *Stroke) PreviewClone(s *Store, c Color) *image.NRGBA {
	tmp := s.Clone()
	tmp.Apply(&st.raster.Mask, image.Point{}, c)
	return tmp.Render()
}
