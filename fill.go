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

	"go.uber.org/zap"
)

// direction tells a pending span which neighbouring row to scan next.
type direction int8

const (
	lookingUp direction = iota
	lookingDown
)

func (d direction) opposite() direction {
	if d == lookingUp {
		return lookingDown
	}
	return lookingUp
}

// dy returns the row offset of the next row in direction d.
func (d direction) dy() int {
	if d == lookingUp {
		return -1
	}
	return 1
}

func (d direction) String() string {
	if d == lookingUp {
		return "up"
	}
	return "down"
}

// span is a pending piece of work for the scanline fill: the columns
// [left, right) of row y still need to be scanned.  The span was produced
// by the row y-dir.dy().
type span struct {
	left, right int
	y           int
	dir         direction
}

// filler holds the state of a single flood fill operation.
type filler struct {
	s     *Store
	color Color
	t     int // registry index of the fill color

	// Fill into empty space: pixels are set to the spare presence.
	empty bool

	// Fill into occupied space.
	sources []int // registry indices of the colors present at the seed
	scaling float64
	replace bool

	visited []uint64
	stack   []span

	pixels, spans int
}

// Fill flood-fills the region around seed with color c.
//
// If no other color is present at the seed, the fill spreads over all
// connected pixels that are not yet saturated, and tops up the presence of
// c there to the free capacity.  Otherwise, the colors present at the seed
// form the source set, and the fill spreads over all connected pixels
// where every source color is present.  A translucent fill color is blended
// in on top of the sources; an opaque fill color replaces the weakest
// source.
//
// Fill runs to completion before returning.  Seeds outside the canvas are
// ignored.
func (s *Store) Fill(seed image.Point, c Color) {
	if !seed.In(s.Bounds()) {
		return
	}
	f := s.newFiller(seed, c)
	f.run(seed)
	s.fillVisited = f.visited
	s.fillStack = f.stack[:0]

	Logger().Debug("flood fill",
		zap.Stringer("color", c),
		zap.Int("x", seed.X), zap.Int("y", seed.Y),
		zap.Bool("empty", f.empty),
		zap.Int("spans", f.spans),
		zap.Int("pixels", f.pixels))
}

func (s *Store) newFiller(seed image.Point, c Color) *filler {
	f := &filler{
		s:     s,
		color: c,
		t:     s.layer(c),
		stack: s.fillStack[:0],
	}
	s.version++

	n := (s.width*s.height + 63) / 64
	if cap(s.fillVisited) >= n {
		f.visited = s.fillVisited[:n]
		clear(f.visited)
	} else {
		f.visited = make([]uint64, n)
	}

	idx := seed.Y*s.width + seed.X
	minAlpha := uint8(255)
	for i, r := range s.colors.vals {
		if i == f.t || r.Pix[idx] == 0 {
			continue
		}
		f.sources = append(f.sources, i)
		minAlpha = min(minAlpha, s.colors.keys[i].A)
	}
	if len(f.sources) == 0 {
		f.empty = true
		return f
	}

	// A color with zero alpha can never gain presence, so minAlpha is
	// positive in practice.
	minAlpha = max(minAlpha, 1)
	f.scaling = float64(c.A) / float64(minAlpha)
	f.replace = c.A == 255 && f.scaling >= 1
	return f
}

func (f *filler) isVisited(idx int) bool {
	return f.visited[idx>>6]&(1<<(idx&63)) != 0
}

// minSource returns the smallest presence among the source colors at idx,
// together with the registry index of the corresponding layer.
func (f *filler) minSource(idx int) (uint8, int) {
	m, layer := uint8(255), -1
	for _, i := range f.sources {
		if p := f.s.colors.vals[i].Pix[idx]; layer < 0 || p < m {
			m, layer = p, i
		}
	}
	return m, layer
}

func (f *filler) fillable(x, y int) bool {
	idx := y*f.s.width + x
	if f.isVisited(idx) {
		return false
	}
	if f.empty {
		others := f.s.others(idx, f.t)
		return others < 255 && f.s.colors.vals[f.t].Pix[idx] != 255-others
	}
	m, _ := f.minSource(idx)
	return m > 0
}

// paint fills a single pixel.  The caller must have checked that the pixel
// is fillable.
func (f *filler) paint(x, y int) {
	idx := y*f.s.width + x
	f.visited[idx>>6] |= 1 << (idx & 63)
	f.pixels++

	target := f.s.colors.vals[f.t]
	if f.empty {
		target.Pix[idx] = 255 - f.s.others(idx, f.t)
		return
	}

	m, layer := f.minSource(idx)
	amount := uint8(min(255, float64(m)*f.scaling))
	if !f.replace {
		f.s.blendIn(idx, f.t, amount)
		return
	}
	f.s.colors.vals[layer].Pix[idx] = 0
	headroom := 255 - f.s.others(idx, -1)
	target.Pix[idx] = addSat(target.Pix[idx], min(headroom, amount))
}

func (f *filler) push(left, right, y int, dir direction) {
	if left >= right || y < 0 || y >= f.s.height {
		return
	}
	f.stack = append(f.stack, span{left: left, right: right, y: y, dir: dir})
}

func (f *filler) run(seed image.Point) {
	x, y := seed.X, seed.Y
	if !f.fillable(x, y) {
		return
	}

	left := x
	f.paint(x, y)
	for left > 0 && f.fillable(left-1, y) {
		left--
		f.paint(left, y)
	}
	right := x + 1
	for right < f.s.width && f.fillable(right, y) {
		f.paint(right, y)
		right++
	}
	f.push(left, right, y-1, lookingUp)
	f.push(left, right, y+1, lookingDown)

	for len(f.stack) > 0 {
		sp := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		f.scan(sp)
	}
}

// scan fills all runs of fillable pixels in row sp.y which overlap the
// columns of sp, and queues the neighbouring rows.
func (f *filler) scan(sp span) {
	f.spans++
	y, dy := sp.y, sp.dir.dy()
	back := sp.dir.opposite()
	width := f.s.width

	x := sp.left
	if f.fillable(x, y) {
		// The first run can leak out to the left of the parent span.
		left := x
		f.paint(x, y)
		for left > 0 && f.fillable(left-1, y) {
			left--
			f.paint(left, y)
		}
		f.push(left, sp.left, y-dy, back)

		x++
		for x < width && f.fillable(x, y) {
			f.paint(x, y)
			x++
		}
		f.push(left, x, y+dy, sp.dir)
		f.push(sp.right, x, y-dy, back)
	}

	for x < sp.right {
		if !f.fillable(x, y) {
			x++
			continue
		}
		left := x
		for x < width && f.fillable(x, y) {
			f.paint(x, y)
			x++
		}
		f.push(left, x, y+dy, sp.dir)
		f.push(sp.right, x, y-dy, back)
	}
}
