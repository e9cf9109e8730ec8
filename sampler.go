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

import "seehuhn.de/go/geom/vec"

// historySize is the number of pointer positions remembered by a Sampler.
const historySize = 2

// Sampler converts the pointer positions of a stroke into evenly spaced
// brush positions.  Pointer events arrive at irregular intervals, and a fast
// movement can put consecutive events far apart; the sampler fills the
// gaps so that brush dabs are never more than the brush spacing apart.
//
// The zero value is ready to use.
type Sampler struct {
	history [historySize]vec.Vec2 // most recent first
	n       int
}

// Update records a new pointer position and returns the positions where
// the brush should be applied.  The first position of a stroke is returned
// by itself.  Afterwards, points are placed every spacing units along the
// line from the previous position towards pos, starting at the previous
// position and stopping short of pos.  If pos equals the previous position,
// nil is returned.
//
// A spacing which is not positive is treated as 1.
func (s *Sampler) Update(pos vec.Vec2, spacing float64) []vec.Vec2 {
	s.push(pos)
	if s.n == 1 {
		return []vec.Vec2{pos}
	}
	return spacedLerp(s.history[1], s.history[0], spacing)
}

// Reset forgets all positions.  Call this at the end of a stroke.
func (s *Sampler) Reset() {
	s.n = 0
}

// Len returns the number of remembered positions.
func (s *Sampler) Len() int {
	return s.n
}

func (s *Sampler) push(pos vec.Vec2) {
	copy(s.history[1:], s.history[:historySize-1])
	s.history[0] = pos
	if s.n < historySize {
		s.n++
	}
}

// spacedLerp returns the points from + k*spacing*(to-from)/|to-from| for
// k = 0, 1, ... as long as the distance from from is less than |to-from|.
func spacedLerp(from, to vec.Vec2, spacing float64) []vec.Vec2 {
	if !(spacing > 0) {
		spacing = 1
	}
	diff := to.Sub(from)
	dist := diff.Length()
	if dist == 0 {
		return nil
	}
	step := diff.Mul(1 / dist)

	res := make([]vec.Vec2, 0, int(dist/spacing)+1)
	for k := 0; ; k++ {
		t := float64(k) * spacing
		if t >= dist {
			break
		}
		res = append(res, from.Add(step.Mul(t)))
	}
	return res
}
