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
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSamplerFirstPosition(t *testing.T) {
	var s Sampler
	p := vec.Vec2{X: 3.5, Y: 7}
	got := s.Update(p, 2)
	if len(got) != 1 || got[0] != p {
		t.Errorf("first update: got %v, want [%v]", got, p)
	}
}

func TestSamplerLine(t *testing.T) {
	var s Sampler
	s.Update(vec.Vec2{X: 0, Y: 0}, 2)
	got := s.Update(vec.Vec2{X: 7, Y: 0}, 2)

	want := []float64{0, 2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i, x := range want {
		if math.Abs(got[i].X-x) > 1e-9 || got[i].Y != 0 {
			t.Errorf("sample %d: got %v, want (%g, 0)", i, got[i], x)
		}
	}
}

func TestSamplerRepeatedPosition(t *testing.T) {
	var s Sampler
	p := vec.Vec2{X: 1, Y: 1}
	s.Update(p, 1)
	if got := s.Update(p, 1); len(got) != 0 {
		t.Errorf("expected no samples, got %v", got)
	}
}

func TestSamplerHistory(t *testing.T) {
	var s Sampler
	for i := range 5 {
		s.Update(vec.Vec2{X: float64(i)}, 1)
	}
	if s.Len() != historySize {
		t.Errorf("history holds %d positions, want %d", s.Len(), historySize)
	}
	if s.history[0].X != 4 || s.history[1].X != 3 {
		t.Errorf("history is %v, want most recent first", s.history)
	}

	s.Reset()
	p := vec.Vec2{X: 10, Y: 10}
	if got := s.Update(p, 1); len(got) != 1 || got[0] != p {
		t.Errorf("after Reset: got %v, want [%v]", got, p)
	}
}

func TestSamplerNonPositiveSpacing(t *testing.T) {
	var s Sampler
	s.Update(vec.Vec2{}, 0)
	got := s.Update(vec.Vec2{X: 3}, -1)
	if len(got) != 3 {
		t.Errorf("got %d samples, want 3", len(got))
	}
}

func TestSamplerSpacingBound(t *testing.T) {
	const eps = 1e-9
	rng := rand.New(rand.NewPCG(7, 8))

	for trial := range 100 {
		var s Sampler
		spacing := 0.25 + 5*rng.Float64()
		prevSample := vec.Vec2{}
		first := true
		cur := vec.Vec2{}
		for range 20 {
			cur = vec.Vec2{X: 200 * rng.Float64(), Y: 200 * rng.Float64()}
			for _, p := range s.Update(cur, spacing) {
				if !first && p.Sub(prevSample).Length() > spacing+eps {
					t.Fatalf("trial %d: samples %v and %v are more than %g apart",
						trial, prevSample, p, spacing)
				}
				prevSample = p
				first = false
			}
			if d := cur.Sub(prevSample).Length(); d > spacing+eps {
				t.Fatalf("trial %d: last sample %v is %g from %v", trial, prevSample, d, cur)
			}
		}
	}
}
