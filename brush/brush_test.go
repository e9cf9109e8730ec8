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

package brush

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/paint"
)

func TestRoundHard(t *testing.T) {
	b, err := Round(5, Hard)
	if err != nil {
		t.Fatal(err)
	}
	m := b.Mask
	if m.Width != 5 || m.Height != 5 {
		t.Fatalf("mask size %dx%d, want 5x5", m.Width, m.Height)
	}
	if m.At(2, 2) != 255 {
		t.Errorf("center = %d, want 255", m.At(2, 2))
	}
	for _, c := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if v := m.At(c[0], c[1]); v != 0 {
			t.Errorf("corner %v = %d, want 0", c, v)
		}
	}
	for y := range 5 {
		for x := range 5 {
			if m.At(x, y) != m.At(4-x, y) || m.At(x, y) != m.At(x, 4-y) {
				t.Fatalf("mask is not symmetric at (%d, %d)", x, y)
			}
		}
	}
	if b.Spacing != 1.25 {
		t.Errorf("spacing = %g, want 1.25", b.Spacing)
	}
}

func TestRoundFalloff(t *testing.T) {
	b, err := Round(21, Identity)
	if err != nil {
		t.Fatal(err)
	}
	m := b.Mask
	if m.At(10, 10) != 255 {
		t.Errorf("center = %d, want 255", m.At(10, 10))
	}
	for x := 10; x < 20; x++ {
		if m.At(x+1, 10) >= m.At(x, 10) {
			t.Errorf("opacity does not decrease from x=%d to x=%d", x, x+1)
		}
	}
}

func TestRoundSinglePixel(t *testing.T) {
	b, err := Round(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Mask.Pix) != 1 || b.Mask.Pix[0] != 255 {
		t.Errorf("got %v, want [255]", b.Mask.Pix)
	}
	if b.Spacing != 1 {
		t.Errorf("spacing = %g, want 1", b.Spacing)
	}
}

func TestRoundInvalid(t *testing.T) {
	for _, d := range []int{0, -3} {
		if _, err := Round(d, nil); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Round(%d): got error %v", d, err)
		}
	}
}

func TestEasing(t *testing.T) {
	cases := []struct {
		name string
		f    Easing
		t    float64
		want float64
	}{
		{"Identity", Identity, 0.3, 0.3},
		{"Exponential", Exponential, 0, 0},
		{"Exponential", Exponential, 0.5, 1 - 1.0/32},
		{"Exponential", Exponential, 1, 1},
		{"Hard", Hard, 0, 0},
		{"Hard", Hard, 0.01, 1},
	}
	for _, c := range cases {
		if got := c.f(c.t); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", c.name, c.t, got, c.want)
		}
	}
}

func TestResize(t *testing.T) {
	src := paint.NewMask(4, 4)
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	m, err := Resize(src, 10, 6)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 10 || m.Height != 6 {
		t.Fatalf("size %dx%d, want 10x6", m.Width, m.Height)
	}
	for i, v := range m.Pix {
		if v < 199 || v > 201 {
			t.Errorf("pixel %d = %d, want 200", i, v)
		}
	}

	if _, err := Resize(src, 0, 3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize to 0x3: got error %v", err)
	}
}
