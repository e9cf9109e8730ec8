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
	"bytes"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func mustStroke(t testing.TB, w, h int) *Stroke {
	t.Helper()
	st, err := NewStroke(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

// pyramid returns a 5x5 mask with values decreasing from the center.
func pyramid() *Mask {
	m := NewMask(5, 5)
	for y := range 5 {
		for x := range 5 {
			d := max(abs(x-2), abs(y-2))
			m.Set(x, y, uint8(255-80*d))
		}
	}
	return m
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestStampTwiceIsStampOnce(t *testing.T) {
	once := mustStroke(t, 10, 10)
	once.Stamp(pyramid(), image.Pt(4, 4))

	twice := mustStroke(t, 10, 10)
	twice.Stamp(pyramid(), image.Pt(4, 4))
	twice.Stamp(pyramid(), image.Pt(4, 4))

	if !bytes.Equal(once.Raster().Pix, twice.Raster().Pix) {
		t.Error("stamping twice changed the stroke raster")
	}
}

func TestStampMaximum(t *testing.T) {
	st := mustStroke(t, 10, 1)
	st.Stamp(solidMask(3, 1, 100), image.Pt(3, 0))
	st.Stamp(solidMask(3, 1, 200), image.Pt(5, 0))
	st.Stamp(solidMask(3, 1, 50), image.Pt(4, 0))

	want := []uint8{0, 0, 100, 100, 200, 200, 200, 0, 0, 0}
	if !bytes.Equal(st.Raster().Pix, want) {
		t.Errorf("got %v, want %v", st.Raster().Pix, want)
	}
}

func TestStampCentering(t *testing.T) {
	// even sized masks put the extra pixel before the center
	st := mustStroke(t, 6, 6)
	st.Stamp(solidMask(2, 2, 255), image.Pt(3, 3))
	for y := range 6 {
		for x := range 6 {
			want := uint8(0)
			if (x == 2 || x == 3) && (y == 2 || y == 3) {
				want = 255
			}
			if got := st.Raster().At(x, y); got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStampClipped(t *testing.T) {
	st := mustStroke(t, 4, 4)
	st.Stamp(pyramid(), image.Pt(0, 0))
	st.Stamp(pyramid(), image.Pt(3, 3))
	st.Stamp(pyramid(), image.Pt(-10, 2))

	if got := st.Raster().At(0, 0); got != 255 {
		t.Errorf("(0,0): got %d, want 255", got)
	}
	if got := st.Raster().At(3, 3); got != 255 {
		t.Errorf("(3,3): got %d, want 255", got)
	}
}

func TestCommit(t *testing.T) {
	s := mustStore(t, 3, 3)
	st := mustStroke(t, 3, 3)

	one := solidMask(1, 1, 255)
	st.Stamp(one, image.Pt(1, 1))
	st.Commit(s, red)
	if !st.Raster().IsZero() {
		t.Fatal("stroke not cleared by Commit")
	}

	st.Stamp(one, image.Pt(1, 1))
	half := Color{B: 255, A: 128}
	st.Commit(s, half)

	if got := s.Presence(red, 1, 1); got < 126 || got > 127 {
		t.Errorf("red: got %d, want 126 or 127", got)
	}
	if got := s.Presence(half, 1, 1); got != 128 {
		t.Errorf("blue: got %d, want 128", got)
	}
}

func TestPreviewDoesNotModifyStore(t *testing.T) {
	s := mustStore(t, 8, 8)
	s.Fill(image.Pt(0, 0), green)
	st := mustStroke(t, 8, 8)
	st.Stamp(pyramid(), image.Pt(4, 4))

	before := s.Render()
	st.Preview(s, red)
	st.PreviewClone(s, red)

	if !bytes.Equal(before.Pix, s.Render().Pix) {
		t.Error("preview modified the store")
	}
	if len(s.Colors()) != 1 {
		t.Errorf("preview registered colors: %v", s.Colors())
	}
}

// TestPreviewIncremental checks that the incremental preview agrees with
// committing to a copy of the store, while the stroke grows, the store
// changes and the color changes.
func TestPreviewIncremental(t *testing.T) {
	const w, h = 24, 20
	rng := rand.New(rand.NewPCG(5, 6))
	s := mustStore(t, w, h)
	s.Fill(image.Pt(0, 0), Color{R: 200, G: 100, B: 50, A: 255})
	st := mustStroke(t, w, h)

	colors := []Color{red, {B: 255, A: 90}, {R: 40, G: 220, B: 40, A: 180}}
	c := colors[0]
	for step := range 60 {
		st.Stamp(pyramid(), image.Pt(rng.IntN(w+4)-2, rng.IntN(h+4)-2))

		switch step % 20 {
		case 7:
			c = colors[rng.IntN(len(colors))]
		case 13:
			s.SetPixel(rng.IntN(w), rng.IntN(h), blue)
		case 19:
			st.Commit(s, c)
		}

		got := st.Preview(s, c)
		want := st.PreviewClone(s, c)
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Fatalf("step %d: incremental preview differs from full preview", step)
		}
	}
}

func TestStrokeReset(t *testing.T) {
	s := mustStore(t, 5, 5)
	st := mustStroke(t, 5, 5)
	st.Stamp(pyramid(), image.Pt(2, 2))
	st.Preview(s, red)
	st.Reset()

	if !st.Raster().IsZero() {
		t.Error("stroke not cleared by Reset")
	}
	img := st.Preview(s, red)
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("byte %d of preview after Reset is %d", i, v)
		}
	}
}

func TestStampRecordsChangedPixelsOnce(t *testing.T) {
	s := mustStore(t, 10, 10)
	st := mustStroke(t, 10, 10)
	for range 50 {
		st.Stamp(pyramid(), image.Pt(4, 4))
	}
	if n := len(st.touched); n != 25 {
		t.Errorf("%d changed pixels recorded, want 25", n)
	}

	// a weaker dab changes nothing
	st.Stamp(solidMask(5, 5, 10), image.Pt(4, 4))
	if n := len(st.touched); n != 25 {
		t.Errorf("%d changed pixels recorded after weak dab, want 25", n)
	}

	st.Preview(s, red)
	if n := len(st.touched); n != 0 {
		t.Fatalf("%d changed pixels left after Preview", n)
	}
	st.Stamp(pyramid(), image.Pt(4, 4))
	if n := len(st.touched); n != 0 {
		t.Errorf("restamping recorded %d pixels", n)
	}

	// the center of a shifted dab lands on a pixel which had 255-80
	st.Stamp(pyramid(), image.Pt(5, 4))
	if n := len(st.touched); n == 0 || n > 25 {
		t.Errorf("shifted dab recorded %d pixels", n)
	}
	for i, w := range st.dirty {
		for _, idx := range st.touched {
			if idx>>6 == i {
				w &^= 1 << (idx & 63)
			}
		}
		if w != 0 {
			t.Errorf("dirty word %d has stray bits %x", i, w)
		}
	}
}

func TestPreviewSameColor(t *testing.T) {
	glaze := Color{R: 255, A: 128}
	s := mustStore(t, 3, 3)
	s.Apply(solidMask(3, 3, 255), image.Point{}, glaze)

	st := mustStroke(t, 3, 3)
	st.Stamp(solidMask(1, 1, 255), image.Pt(1, 1))

	got := st.Preview(s, glaze).NRGBAAt(1, 1)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("preview of a second layer: got %v, want opaque red", got)
	}
	want := st.PreviewClone(s, glaze)
	if !bytes.Equal(st.Preview(s, glaze).Pix, want.Pix) {
		t.Error("incremental preview differs from full preview")
	}
}
