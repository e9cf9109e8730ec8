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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/paint"
	"seehuhn.de/go/paint/brush"
)

var (
	// errNoCanvas is returned for drawing commands before the first
	// canvas command.
	errNoCanvas = errors.New("no canvas")

	errOddCoords   = errors.New("odd number of coordinates")
	errBrushRound  = errors.New("expected diameter and optional easing")
	errNoBrushType = errors.New("missing brush type")
)

// command is one line of a replay script.
type command struct {
	line int
	name string
	args []string
}

func (c command) String() string {
	return fmt.Sprintf("line %d: %s", c.line, c.name)
}

// parseScript reads one command per line.  Empty lines and lines starting
// with '#' are ignored.
func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmds = append(cmds, command{line: lineNo, name: fields[0], args: fields[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// player executes replay scripts against a canvas.
type player struct {
	log *zap.Logger
	dir string // base directory for relative image paths

	canvas  *paint.Canvas
	color   paint.Color
	brush   *paint.Brush
	spacing float64 // overrides the brush spacing if positive
}

func newPlayer(log *zap.Logger, dir string) *player {
	b, _ := brush.Round(9, nil)
	return &player{
		log:   log,
		dir:   dir,
		color: paint.Color{A: 255},
		brush: b,
	}
}

func (p *player) run(cmds []command) error {
	for _, c := range cmds {
		if err := p.exec(c); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}
	return nil
}

func (p *player) exec(c command) error {
	switch c.name {
	case "canvas":
		nums, err := ints(c.args, 2, 2)
		if err != nil {
			return err
		}
		cv, err := paint.New(nums[0], nums[1])
		if err != nil {
			return err
		}
		p.canvas = cv
		p.log.Debug("canvas", zap.Int("width", nums[0]), zap.Int("height", nums[1]))
		return nil
	case "color":
		if len(c.args) != 1 {
			return fmt.Errorf("expected 1 argument, got %d", len(c.args))
		}
		col, err := parseColor(c.args[0])
		if err != nil {
			return err
		}
		p.color = col
		return nil
	case "brush":
		b, err := parseBrush(c.args)
		if err != nil {
			return err
		}
		p.brush = b
		return nil
	case "spacing":
		nums, err := floats(c.args, 1, 1)
		if err != nil {
			return err
		}
		p.spacing = nums[0]
		return nil
	}

	if p.canvas == nil {
		return errNoCanvas
	}
	switch c.name {
	case "stroke":
		nums, err := floats(c.args, 2, -1)
		if err != nil {
			return err
		}
		if len(nums)%2 != 0 {
			return errOddCoords
		}
		b := p.brush
		if p.spacing > 0 {
			b = &paint.Brush{Mask: b.Mask, Spacing: p.spacing}
		}
		dabs := 0
		for i := 0; i < len(nums); i += 2 {
			dabs += len(p.canvas.StrokeTo(b, vec.Vec2{X: nums[i], Y: nums[i+1]}))
		}
		p.canvas.CommitStroke(p.color)
		p.log.Debug("stroke",
			zap.Int("points", len(nums)/2),
			zap.Int("dabs", dabs),
			zap.Stringer("color", p.color))
	case "fill":
		nums, err := ints(c.args, 2, 2)
		if err != nil {
			return err
		}
		p.canvas.Fill(image.Pt(nums[0], nums[1]), p.color)
	case "pixel":
		nums, err := ints(c.args, 2, 2)
		if err != nil {
			return err
		}
		p.canvas.SetPixel(nums[0], nums[1], p.color)
	case "image":
		if len(c.args) != 1 && len(c.args) != 3 {
			return fmt.Errorf("expected 1 or 3 arguments, got %d", len(c.args))
		}
		var at image.Point
		if len(c.args) == 3 {
			nums, err := ints(c.args[1:], 2, 2)
			if err != nil {
				return err
			}
			at = image.Pt(nums[0], nums[1])
		}
		fname := c.args[0]
		if !filepath.IsAbs(fname) {
			fname = filepath.Join(p.dir, fname)
		}
		img, err := imaging.Open(fname)
		if err != nil {
			return err
		}
		p.canvas.AddImage(img, at)
		p.log.Debug("image", zap.String("path", fname), zap.Stringer("at", at))
	case "clear":
		p.canvas.Clear()
	default:
		return fmt.Errorf("unknown command %q", c.name)
	}
	return nil
}

// parseColor parses colors of the form #rrggbb or #rrggbbaa.
func parseColor(s string) (paint.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return paint.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return paint.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return paint.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

var easings = map[string]brush.Easing{
	"exp":    brush.Exponential,
	"linear": brush.Identity,
	"hard":   brush.Hard,
}

// parseBrush handles the arguments of the brush command:
//
//	brush round <diameter> [exp|linear|hard]
//	brush rect <width> <height> [<angle in degrees>]
func parseBrush(args []string) (*paint.Brush, error) {
	if len(args) == 0 {
		return nil, errNoBrushType
	}
	switch args[0] {
	case "round":
		if len(args) < 2 || len(args) > 3 {
			return nil, errBrushRound
		}
		d, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, err
		}
		var ease brush.Easing = brush.Exponential
		if len(args) == 3 {
			var ok bool
			ease, ok = easings[args[2]]
			if !ok {
				return nil, fmt.Errorf("unknown easing %q", args[2])
			}
		}
		return brush.Round(d, ease)
	case "rect":
		nums, err := floats(args[1:], 2, 3)
		if err != nil {
			return nil, err
		}
		var angle float64
		if len(nums) == 3 {
			angle = nums[2]
		}
		return rectBrush(nums[0], nums[1], angle)
	default:
		return nil, fmt.Errorf("unknown brush type %q", args[0])
	}
}

// rectBrush returns a calligraphy-style brush: a w by h rectangle, rotated
// by angle degrees around its center.
func rectBrush(w, h, angle float64) (*paint.Brush, error) {
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("rect %gx%g: %w", w, h, brush.ErrInvalidSize)
	}
	outline := (&path.Data{}).
		MoveTo(vec.Vec2{X: -w / 2, Y: -h / 2}).
		LineTo(vec.Vec2{X: w / 2, Y: -h / 2}).
		LineTo(vec.Vec2{X: w / 2, Y: h / 2}).
		LineTo(vec.Vec2{X: -w / 2, Y: h / 2}).
		Close()

	size := math.Ceil(math.Hypot(w, h))
	sin, cos := math.Sincos(angle * math.Pi / 180)
	ctm := matrix.Matrix{cos, sin, -sin, cos, size / 2, size / 2}
	return brush.FromShape(outline, ctm, rect.Rect{URx: size, URy: size})
}

// ints parses between minN and maxN integer arguments.  A negative maxN
// means no upper limit.
func ints(args []string, minN, maxN int) ([]int, error) {
	if err := checkCount(args, minN, maxN); err != nil {
		return nil, err
	}
	res := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// floats is like ints, for floating point arguments.
func floats(args []string, minN, maxN int) ([]float64, error) {
	if err := checkCount(args, minN, maxN); err != nil {
		return nil, err
	}
	res := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func checkCount(args []string, minN, maxN int) error {
	if len(args) < minN || (maxN >= 0 && len(args) > maxN) {
		return fmt.Errorf("wrong number of arguments: %d", len(args))
	}
	return nil
}
