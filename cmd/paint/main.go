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

// Command paint replays a drawing script on a paint canvas and writes the
// result as an image.
//
// Usage:
//
//	paint [-in script] [-out image.png] [-debug]
//
// A script contains one command per line.  Lines starting with '#' are
// comments.  The commands are:
//
//	canvas <width> <height>          start a new, empty canvas
//	color #rrggbb[aa]                set the paint color
//	brush round <diameter> [easing]  round brush, easing is exp, linear or hard
//	brush rect <w> <h> [angle]       rotated rectangular brush
//	spacing <pixels>                 distance between dabs, 0 for the default
//	stroke <x> <y> [<x> <y> ...]     paint one stroke through the given points
//	fill <x> <y>                     flood fill starting at the given pixel
//	pixel <x> <y>                    paint a single pixel
//	image <file> [<x> <y>]           paint an image onto the canvas
//	clear                            erase the canvas
//
// Use "-" as the file name to read the script from stdin or to write the
// PNG image to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"seehuhn.de/go/paint"
)

const pipeName = "-"

// Errors for "-" used without a pipe.
var (
	errStdinTerminal  = errors.New("`-` should be used with a pipe for stdin")
	errStdoutTerminal = errors.New("`-` should be used with a pipe for stdout")
)

// requirePipe returns errTerm if f is a terminal.
func requirePipe(f *os.File, errTerm error) error {
	if term.IsTerminal(int(f.Fd())) {
		return errTerm
	}
	return nil
}

func main() {
	in := flag.String("in", pipeName, "script file")
	out := flag.String("out", pipeName, "output image, the format is chosen by the file extension")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	paint.SetLogger(l)
	defer l.Sync() //nolint:errcheck

	if err := run(l, *in, *out); err != nil {
		l.Fatal("paint", zap.Error(err))
	}
}

func run(l *zap.Logger, in, out string) error {
	cmds, dir, err := readScript(in)
	if err != nil {
		return err
	}
	l.Debug("script loaded", zap.String("path", in), zap.Int("commands", len(cmds)))

	p := newPlayer(l, dir)
	if err := p.run(cmds); err != nil {
		return err
	}
	if p.canvas == nil {
		return errNoCanvas
	}
	img := p.canvas.Render()

	if out == pipeName {
		if err := requirePipe(os.Stdout, errStdoutTerminal); err != nil {
			return err
		}
		return imaging.Encode(os.Stdout, img, imaging.PNG)
	}
	if err := imaging.Save(img, out); err != nil {
		return err
	}
	l.Info("image written",
		zap.String("path", out),
		zap.Int("colors", len(p.canvas.Colors())))
	return nil
}

// readScript parses the script in the named file.  It also returns the
// directory used to resolve relative image paths.
func readScript(name string) (cmds []command, dir string, err error) {
	var r io.Reader
	if name == pipeName {
		if err := requirePipe(os.Stdin, errStdinTerminal); err != nil {
			return nil, "", err
		}
		r = os.Stdin
		dir = "."
	} else {
		f, openErr := os.Open(name)
		if openErr != nil {
			return nil, "", openErr
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		r = f
		dir = filepath.Dir(name)
	}

	cmds, err = parseScript(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", name, err)
	}
	return cmds, dir, nil
}
