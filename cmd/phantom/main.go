// seehuhn.de/go/phantom - synthetic test images for image reconstruction
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

// Command phantom renders a preset phantom to an image file.
//
// Usage:
//
//	phantom [-preset original] [-width 256] [-height 256] [-format png] [-o file]
//
// The intensities are scaled to [0, 255] before they are written as 8-bit
// grayscale; use -scale to choose the factor explicitly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/phantom"
	"seehuhn.de/go/phantom/presets"
)

// encoders maps output formats to image encoders.
var encoders = map[string]func(io.Writer, image.Image) error{
	"png": png.Encode,
	"bmp": bmp.Encode,
	"tiff": func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	},
}

type options struct {
	preset  string
	width   int
	height  int
	format  string
	out     string
	workers int
	scale   float64
	verbose bool
}

func main() {
	var opt options
	flag.StringVar(&opt.preset, "preset", "original",
		"phantom to render: "+strings.Join(presets.Names(), ", "))
	flag.IntVar(&opt.width, "width", 256, "image width in pixels")
	flag.IntVar(&opt.height, "height", 256, "image height in pixels")
	flag.StringVar(&opt.format, "format", "png", "output format: png, bmp or tiff")
	flag.StringVar(&opt.out, "o", "", "output file (default <preset>.<format>)")
	flag.IntVar(&opt.workers, "workers", runtime.GOMAXPROCS(0), "number of rendering goroutines")
	flag.Float64Var(&opt.scale, "scale", 0, "intensity scale factor (0 maps the maximum to 255)")
	flag.BoolVar(&opt.verbose, "v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	phantom.SetLogger(logger)

	if err := run(opt, logger); err != nil {
		fmt.Fprintln(os.Stderr, "phantom:", err)
		os.Exit(1)
	}
}

func run(opt options, logger *slog.Logger) error {
	if opt.width <= 0 || opt.height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", opt.width, opt.height)
	}
	encode, ok := encoders[opt.format]
	if !ok {
		return fmt.Errorf("unknown format %q", opt.format)
	}
	shapes, ok := presets.All[opt.preset]
	if !ok {
		return fmt.Errorf("unknown preset %q", opt.preset)
	}
	if opt.out == "" {
		opt.out = opt.preset + "." + opt.format
	}

	r := phantom.NewRasterizer(opt.width, opt.height)
	r.Workers = opt.workers
	p := r.Render(shapes())

	lo, hi := p.Extrema()
	factor := opt.scale
	if factor == 0 {
		if hi <= 0 {
			return errors.New("cannot scale automatically: image has no positive pixels")
		}
		factor = 255 / hi
	}
	p.Scale(factor)
	logger.Debug("scaled intensities", "min", lo, "max", hi, "factor", factor)

	if err := writeImage(opt.out, p.Gray(), encode); err != nil {
		return fmt.Errorf("%s: %w", opt.out, err)
	}
	logger.Info("wrote image", "file", opt.out, "preset", opt.preset,
		"width", opt.width, "height", opt.height)
	return nil
}

func writeImage(name string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
