// seehuhn.de/go/pixels - classical raster algorithms
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

// Command showcase draws the output of one raster algorithm into a PNG
// file.  The exact geometry is overlaid as a thin guide, so that the
// choices made by each algorithm can be inspected.
//
// Usage:
//
//	showcase -algo bresenham -x0 10 -y0 20 -x1 300 -y1 120 -o line.png
//	showcase -algo circle -x0 400 -y0 300 -r 150 -o circle.png
//	showcase -algo liang-barsky -viewport 100,100,500,400 -x0 0 -y0 50 -x1 700 -y1 550
//	showcase -algo rotate -angle 30 -x0 200 -y0 300 -x1 500 -y1 300
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/pixels/paint"
)

var (
	algo     = flag.String("algo", "bresenham", "algorithm: "+strings.Join(algorithms, ", "))
	x0       = flag.String("x0", "0", "x coordinate of the start point or circle center")
	y0       = flag.String("y0", "0", "y coordinate of the start point or circle center")
	x1       = flag.String("x1", "0", "x coordinate of the end point")
	y1       = flag.String("y1", "0", "y coordinate of the end point")
	radius   = flag.String("r", "0", "circle radius")
	angle    = flag.String("angle", "0", "rotation angle in degrees, counter-clockwise about the start point")
	viewport = flag.String("viewport", "", "clip viewport as xMin,yMin,xMax,yMax")
	width    = flag.Int("width", paint.DefaultWidth, "canvas width")
	height   = flag.Int("height", paint.DefaultHeight, "canvas height")
	pixel    = flag.Int("pixel", paint.DefaultPixelSize, "size of the square painted for each pixel")
	zoom     = flag.Int("zoom", 1, "integer enlargement of the output image")
	guides   = flag.Bool("guide", true, "overlay the exact geometry")
	output   = flag.String("o", "showcase.png", "output file")
	verbose  = flag.Bool("v", false, "log details to stderr")
)

var algorithms = []string{"bresenham", "dda", "circle", "cohen-sutherland", "liang-barsky", "rotate"}

var (
	colorResult = color.RGBA{A: 255}
	colorDDA    = color.RGBA{B: 255, A: 255}
	colorFaint  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colorGuide  = color.RGBA{R: 220, G: 40, B: 40, A: 160}
)

// logger is silent unless -v is given.
var logger = slog.New(slog.DiscardHandler)

func main() {
	flag.Parse()
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	c := paint.NewCanvas(*width, *height)
	c.PixelSize = *pixel

	if err := draw(c, *algo); err != nil {
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	err = c.WritePNG(f, *zoom)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("image written", "file", *output, "zoom", *zoom)
	return nil
}
