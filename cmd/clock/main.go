// SPDX-License-Identifier: MIT

// Command clock draws the twelve hour marks of a clock face by rotating the
// twelve o'clock point about the Y axis, then writes the canvas as an image.
//
// Usage:
//
//	clock [-size 400] [-radius 150] [-dot 2] [-color white] [-format ppm|png|bmp|tiff] [-o file] [-force]
package main

import (
	"flag"
	"log"

	"github.com/katalvlaran/raykernel/canvas"
	"github.com/katalvlaran/raykernel/color"
	"github.com/katalvlaran/raykernel/internal/output"
)

func main() {
	log.SetPrefix("clock: ")
	log.SetFlags(0)

	size := flag.Int("size", 400, "canvas width and height in pixels")
	radius := flag.Float64("radius", 0, "face radius in pixels (default 3/8 of -size)")
	dot := flag.Int("dot", 2, "half-width of each hour mark in pixels")
	colorName := flag.String("color", "white", "SVG color keyword for the marks")
	formatName := flag.String("format", string(canvas.FormatPPM), "output format: ppm, png, bmp or tiff")
	outPath := flag.String("o", output.Stdout, `output file ("-" for standard output)`)
	force := flag.Bool("force", false, "write image data even when standard output is a terminal")
	flag.Parse()

	format, err := canvas.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("-format: %v", err)
	}
	ink, err := color.Named(*colorName)
	if err != nil {
		log.Fatalf("-color: %v", err)
	}
	r := *radius
	if r == 0 {
		r = float64(*size) * 3 / 8
	}

	c, err := drawFace(*size, r, *dot, ink)
	if err != nil {
		log.Fatal(err)
	}
	if err = output.Write(*outPath, c, format, *force); err != nil {
		log.Fatal(err)
	}
}
