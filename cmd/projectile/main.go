// SPDX-License-Identifier: MIT

// Command projectile simulates a launched projectile under gravity and wind
// and writes its trajectory as an image.
//
// Usage:
//
//	projectile [-config scene.yaml] [-format ppm|png|bmp|tiff] [-o file] [-force]
//
// Without -config the default scene is used: launch from (0,1,0) along
// normalize(1,1.8,0)·11.25 with gravity (0,-0.1,0) and wind (-0.01,0,0),
// plotted in red on a 900×550 canvas. The image goes to standard output
// unless -o is given.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/raykernel/canvas"
	"github.com/katalvlaran/raykernel/internal/output"
	"github.com/katalvlaran/raykernel/projectile"
)

func main() {
	log.SetPrefix("projectile: ")
	log.SetFlags(0)

	configPath := flag.String("config", "", "YAML scene file (defaults when empty)")
	formatName := flag.String("format", string(canvas.FormatPPM), "output format: ppm, png, bmp or tiff")
	outPath := flag.String("o", output.Stdout, `output file ("-" for standard output)`)
	force := flag.Bool("force", false, "write image data even when standard output is a terminal")
	verbose := flag.Bool("v", false, "log every tick")
	flag.Parse()

	format, err := canvas.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("-format: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	path, err := projectile.Simulate(cfg)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if *verbose {
		for i, p := range path {
			log.Printf("tick %4d: position %v", i, p.Position)
		}
	}

	s := projectile.Summarize(path)
	if s.Landed {
		log.Printf("landed after %d ticks: apex %.2f, range %.2f", s.Ticks, s.Apex, s.Range)
	} else {
		log.Printf("still airborne after %d ticks (max_ticks): apex %.2f", s.Ticks, s.Apex)
	}

	c, err := projectile.Plot(cfg, path)
	if err != nil {
		log.Fatalf("plot: %v", err)
	}
	if err = output.Write(*outPath, c, format, *force); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the scene file, or returns the defaults for an empty path.
func loadConfig(path string) (projectile.Config, error) {
	if path == "" {
		return projectile.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return projectile.Config{}, err
	}
	defer f.Close()

	return projectile.LoadConfig(f)
}
