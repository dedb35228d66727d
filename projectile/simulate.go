// SPDX-License-Identifier: MIT

package projectile

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/raykernel/canvas"
	"github.com/katalvlaran/raykernel/color"
	"github.com/katalvlaran/raykernel/numeric"
)

// Simulate launches the projectile described by cfg and ticks it until its
// height drops to y ≤ 0 or cfg.MaxTicks ticks have run, whichever is first.
// The returned path starts with the launch state and ends with the first
// state at or below the ground (when it lands in time).
//
// Errors:
//   - ErrInvalidConfig via Launch.
//
// Complexity: O(MaxTicks) time and memory.
func Simulate(cfg Config) ([]Projectile, error) {
	p, env, err := Launch(cfg)
	if err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}

	path := []Projectile{p}
	for tick := 0; tick < cfg.MaxTicks && p.Position.Y > 0; tick++ {
		p = Tick(env, p)
		path = append(path, p)
	}

	return path, nil
}

// Summary describes a finished trajectory.
type Summary struct {
	Ticks  int     // ticks run (len(path)-1)
	Apex   float64 // highest Y reached
	Range  float64 // final X minus launch X
	Landed bool    // final Y ≤ 0
}

// Summarize reduces a path from Simulate. An empty path yields the zero Summary.
func Summarize(path []Projectile) Summary {
	if len(path) == 0 {
		return Summary{}
	}
	first, last := path[0].Position, path[len(path)-1].Position
	s := Summary{
		Ticks:  len(path) - 1,
		Apex:   first.Y,
		Range:  last.X - first.X,
		Landed: last.Y <= 0,
	}
	for _, p := range path[1:] {
		s.Apex = math.Max(s.Apex, p.Position.Y)
	}

	return s
}

// Plot draws every position of path onto a new cfg.Width×cfg.Height canvas in
// cfg.Color. World y grows upward, so a position lands on row
// Height - round(y); column is round(x). Positions outside the canvas or with
// non-finite coordinates are skipped.
//
// Errors:
//   - ErrInvalidConfig via Validate.
func Plot(cfg Config, path []Projectile) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}
	ink, err := color.Named(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}
	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}

	for _, p := range path {
		pos := p.Position
		if !numeric.IsFinite(pos.X) || !numeric.IsFinite(pos.Y) {
			continue
		}
		x := int(math.Round(pos.X))
		y := cfg.Height - int(math.Round(pos.Y))
		if err = c.WritePixel(x, y, ink); err != nil {
			if errors.Is(err, canvas.ErrOutOfBounds) {
				continue
			}

			return nil, fmt.Errorf("Plot: %w", err)
		}
	}

	return c, nil
}
