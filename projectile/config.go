// SPDX-License-Identifier: MIT

package projectile

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/raykernel/color"
	"github.com/katalvlaran/raykernel/numeric"
	"github.com/katalvlaran/raykernel/tuple"
	"gopkg.in/yaml.v3"
)

// Defaults reproduce the classic "plot a projectile" scene.
const (
	DefaultSpeed    = 11.25
	DefaultWidth    = 900
	DefaultHeight   = 550
	DefaultColor    = "red"
	DefaultMaxTicks = 10000
)

// Vec3 is an (x, y, z) triple as written in YAML: a three-element sequence.
type Vec3 [3]float64

// Point lifts v to a tuple point.
func (v Vec3) Point() tuple.Tuple { return tuple.Point(v[0], v[1], v[2]) }

// Vector lifts v to a tuple vector.
func (v Vec3) Vector() tuple.Tuple { return tuple.Vector(v[0], v[1], v[2]) }

// Config describes one simulation run and its plot.
type Config struct {
	Start    Vec3    `yaml:"start"`
	Velocity Vec3    `yaml:"velocity"`
	Speed    float64 `yaml:"speed"`
	Gravity  Vec3    `yaml:"gravity"`
	Wind     Vec3    `yaml:"wind"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Color    string  `yaml:"color"`
	MaxTicks int     `yaml:"max_ticks"`
}

// DefaultConfig returns the book scenario: launch from (0,1,0) along
// normalize(1,1.8,0) at speed 11.25 under gravity (0,-0.1,0) and wind
// (-0.01,0,0), traced in red on a 900×550 canvas.
func DefaultConfig() Config {
	return Config{
		Start:    Vec3{0, 1, 0},
		Velocity: Vec3{1, 1.8, 0},
		Speed:    DefaultSpeed,
		Gravity:  Vec3{0, -0.1, 0},
		Wind:     Vec3{-0.01, 0, 0},
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Color:    DefaultColor,
		MaxTicks: DefaultMaxTicks,
	}
}

// LoadConfig decodes a YAML document from r on top of DefaultConfig and
// validates the result. Unknown keys are rejected; an empty document yields
// the defaults.
//
// Errors:
//   - YAML syntax or type errors from gopkg.in/yaml.v3.
//   - ErrInvalidConfig (see Config.Validate).
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks every field of cfg.
//
// Errors:
//   - ErrInvalidConfig naming the first offending key.
//   - color.ErrUnknownColor for an unresolvable color keyword.
func (cfg Config) Validate() error {
	vectors := []struct {
		key string
		v   Vec3
	}{
		{"start", cfg.Start},
		{"velocity", cfg.Velocity},
		{"gravity", cfg.Gravity},
		{"wind", cfg.Wind},
	}
	for _, e := range vectors {
		for _, x := range e.v {
			if !numeric.IsFinite(x) {
				return configErrorf(e.key, "non-finite component in %v", e.v)
			}
		}
	}
	if cfg.Velocity == (Vec3{}) {
		return configErrorf("velocity", "direction must be non-zero")
	}
	if !numeric.IsFinite(cfg.Speed) || cfg.Speed < 0 {
		return configErrorf("speed", "want finite ≥ 0, got %g", cfg.Speed)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return configErrorf("width/height", "want > 0, got %d×%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxTicks <= 0 {
		return configErrorf("max_ticks", "want > 0, got %d", cfg.MaxTicks)
	}
	if _, err := color.Named(cfg.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}

	return nil
}

// Launch builds the initial projectile and its environment from cfg.
// The configured velocity is a direction; it is normalized and scaled by Speed.
//
// Errors:
//   - ErrInvalidConfig via Validate.
func Launch(cfg Config) (Projectile, Environment, error) {
	if err := cfg.Validate(); err != nil {
		return Projectile{}, Environment{}, fmt.Errorf("Launch: %w", err)
	}
	dir, err := cfg.Velocity.Vector().Normalize()
	if err != nil {
		return Projectile{}, Environment{}, fmt.Errorf("Launch: %w", err)
	}

	p := Projectile{Position: cfg.Start.Point(), Velocity: dir.Scale(cfg.Speed)}
	env := Environment{Gravity: cfg.Gravity.Vector(), Wind: cfg.Wind.Vector()}

	return p, env, nil
}
