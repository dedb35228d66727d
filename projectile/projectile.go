// SPDX-License-Identifier: MIT

package projectile

import "github.com/katalvlaran/raykernel/tuple"

// Projectile is a point (Position) moving with a vector (Velocity).
type Projectile struct {
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// Environment holds the constant per-tick accelerations.
type Environment struct {
	Gravity tuple.Tuple
	Wind    tuple.Tuple
}

// Tick advances p by one step: the position moves by the current velocity,
// then the velocity picks up gravity and wind.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}
