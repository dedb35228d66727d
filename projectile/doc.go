// SPDX-License-Identifier: MIT

// Package projectile simulates a point mass launched through an environment
// with constant gravity and wind, one discrete tick at a time, and plots the
// trajectory onto a canvas.
//
// A run is described by a Config, usually loaded from YAML:
//
//	start:     [0, 1, 0]
//	velocity:  [1, 1.8, 0]   # direction, normalized before use
//	speed:     11.25
//	gravity:   [0, -0.1, 0]
//	wind:      [-0.01, 0, 0]
//	width:     900
//	height:    550
//	color:     red
//	max_ticks: 10000
//
// Omitted keys keep their DefaultConfig values.
//
// Simulate returns every state from launch until the projectile reaches
// y ≤ 0 (or MaxTicks elapse). Plot maps world y upward onto canvas rows
// downward and silently skips positions that fall outside the canvas.
package projectile
