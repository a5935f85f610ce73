// pkg/steering/steering.go

// Package steering implements composable movement strategies for motor-
// capable agents. Each strategy maps the agent's current motor state to a
// desired acceleration command once per simulation tick.
//
// Abstention is a first-class outcome: a strategy that has nothing useful to
// command (already at target, undefined direction) reports ok == false, and
// the caller must treat that as "nothing commanded", never as a zero
// command.
package steering

import (
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// Output is a desired acceleration command: a linear acceleration vector in
// world units per second squared and an angular acceleration scalar in
// radians per second squared.
type Output struct {
	Linear  physics.Vector2D
	Angular float64
}

// Strategy computes a desired acceleration command from a motor-capable
// state. ok == false means the strategy abstains this tick.
type Strategy interface {
	Steer(m kinematics.Motor) (out Output, ok bool)
}
