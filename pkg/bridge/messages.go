// pkg/bridge/messages.go
package bridge

import (
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// MessageType identifies a frame on the wire.
type MessageType uint8

// Wire message types.
const (
	StateReadout MessageType = iota + 1
	ActuationCommand
)

// Readout is the host's per-tick state frame for one agent, with optional
// readouts for a tracked target.
type Readout struct {
	Position        physics.Vector2D `json:"position"`
	Velocity        physics.Vector2D `json:"velocity"`
	Heading         float64          `json:"heading"`         // radians
	AngularVelocity float64          `json:"angularVelocity"` // radians per second

	// Actuation limit readouts. The motor's linear cap is the greatest of
	// the three directional limits.
	MaxForwardAccel  float64 `json:"maxForwardAccel"`
	MaxBackwardAccel float64 `json:"maxBackwardAccel"`
	MaxLateralAccel  float64 `json:"maxLateralAccel"`
	MaxAngularAccel  float64 `json:"maxAngularAccel"`

	HasTarget             bool             `json:"hasTarget"`
	TargetPosition        physics.Vector2D `json:"targetPosition"`
	TargetVelocity        physics.Vector2D `json:"targetVelocity"`
	TargetHeading         float64          `json:"targetHeading"`
	TargetAngularVelocity float64          `json:"targetAngularVelocity"`
}

// State converts the readout into the engine's kinematic view.
func (r *Readout) State() kinematics.State {
	return kinematics.State{
		Pos:        r.Position,
		Vel:        r.Velocity,
		Heading:    r.Heading,
		AngularVel: r.AngularVelocity,
	}
}

// TargetState converts the tracked target's readouts into a kinematic view.
// Valid only when HasTarget is set.
func (r *Readout) TargetState() kinematics.State {
	return kinematics.State{
		Pos:        r.TargetPosition,
		Vel:        r.TargetVelocity,
		Heading:    r.TargetHeading,
		AngularVel: r.TargetAngularVelocity,
	}
}

// MaxLinearAccel collapses the directional limits into the motor's single
// linear cap.
func (r *Readout) MaxLinearAccel() float64 {
	return kinematics.MaxLinear3(r.MaxForwardAccel, r.MaxBackwardAccel, r.MaxLateralAccel)
}

// Command is the engine's actuation frame: the desired linear acceleration
// vector, the desired angular acceleration, and the discrete fire trigger
// set by the control loop after its alignment check.
type Command struct {
	Linear  physics.Vector2D `json:"linear"`
	Angular float64          `json:"angular"`
	Fire    bool             `json:"fire"`
}
