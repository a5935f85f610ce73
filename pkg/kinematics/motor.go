// pkg/kinematics/motor.go
package kinematics

import (
	"math"
	"time"
)

// Motor extends Kinematic with the agent's actuation limits and braking
// thresholds. Steering strategies consume this capability and nothing more.
type Motor interface {
	Kinematic

	// MaxLinearAcceleration returns the hard cap on commanded linear
	// acceleration, in world units per second squared.
	MaxLinearAcceleration() float64
	// MaxAngularAcceleration returns the hard cap on commanded angular
	// acceleration, in radians per second squared.
	MaxAngularAcceleration() float64
	// SlowRadius returns the distance at which Arrive begins decelerating.
	SlowRadius() float64
	// StopRadius returns the distance inside which Arrive considers the
	// agent arrived.
	StopRadius() float64
	// SlowAngle returns the angular difference at which Align begins
	// decelerating, in radians.
	SlowAngle() float64
	// StopAngle returns the angular difference inside which Align considers
	// the agent aligned, in radians.
	StopAngle() float64
	// ControlHorizon returns the fixed duration used to convert a desired
	// velocity or rotation delta into an acceleration. Nominally one
	// simulation tick.
	ControlHorizon() time.Duration
}

// Limits holds an agent's actuation caps and braking configuration.
// Invariants (enforced by config validation, assumed here):
// SlowRadius > StopRadius >= 0, SlowAngle > StopAngle >= 0,
// ControlHorizon > 0.
type Limits struct {
	MaxLinearAccel  float64
	MaxAngularAccel float64
	SlowRadius      float64
	StopRadius      float64
	SlowAngle       float64 // radians
	StopAngle       float64 // radians
	ControlHorizon  time.Duration
}

// MotorState combines a per-tick kinematic snapshot with the agent's
// actuation limits, satisfying Motor.
type MotorState struct {
	State
	Limits Limits
}

// MaxLinearAcceleration returns the linear acceleration cap.
func (m MotorState) MaxLinearAcceleration() float64 { return m.Limits.MaxLinearAccel }

// MaxAngularAcceleration returns the angular acceleration cap.
func (m MotorState) MaxAngularAcceleration() float64 { return m.Limits.MaxAngularAccel }

// SlowRadius returns the deceleration onset distance.
func (m MotorState) SlowRadius() float64 { return m.Limits.SlowRadius }

// StopRadius returns the arrival cutoff distance.
func (m MotorState) StopRadius() float64 { return m.Limits.StopRadius }

// SlowAngle returns the angular deceleration onset, in radians.
func (m MotorState) SlowAngle() float64 { return m.Limits.SlowAngle }

// StopAngle returns the alignment cutoff, in radians.
func (m MotorState) StopAngle() float64 { return m.Limits.StopAngle }

// ControlHorizon returns the velocity-delta conversion duration.
func (m MotorState) ControlHorizon() time.Duration { return m.Limits.ControlHorizon }

// MaxLinear3 collapses a host's separate forward, backward, and lateral
// acceleration limits into the single cap used by Limits: the greatest of
// the three.
func MaxLinear3(forward, backward, lateral float64) float64 {
	return math.Max(forward, math.Max(backward, lateral))
}

var (
	_ Motor     = MotorState{}
	_ Kinematic = State{}
)
