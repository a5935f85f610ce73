// pkg/steering/linear.go
package steering

import (
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// Seek accelerates at the maximum linear rate directly toward a fixed
// target point. It abstains when the target coincides with the agent's
// position, where the direction is undefined.
type Seek struct {
	Target physics.Vector2D
}

// Steer implements Strategy.
func (s Seek) Steer(m kinematics.Motor) (Output, bool) {
	direction := s.Target.Sub(m.Position())
	if direction.IsZero() {
		return Output{}, false
	}
	return Output{Linear: direction.Normalize().Scale(m.MaxLinearAcceleration())}, true
}

// Flee accelerates at the maximum linear rate directly away from a fixed
// target point. It abstains when the target coincides with the agent's
// position.
type Flee struct {
	Target physics.Vector2D
}

// Steer implements Strategy.
func (f Flee) Steer(m kinematics.Motor) (Output, bool) {
	direction := m.Position().Sub(f.Target)
	if direction.IsZero() {
		return Output{}, false
	}
	return Output{Linear: direction.Normalize().Scale(m.MaxLinearAcceleration())}, true
}

// Arrive accelerates toward a target point with a smooth deceleration ramp:
// full rate outside the slow radius, linearly scaled between the stop and
// slow radii. The commanded acceleration closes the gap between the scaled
// target velocity and the current velocity over one control horizon. It
// abstains inside the stop radius.
type Arrive struct {
	Target physics.Vector2D
}

// Steer implements Strategy.
func (a Arrive) Steer(m kinematics.Motor) (Output, bool) {
	direction := a.Target.Sub(m.Position())
	distance := direction.Length()

	var magnitude float64
	switch {
	case distance <= m.StopRadius():
		return Output{}, false
	case distance <= m.SlowRadius():
		magnitude = m.MaxLinearAcceleration() * distance / m.SlowRadius()
	default:
		magnitude = m.MaxLinearAcceleration()
	}

	targetVelocity := direction.Normalize().Scale(magnitude)
	deltaVelocity := targetVelocity.Sub(m.Velocity())
	return Output{Linear: deltaVelocity.Scale(1 / m.ControlHorizon().Seconds())}, true
}

// MatchVelocity commands the acceleration that closes the gap to a target
// velocity over one control horizon. It never abstains.
type MatchVelocity struct {
	Target physics.Vector2D
}

// Steer implements Strategy.
func (v MatchVelocity) Steer(m kinematics.Motor) (Output, bool) {
	delta := v.Target.Sub(m.Velocity())
	return Output{Linear: delta.Scale(1 / m.ControlHorizon().Seconds())}, true
}
