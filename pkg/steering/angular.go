// pkg/steering/angular.go
package steering

import (
	"math"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// Align rotates the agent toward a target orientation along the shortest
// angular path: full angular rate beyond the slow angle, linearly scaled
// between the stop and slow angles. The commanded angular acceleration
// closes the gap between the scaled target rotation and the current rotation
// over one control horizon. It abstains when the angular difference is
// within the stop angle.
type Align struct {
	Target float64 // radians
}

// Steer implements Strategy.
func (a Align) Steer(m kinematics.Motor) (Output, bool) {
	difference := physics.AngleDiff(m.Orientation(), a.Target)
	size := math.Abs(difference)

	var magnitude float64
	switch {
	case size <= m.StopAngle():
		return Output{}, false
	case size < m.SlowAngle():
		magnitude = m.MaxAngularAcceleration() * size / m.SlowAngle()
	default:
		magnitude = m.MaxAngularAcceleration()
	}

	targetRotation := math.Copysign(magnitude, difference)
	deltaRotation := targetRotation - m.Rotation()
	return Output{Angular: deltaRotation / m.ControlHorizon().Seconds()}, true
}

// Face rotates the agent to look at a target point by delegating to Align
// with the bearing of the target. It abstains when the target coincides with
// the agent's position.
type Face struct {
	Target physics.Vector2D
}

// Steer implements Strategy.
func (f Face) Steer(m kinematics.Motor) (Output, bool) {
	direction := f.Target.Sub(m.Position())
	if direction.IsZero() {
		return Output{}, false
	}
	return Align{Target: direction.Angle()}.Steer(m)
}

// FaceForward rotates the agent to look along its current velocity, keeping
// a coasting agent pointed where it is going. It abstains at zero speed,
// where the travel direction is undefined.
type FaceForward struct{}

// Steer implements Strategy.
func (FaceForward) Steer(m kinematics.Motor) (Output, bool) {
	if kinematics.Speed(m) == 0 {
		return Output{}, false
	}
	return Align{Target: m.Velocity().Angle()}.Steer(m)
}
