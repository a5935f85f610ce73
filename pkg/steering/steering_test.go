// pkg/steering/steering_test.go
package steering

import (
	"math"
	"time"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

const tolerance = 1e-9

// newTestMotor returns a motor at the origin with a one-second control
// horizon, so commanded accelerations equal the velocity deltas the
// formulas produce.
func newTestMotor() kinematics.MotorState {
	return kinematics.MotorState{
		Limits: kinematics.Limits{
			MaxLinearAccel:  10,
			MaxAngularAccel: 2,
			SlowRadius:      100,
			StopRadius:      25,
			SlowAngle:       math.Pi / 2,
			StopAngle:       0.01,
			ControlHorizon:  time.Second,
		},
	}
}

func vectorsClose(a, b physics.Vector2D) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}
