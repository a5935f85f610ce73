// pkg/steering/pursuit.go
package steering

import (
	"time"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
)

// predictionHorizon picks how far ahead to extrapolate a moving target.
// When the agent closes too slowly relative to the separation, the horizon
// is capped at maxPrediction; otherwise it is the straight-line travel time
// at the agent's current speed.
func predictionHorizon(m kinematics.Motor, target kinematics.Kinematic, maxPrediction time.Duration) time.Duration {
	distance := target.Position().Sub(m.Position()).Length()
	speed := kinematics.Speed(m)
	if speed <= distance/maxPrediction.Seconds() {
		return maxPrediction
	}
	return time.Duration(distance / speed * float64(time.Second))
}

// Pursue chases a moving target by seeking its predicted future position.
// Abstention follows Seek's rule.
type Pursue struct {
	Target        kinematics.Kinematic
	MaxPrediction time.Duration
}

// Steer implements Strategy.
func (p Pursue) Steer(m kinematics.Motor) (Output, bool) {
	prediction := predictionHorizon(m, p.Target, p.MaxPrediction)
	return Seek{Target: kinematics.At(p.Target, prediction)}.Steer(m)
}

// Evade flees from a moving target's predicted future position. Abstention
// follows Flee's rule.
type Evade struct {
	Target        kinematics.Kinematic
	MaxPrediction time.Duration
}

// Steer implements Strategy.
func (e Evade) Steer(m kinematics.Motor) (Output, bool) {
	prediction := predictionHorizon(m, e.Target, e.MaxPrediction)
	return Flee{Target: kinematics.At(e.Target, prediction)}.Steer(m)
}
