// pkg/kinematics/kinematics.go

// Package kinematics defines the read-only kinematic view of a simulated
// agent and the motor capability that extends it with actuation limits.
// Views are constructed fresh each tick from host-supplied readouts and are
// never cached across ticks.
package kinematics

import (
	"time"

	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// Kinematic is a read-only view of an agent's instantaneous motion state.
// Implementations must be side-effect free.
type Kinematic interface {
	// Position returns the agent's position in world coordinates.
	Position() physics.Vector2D
	// Velocity returns the agent's velocity in world units per second.
	Velocity() physics.Vector2D
	// Orientation returns the agent's heading in radians.
	Orientation() float64
	// Rotation returns the agent's angular rate in radians per second.
	Rotation() float64
}

// Forward returns the unit vector pointing along the agent's orientation.
func Forward(k Kinematic) physics.Vector2D {
	return physics.FromAngle(k.Orientation(), 1)
}

// Speed returns the magnitude of the agent's velocity.
func Speed(k Kinematic) float64 {
	return k.Velocity().Length()
}

// At linearly extrapolates the agent's position t into the future, assuming
// constant velocity. Valid only over short horizons where the agent's own
// acceleration is negligible.
func At(k Kinematic, t time.Duration) physics.Vector2D {
	return k.Position().Add(k.Velocity().Scale(t.Seconds()))
}

// LeadTime solves for the smallest positive time at which a projectile
// launched now from cannon at projectileSpeed intersects the agent's
// linearly-extrapolated position. It returns false when no intercept exists
// within the constant-velocity model (the agent outruns the projectile).
func LeadTime(k Kinematic, cannon physics.Vector2D, projectileSpeed float64) (time.Duration, bool) {
	offset := k.Position().Sub(cannon)
	a := k.Velocity().LengthSquared() - projectileSpeed*projectileSpeed
	b := 2 * k.Velocity().Dot(offset)
	c := offset.LengthSquared()

	t, ok := physics.SmallestPositiveRoot(a, b, c)
	if !ok {
		return 0, false
	}
	return time.Duration(t * float64(time.Second)), true
}

// LeadPosition returns the intercept point corresponding to LeadTime.
// Callers with no solution typically fall back to the agent's current
// position.
func LeadPosition(k Kinematic, cannon physics.Vector2D, projectileSpeed float64) (physics.Vector2D, bool) {
	t, ok := LeadTime(k, cannon, projectileSpeed)
	if !ok {
		return physics.Vector2D{}, false
	}
	return At(k, t), true
}

// State is a plain-value Kinematic populated from host readouts.
type State struct {
	Pos        physics.Vector2D
	Vel        physics.Vector2D
	Heading    float64 // radians
	AngularVel float64 // radians per second
}

// Position returns the state's position.
func (s State) Position() physics.Vector2D { return s.Pos }

// Velocity returns the state's velocity.
func (s State) Velocity() physics.Vector2D { return s.Vel }

// Orientation returns the state's heading in radians.
func (s State) Orientation() float64 { return s.Heading }

// Rotation returns the state's angular rate in radians per second.
func (s State) Rotation() float64 { return s.AngularVel }
