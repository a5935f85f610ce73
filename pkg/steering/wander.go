// pkg/steering/wander.go
package steering

import (
	"math/rand/v2"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// Wander produces meandering motion by steering toward a point on a circle
// projected ahead of the agent. The point's bearing on the circle is an
// internal heading offset advanced by a bounded random increment each tick,
// so a Wander value must be kept across ticks, not rebuilt.
//
// Wander never abstains: it takes its linear command from Seek and its
// angular command from Face against the same wander target, zero-filling
// either component when the delegate abstains.
type Wander struct {
	// Radius of the wander circle.
	Radius float64
	// Offset is how far ahead of the agent the circle's center sits.
	Offset float64
	// Rate bounds the heading offset drift, in radians per second.
	Rate float64

	rng         *rand.Rand
	orientation float64 // persisted heading offset on the circle
}

// NewWander creates a wander strategy with the given circle geometry and
// drift rate. The random source drives the per-tick heading perturbation
// and should be owned by the agent.
func NewWander(radius, offset, rate float64, rng *rand.Rand) *Wander {
	return &Wander{
		Radius: radius,
		Offset: offset,
		Rate:   rate,
		rng:    rng,
	}
}

// Orientation returns the current heading offset on the wander circle.
func (w *Wander) Orientation() float64 {
	return w.orientation
}

// Steer implements Strategy.
func (w *Wander) Steer(m kinematics.Motor) (Output, bool) {
	jitter := w.rng.Float64()*2 - 1 // uniform in [-1, 1)
	w.orientation += jitter * w.Rate * m.ControlHorizon().Seconds()

	center := m.Position().Add(kinematics.Forward(m).Scale(w.Offset))
	target := center.Add(physics.FromAngle(m.Orientation()+w.orientation, w.Radius))

	var out Output
	if seek, ok := (Seek{Target: target}).Steer(m); ok {
		out.Linear = seek.Linear
	}
	if face, ok := (Face{Target: target}).Steer(m); ok {
		out.Angular = face.Angular
	}
	return out, true
}
