// pkg/steering/blend.go
package steering

import (
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
)

// Weighted pairs a strategy with its blend weight.
type Weighted struct {
	Strategy Strategy
	Weight   float64
}

// Blend composes several strategies into one command by weight-scaled
// component-wise summation, skipping members that abstain. Members run in
// caller-specified order; the sum does not depend on it.
//
// The result is neither renormalized by total weight nor clamped to the
// motor's limits; capping to what the agent can physically do is the
// actuation layer's call.
type Blend struct {
	Members []Weighted
}

// Steer implements Strategy. The blend abstains only when every member
// abstains.
func (b Blend) Steer(m kinematics.Motor) (Output, bool) {
	var sum Output
	contributed := false
	for _, member := range b.Members {
		out, ok := member.Strategy.Steer(m)
		if !ok {
			continue
		}
		sum.Linear = sum.Linear.Add(out.Linear.Scale(member.Weight))
		sum.Angular += out.Angular * member.Weight
		contributed = true
	}
	return sum, contributed
}
