// pkg/sim/agent.go
package sim

import (
	"github.com/EngoEngine/ecs"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
	"github.com/halcyon-sim/go-steer/pkg/steering"
)

// Agent is a simulated ship driven by a steering strategy. Its kinetic
// state is integrated by the SteeringSystem each tick; the strategy and the
// random source behind it are exclusively owned by this agent.
type Agent struct {
	ecs.BasicEntity

	Kinetic  kinematics.State
	Limits   kinematics.Limits
	Strategy steering.Strategy

	// Target, when set, lets the system report interception against the
	// tracked agent.
	Target *Agent

	// lastCommand is the command held across abstaining ticks. A strategy
	// that abstains contributes nothing new; the previous actuation stands.
	lastCommand steering.Output
	intercepted bool
}

// NewAgent creates an agent with a fresh entity identity.
func NewAgent(state kinematics.State, limits kinematics.Limits, strategy steering.Strategy) *Agent {
	return &Agent{
		BasicEntity: ecs.NewBasic(),
		Kinetic:     state,
		Limits:      limits,
		Strategy:    strategy,
	}
}

// Motor returns the per-tick motor view of the agent's current state.
func (a *Agent) Motor() kinematics.MotorState {
	return kinematics.MotorState{State: a.Kinetic, Limits: a.Limits}
}

// Position implements kinematics.Kinematic, so a live agent can serve as a
// pursuit or evasion target.
func (a *Agent) Position() physics.Vector2D { return a.Kinetic.Pos }

// Velocity implements kinematics.Kinematic.
func (a *Agent) Velocity() physics.Vector2D { return a.Kinetic.Vel }

// Orientation implements kinematics.Kinematic.
func (a *Agent) Orientation() float64 { return a.Kinetic.Heading }

// Rotation implements kinematics.Kinematic.
func (a *Agent) Rotation() float64 { return a.Kinetic.AngularVel }

var _ kinematics.Kinematic = (*Agent)(nil)

// LastCommand returns the most recent non-abstained steering command.
func (a *Agent) LastCommand() steering.Output {
	return a.lastCommand
}
