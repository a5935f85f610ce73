// pkg/sim/system.go
package sim

import (
	"github.com/EngoEngine/ecs"

	"github.com/halcyon-sim/go-steer/pkg/event"
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
	"github.com/halcyon-sim/go-steer/pkg/steering"
)

// SteeringSystem advances every registered agent once per tick: it builds
// the agent's motor view, runs its strategy, and integrates the commanded
// accelerations. An abstaining strategy leaves the previous command in
// force.
type SteeringSystem struct {
	agents    []*Agent
	bus       *event.Bus
	worldSize float64
}

// NewSteeringSystem creates a steering system publishing to the given bus.
// Positions are wrapped toroidally inside a worldSize x worldSize square
// centered on the origin; worldSize <= 0 disables wrapping.
func NewSteeringSystem(bus *event.Bus, worldSize float64) *SteeringSystem {
	return &SteeringSystem{
		bus:       bus,
		worldSize: worldSize,
	}
}

// Add registers an agent with the system.
func (s *SteeringSystem) Add(agent *Agent) {
	s.agents = append(s.agents, agent)
	if s.bus != nil {
		s.bus.Publish(event.NewAgentEvent(event.AgentSpawned, s, agent.ID(), ""))
	}
}

// Remove satisfies the ecs.System interface.
func (s *SteeringSystem) Remove(basic ecs.BasicEntity) {
	for i, agent := range s.agents {
		if agent.ID() == basic.ID() {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return
		}
	}
}

// Update satisfies the ecs.System interface, advancing all agents by dt
// seconds.
func (s *SteeringSystem) Update(dt float32) {
	step := float64(dt)
	for _, agent := range s.agents {
		s.updateAgent(agent, step)
	}
}

// Agents returns the registered agents in registration order.
func (s *SteeringSystem) Agents() []*Agent {
	return s.agents
}

func (s *SteeringSystem) updateAgent(agent *Agent, dt float64) {
	motor := agent.Motor()
	if out, ok := agent.Strategy.Steer(motor); ok {
		agent.lastCommand = out
	}

	integrate(&agent.Kinetic, agent.lastCommand, dt)
	if s.worldSize > 0 {
		wrapPosition(&agent.Kinetic.Pos, s.worldSize)
	}

	s.checkIntercept(agent)
}

// checkIntercept publishes a one-shot event when a tracking agent first
// closes within its stop radius of its target.
func (s *SteeringSystem) checkIntercept(agent *Agent) {
	if agent.Target == nil || agent.intercepted || s.bus == nil {
		return
	}
	distance := agent.Kinetic.Pos.Distance(agent.Target.Kinetic.Pos)
	if distance <= agent.Limits.StopRadius {
		agent.intercepted = true
		s.bus.Publish(event.NewInterceptEvent(s, agent.ID(), agent.Target.ID()))
	}
}

// integrate applies a steering command with semi-implicit Euler: velocity
// first, then position from the updated velocity.
func integrate(k *kinematics.State, cmd steering.Output, dt float64) {
	k.Vel = k.Vel.Add(cmd.Linear.Scale(dt))
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
	k.AngularVel += cmd.Angular * dt
	k.Heading = physics.NormalizeAngle(k.Heading + k.AngularVel*dt)
}

// wrapPosition wraps a coordinate into the world square centered on the
// origin.
func wrapPosition(pos *physics.Vector2D, worldSize float64) {
	half := worldSize / 2

	if pos.X > half {
		pos.X -= worldSize
	} else if pos.X < -half {
		pos.X += worldSize
	}

	if pos.Y > half {
		pos.Y -= worldSize
	} else if pos.Y < -half {
		pos.Y += worldSize
	}
}
