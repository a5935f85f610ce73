// pkg/sim/world.go

// Package sim is a tick-driven harness that exercises the steering engine:
// agents carrying strategies are advanced by an entity-system world at a
// fixed tick rate. The harness exists to drive the engine end to end; it is
// not a physics product in its own right.
package sim

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/halcyon-sim/go-steer/pkg/config"
	"github.com/halcyon-sim/go-steer/pkg/event"
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/logging"
	"github.com/halcyon-sim/go-steer/pkg/steering"
)

// World owns the entity-system world, the steering system, and the shared
// random source for a simulation run.
type World struct {
	ecsWorld ecs.World
	system   *SteeringSystem
	bus      *event.Bus
	logger   *logging.Logger
	config   *config.EngineConfig
	rng      *rand.Rand

	currentTick uint64
}

// NewWorld creates a simulation world from a validated configuration.
func NewWorld(cfg *config.EngineConfig, bus *event.Bus, logger *logging.Logger) *World {
	w := &World{
		system: NewSteeringSystem(bus, cfg.Sim.WorldSize),
		bus:    bus,
		logger: logger,
		config: cfg,
		rng:    rand.New(rand.NewPCG(cfg.Sim.Seed, cfg.Sim.Seed^0x9e3779b97f4a7c15)),
	}
	w.ecsWorld.AddSystem(w.system)
	return w
}

// Rand returns the world's random source, for seeding per-agent wander
// strategies deterministically.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Spawn adds an agent with the configured braking thresholds and the given
// acceleration caps and strategy.
func (w *World) Spawn(state kinematics.State, maxLinearAccel, maxAngularAccel float64, strategy steering.Strategy) *Agent {
	agent := NewAgent(state, w.config.MotorLimits(maxLinearAccel, maxAngularAccel), strategy)
	w.system.Add(agent)
	return agent
}

// Agents returns the spawned agents in spawn order.
func (w *World) Agents() []*Agent {
	return w.system.Agents()
}

// CurrentTick returns how many ticks have been stepped.
func (w *World) CurrentTick() uint64 {
	return w.currentTick
}

// Step advances the world by exactly one tick.
func (w *World) Step() {
	w.ecsWorld.Update(float32(w.config.TickLength().Seconds()))
	w.currentTick++
}

// Run steps the world at the configured tick rate until the context is
// canceled or, when ticks > 0, that many ticks have elapsed.
func (w *World) Run(ctx context.Context, ticks uint64) {
	if w.bus != nil {
		w.bus.Publish(&event.BaseEvent{EventType: event.SimulationStarted, Source: w})
		defer w.bus.Publish(&event.BaseEvent{EventType: event.SimulationStopped, Source: w})
	}
	if w.logger != nil {
		w.logger.Info(ctx, "simulation starting",
			"tick_rate", w.config.Sim.TickRate,
			"agents", len(w.system.Agents()),
		)
	}

	ticker := time.NewTicker(w.config.TickLength())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Step()
			if ticks > 0 && w.currentTick >= ticks {
				return
			}
		}
	}
}
