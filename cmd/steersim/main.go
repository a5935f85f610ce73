// cmd/steersim/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/halcyon-sim/go-steer/pkg/config"
	"github.com/halcyon-sim/go-steer/pkg/event"
	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/logging"
	"github.com/halcyon-sim/go-steer/pkg/physics"
	"github.com/halcyon-sim/go-steer/pkg/sim"
	"github.com/halcyon-sim/go-steer/pkg/steering"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	ticks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	flag.Parse()

	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg := loadConfig(ctx, logger, *configPath)

	bus := event.NewEventBus()
	subscribeLogging(ctx, bus, logger)

	world := sim.NewWorld(cfg, bus, logger)
	spawnScenario(world, cfg)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "shutdown signal received")
		cancel()
	}()

	world.Run(runCtx, *ticks)
	logger.Info(ctx, "simulation finished", "ticks", world.CurrentTick())
}

// loadConfig loads the config file, applies environment overrides, and
// validates the result, falling back to defaults when no file exists.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) *config.EngineConfig {
	var cfg *config.EngineConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}
	return cfg
}

// subscribeLogging reports steering milestones through the structured
// logger.
func subscribeLogging(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.AgentSpawned, func(e event.Event) {
		if agentEvent, ok := e.(*event.AgentEvent); ok {
			logger.Debug(ctx, "agent spawned", "agent_id", agentEvent.AgentID)
		}
	})
	bus.Subscribe(event.TargetIntercepted, func(e event.Event) {
		if intercept, ok := e.(*event.InterceptEvent); ok {
			logger.Info(ctx, "target intercepted",
				"agent_id", intercept.AgentID,
				"target_id", intercept.TargetID,
			)
		}
	})
}

// spawnScenario builds a pursue-versus-evade chase seasoned with wanderers.
func spawnScenario(world *sim.World, cfg *config.EngineConfig) {
	const (
		maxLinearAccel  = 60.0
		maxAngularAccel = 4.0
	)

	quarry := world.Spawn(kinematics.State{
		Pos: physics.Vector2D{X: cfg.Sim.WorldSize / 8},
		Vel: physics.Vector2D{Y: 20},
	}, maxLinearAccel, maxAngularAccel, steering.Blend{
		Members: []steering.Weighted{
			{Strategy: newWanderer(world, cfg), Weight: 1},
			{Strategy: steering.FaceForward{}, Weight: 0.5},
		},
	})

	hunter := world.Spawn(kinematics.State{
		Pos: physics.Vector2D{X: -cfg.Sim.WorldSize / 8},
	}, maxLinearAccel, maxAngularAccel, steering.Pursue{
		Target:        quarry,
		MaxPrediction: cfg.MaxPredictionDuration(),
	})
	hunter.Target = quarry

	world.Spawn(kinematics.State{
		Pos: physics.Vector2D{Y: cfg.Sim.WorldSize / 8},
	}, maxLinearAccel, maxAngularAccel, steering.Evade{
		Target:        hunter,
		MaxPrediction: cfg.MaxPredictionDuration(),
	})

	for i := 3; i < cfg.Sim.AgentCount; i++ {
		world.Spawn(kinematics.State{
			Pos: physics.Vector2D{Y: -cfg.Sim.WorldSize / 8 * float64(i)},
		}, maxLinearAccel, maxAngularAccel, newWanderer(world, cfg))
	}
}

func newWanderer(world *sim.World, cfg *config.EngineConfig) *steering.Wander {
	return steering.NewWander(
		cfg.Wander.Radius,
		cfg.Wander.Offset,
		physics.DegToRad(cfg.Wander.Rate),
		world.Rand(),
	)
}
