// pkg/config/config.go

// Package config loads, validates, and saves the steering engine's tuning
// configuration. Configuration comes from a JSON file in the documented
// shape, with STEER_* environment variables taking precedence over file
// values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/halcyon-sim/go-steer/pkg/kinematics"
	"github.com/halcyon-sim/go-steer/pkg/physics"
)

// EngineConfig is the root configuration for the steering engine and its
// simulation harness.
type EngineConfig struct {
	Motor   MotorConfig   `json:"motor"`
	Wander  WanderConfig  `json:"wander"`
	Pursuit PursuitConfig `json:"pursuit"`
	Filter  FilterConfig  `json:"filter"`
	Sim     SimConfig     `json:"sim"`
	Bridge  BridgeConfig  `json:"bridge"`
}

// MotorConfig holds the braking thresholds shared by every agent's motor.
// Angles are in degrees for config readability; MotorLimits converts.
type MotorConfig struct {
	SlowRadius float64 `json:"slowRadius"`
	StopRadius float64 `json:"stopRadius"`
	SlowAngle  float64 `json:"slowAngle"` // degrees
	StopAngle  float64 `json:"stopAngle"` // degrees
}

// WanderConfig holds the wander circle geometry and drift rate.
type WanderConfig struct {
	Radius float64 `json:"radius"`
	Offset float64 `json:"offset"`
	Rate   float64 `json:"rate"` // degrees per second
}

// PursuitConfig caps how far ahead Pursue and Evade extrapolate a target.
type PursuitConfig struct {
	MaxPrediction float64 `json:"maxPrediction"` // seconds
}

// FilterConfig holds the alpha-beta filter gains and sample interval.
type FilterConfig struct {
	Alpha    float64 `json:"alpha"`
	Beta     float64 `json:"beta"`
	Interval float64 `json:"interval"` // seconds
}

// SimConfig configures the tick-driven simulation harness.
type SimConfig struct {
	WorldSize  float64 `json:"worldSize"`
	TickRate   int     `json:"tickRate"` // ticks per second
	AgentCount int     `json:"agentCount"`
	Seed       uint64  `json:"seed"`
}

// BridgeConfig configures the remote host actuation bridge and its circuit
// breaker.
type BridgeConfig struct {
	Addr                string  `json:"addr"`
	ReadTimeout         float64 `json:"readTimeout"`  // seconds
	WriteTimeout        float64 `json:"writeTimeout"` // seconds
	BreakerMaxRequests  uint32  `json:"breakerMaxRequests"`
	BreakerInterval     float64 `json:"breakerInterval"` // seconds
	BreakerTimeout      float64 `json:"breakerTimeout"`  // seconds
	BreakerMaxConsFails uint32  `json:"breakerMaxConsecutiveFails"`
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Motor: MotorConfig{
			SlowRadius: 100,
			StopRadius: 25,
			SlowAngle:  90,
			StopAngle:  0.5,
		},
		Wander: WanderConfig{
			Radius: 40,
			Offset: 80,
			Rate:   120,
		},
		Pursuit: PursuitConfig{
			MaxPrediction: 1.5,
		},
		Filter: FilterConfig{
			Alpha:    0.2,
			Beta:     0.1,
			Interval: 5,
		},
		Sim: SimConfig{
			WorldSize:  10000,
			TickRate:   60,
			AgentCount: 4,
			Seed:       1,
		},
		Bridge: BridgeConfig{
			Addr:                "localhost:4566",
			ReadTimeout:         30,
			WriteTimeout:        30,
			BreakerMaxRequests:  3,
			BreakerInterval:     60,
			BreakerTimeout:      30,
			BreakerMaxConsFails: 5,
		},
	}
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config EngineConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *EngineConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration against the engine's invariants and
// returns the first violation found.
func (c *EngineConfig) Validate() error {
	if c.Motor.StopRadius < 0 {
		return fmt.Errorf("motor.stopRadius must be >= 0, got %f", c.Motor.StopRadius)
	}
	if c.Motor.SlowRadius <= c.Motor.StopRadius {
		return fmt.Errorf("motor.slowRadius (%f) must exceed motor.stopRadius (%f)",
			c.Motor.SlowRadius, c.Motor.StopRadius)
	}
	if c.Motor.StopAngle < 0 {
		return fmt.Errorf("motor.stopAngle must be >= 0, got %f", c.Motor.StopAngle)
	}
	if c.Motor.SlowAngle <= c.Motor.StopAngle {
		return fmt.Errorf("motor.slowAngle (%f) must exceed motor.stopAngle (%f)",
			c.Motor.SlowAngle, c.Motor.StopAngle)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("sim.tickRate must be > 0, got %d", c.Sim.TickRate)
	}
	if c.Sim.WorldSize <= 0 {
		return fmt.Errorf("sim.worldSize must be > 0, got %f", c.Sim.WorldSize)
	}
	if c.Sim.AgentCount < 0 {
		return fmt.Errorf("sim.agentCount must be >= 0, got %d", c.Sim.AgentCount)
	}
	if c.Filter.Alpha <= 0 || c.Filter.Alpha >= 1 {
		return fmt.Errorf("filter.alpha must be in (0, 1), got %f", c.Filter.Alpha)
	}
	if c.Filter.Beta <= 0 || c.Filter.Beta >= 1 {
		return fmt.Errorf("filter.beta must be in (0, 1), got %f", c.Filter.Beta)
	}
	if c.Filter.Interval <= 0 {
		return fmt.Errorf("filter.interval must be > 0, got %f", c.Filter.Interval)
	}
	if c.Pursuit.MaxPrediction <= 0 {
		return fmt.Errorf("pursuit.maxPrediction must be > 0, got %f", c.Pursuit.MaxPrediction)
	}
	if c.Wander.Radius <= 0 {
		return fmt.Errorf("wander.radius must be > 0, got %f", c.Wander.Radius)
	}
	return nil
}

// TickLength returns the control horizon implied by the configured tick
// rate.
func (c *EngineConfig) TickLength() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}

// MotorLimits builds the kinematics limits for an agent with the given
// acceleration caps, converting the configured angles to radians.
func (c *EngineConfig) MotorLimits(maxLinearAccel, maxAngularAccel float64) kinematics.Limits {
	return kinematics.Limits{
		MaxLinearAccel:  maxLinearAccel,
		MaxAngularAccel: maxAngularAccel,
		SlowRadius:      c.Motor.SlowRadius,
		StopRadius:      c.Motor.StopRadius,
		SlowAngle:       physics.DegToRad(c.Motor.SlowAngle),
		StopAngle:       physics.DegToRad(c.Motor.StopAngle),
		ControlHorizon:  c.TickLength(),
	}
}

// MaxPredictionDuration returns the pursuit prediction cap as a duration.
func (c *EngineConfig) MaxPredictionDuration() time.Duration {
	return time.Duration(c.Pursuit.MaxPrediction * float64(time.Second))
}

// FilterInterval returns the alpha-beta sample interval as a duration.
func (c *EngineConfig) FilterInterval() time.Duration {
	return time.Duration(c.Filter.Interval * float64(time.Second))
}

// ApplyEnvironmentOverrides applies STEER_* environment variables on top of
// the loaded configuration. Unset variables leave file values untouched;
// malformed values are reported as errors rather than silently ignored.
func ApplyEnvironmentOverrides(config *EngineConfig) error {
	overrides := []struct {
		key   string
		apply func(string) error
	}{
		{"STEER_SLOW_RADIUS", floatSetter(&config.Motor.SlowRadius)},
		{"STEER_STOP_RADIUS", floatSetter(&config.Motor.StopRadius)},
		{"STEER_SLOW_ANGLE", floatSetter(&config.Motor.SlowAngle)},
		{"STEER_STOP_ANGLE", floatSetter(&config.Motor.StopAngle)},
		{"STEER_WANDER_RADIUS", floatSetter(&config.Wander.Radius)},
		{"STEER_WANDER_OFFSET", floatSetter(&config.Wander.Offset)},
		{"STEER_WANDER_RATE", floatSetter(&config.Wander.Rate)},
		{"STEER_MAX_PREDICTION", floatSetter(&config.Pursuit.MaxPrediction)},
		{"STEER_FILTER_ALPHA", floatSetter(&config.Filter.Alpha)},
		{"STEER_FILTER_BETA", floatSetter(&config.Filter.Beta)},
		{"STEER_FILTER_INTERVAL", floatSetter(&config.Filter.Interval)},
		{"STEER_WORLD_SIZE", floatSetter(&config.Sim.WorldSize)},
		{"STEER_TICK_RATE", intSetter(&config.Sim.TickRate)},
		{"STEER_AGENT_COUNT", intSetter(&config.Sim.AgentCount)},
		{"STEER_SEED", uint64Setter(&config.Sim.Seed)},
		{"STEER_BRIDGE_ADDR", stringSetter(&config.Bridge.Addr)},
	}

	for _, o := range overrides {
		value, ok := os.LookupEnv(o.key)
		if !ok {
			continue
		}
		if err := o.apply(value); err != nil {
			return fmt.Errorf("invalid %s: %w", o.key, err)
		}
	}
	return nil
}

func floatSetter(target *float64) func(string) error {
	return func(raw string) error {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func intSetter(target *int) func(string) error {
	return func(raw string) error {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func uint64Setter(target *uint64) func(string) error {
	return func(raw string) error {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func stringSetter(target *string) func(string) error {
	return func(raw string) error {
		*target = raw
		return nil
	}
}
