// pkg/bridge/breaker.go
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/halcyon-sim/go-steer/pkg/config"
	"github.com/halcyon-sim/go-steer/pkg/logging"
)

// Breaker wraps host operations with circuit breaker functionality so that
// repeated send failures isolate the host instead of stalling the per-tick
// control loop.
type Breaker struct {
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// Operation is a host operation guarded by the breaker.
type Operation func() error

// NewBreaker creates a breaker with thresholds from the bridge
// configuration.
func NewBreaker(cfg config.BridgeConfig, logger *logging.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:        "steer-host-bridge",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    time.Duration(cfg.BreakerInterval * float64(time.Second)),
		Timeout:     time.Duration(cfg.BreakerTimeout * float64(time.Second)),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxConsFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "circuit breaker state changed",
				"name", name,
				"from", from,
				"to", to,
			)
		},
	}

	return &Breaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Execute runs a host operation through the circuit breaker. When the
// circuit is open the operation fails immediately.
func (b *Breaker) Execute(ctx context.Context, operation Operation) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, operation()
	})
	if err != nil {
		b.logger.LogWithContext(ctx, slog.LevelError, "circuit breaker execution failed",
			"error", err,
			"state", b.breaker.State(),
		)
		return fmt.Errorf("circuit breaker: %w", err)
	}
	return nil
}

// State exposes the underlying breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.breaker.State()
}
