// pkg/estimator/estimator.go

// Package estimator provides recursive filters for smoothing noisy scalar
// measurements before they feed a strategy's target computation. Filters are
// constructed once per tracked signal and mutated on every measurement;
// nothing here is safe for concurrent use, matching the engine's
// single-owner tick model.
package estimator

import "time"

// Static estimates a constant quantity with a converging gain of 1/n after
// n measurements, making the estimate the exact running mean of everything
// observed since construction. The shrinking gain is right for a constant
// and increasingly unresponsive to a changing one; track moving quantities
// with AlphaBeta instead.
type Static struct {
	count    int
	estimate float64
}

// NewStatic creates a static filter seeded with an initial estimate. The
// seed only matters until the first update, which replaces it outright
// (gain 1/1).
func NewStatic(initial float64) *Static {
	return &Static{estimate: initial}
}

// Update folds a new measurement into the running mean and returns the
// updated estimate.
func (s *Static) Update(measurement float64) float64 {
	s.count++
	s.estimate += (measurement - s.estimate) / float64(s.count)
	return s.estimate
}

// Estimate returns the current estimate.
func (s *Static) Estimate() float64 {
	return s.estimate
}

// Predict returns the forecast for the next measurement, which under the
// constant-value model is the current estimate.
func (s *Static) Predict() float64 {
	return s.estimate
}

// Samples returns how many measurements have been folded in.
func (s *Static) Samples() int {
	return s.count
}

// AlphaBeta is a fixed-gain value/rate filter (an alpha-beta tracker) for a
// quantity changing at a roughly constant rate, sampled at a fixed interval.
// Each update predicts one interval ahead, then corrects the value estimate
// by alpha times the residual and the rate estimate by beta times the
// residual per interval.
type AlphaBeta struct {
	alpha    float64
	beta     float64
	interval time.Duration
	value    float64
	rate     float64
}

// NewAlphaBeta creates an alpha-beta filter. alpha and beta are the fixed
// correction gains, in (0, 1); interval is the fixed time between
// measurements; value and rate seed the track.
func NewAlphaBeta(alpha, beta float64, interval time.Duration, value, rate float64) *AlphaBeta {
	return &AlphaBeta{
		alpha:    alpha,
		beta:     beta,
		interval: interval,
		value:    value,
		rate:     rate,
	}
}

// Update folds in a measurement taken one interval after the previous one.
func (f *AlphaBeta) Update(measurement float64) {
	predictedValue, predictedRate := f.Predict()
	residual := measurement - predictedValue
	f.value = predictedValue + f.alpha*residual
	f.rate = predictedRate + f.beta*residual/f.interval.Seconds()
}

// Estimate returns the current value and rate estimates.
func (f *AlphaBeta) Estimate() (value, rate float64) {
	return f.value, f.rate
}

// Predict returns the one-interval-ahead forecast without mutating the
// filter, for callers needing a best guess between measurements.
func (f *AlphaBeta) Predict() (value, rate float64) {
	return f.value + f.rate*f.interval.Seconds(), f.rate
}
