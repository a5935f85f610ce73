// pkg/estimator/estimator_test.go
package estimator

import (
	"math"
	"testing"
	"time"
)

const estimateTolerance = 1e-3

func TestStatic_RunningMean(t *testing.T) {
	filter := NewStatic(1000)
	measurements := []float64{996, 994, 1021, 1000, 1002, 1010, 983, 971, 993, 1023}
	expected := []float64{
		996, 995, 1003.666667, 1002.75, 1002.6,
		1003.833333, 1000.857143, 997.125, 996.666667, 999.3,
	}

	for i, m := range measurements {
		got := filter.Update(m)
		if math.Abs(got-expected[i]) > estimateTolerance {
			t.Errorf("measurement %d (%v): estimate = %v, expected %v", i, m, got, expected[i])
		}
		if filter.Estimate() != got {
			t.Errorf("measurement %d: Estimate() = %v, Update returned %v", i, filter.Estimate(), got)
		}
	}
	if filter.Samples() != len(measurements) {
		t.Errorf("Samples() = %d, expected %d", filter.Samples(), len(measurements))
	}
}

func TestStatic_SeedReplacedByFirstMeasurement(t *testing.T) {
	filter := NewStatic(123456)
	if got := filter.Update(42); got != 42 {
		t.Errorf("first update = %v, expected the seed to be replaced with 42", got)
	}
}

func TestStatic_PredictEqualsEstimate(t *testing.T) {
	filter := NewStatic(500)
	filter.Update(510)
	filter.Update(490)
	if filter.Predict() != filter.Estimate() {
		t.Errorf("Predict() = %v, Estimate() = %v", filter.Predict(), filter.Estimate())
	}
}

func TestAlphaBeta_TrackSequence(t *testing.T) {
	filter := NewAlphaBeta(0.2, 0.1, 5*time.Second, 30000, 40)

	if pv, pr := filter.Predict(); pv != 30200 || pr != 40 {
		t.Fatalf("initial Predict() = (%v, %v), expected (30200, 40)", pv, pr)
	}

	steps := []struct {
		measurement  float64
		value        float64
		rate         float64
		predictValue float64
	}{
		{30171, 30194.2, 39.42, 30391.3},
		{30353, 30383.64, 38.654, 30576.91},
		{30756, 30612.728, 42.2358, 30823.907},
		{30799, 30818.9256, 41.73766, 31027.6139},
		{31018, 31025.691120, 41.545382, 31233.418030},
		{31278, 31242.334424, 42.437021, 31454.519531},
		{31276, 31418.815625, 38.866631, 31613.148779},
		{31379, 31566.319023, 34.183655, 31737.237299},
		{31748, 31739.389839, 34.398909, 31911.384385},
	}

	for i, step := range steps {
		filter.Update(step.measurement)
		value, rate := filter.Estimate()
		if math.Abs(value-step.value) > estimateTolerance {
			t.Errorf("step %d: value = %v, expected %v", i, value, step.value)
		}
		if math.Abs(rate-step.rate) > estimateTolerance {
			t.Errorf("step %d: rate = %v, expected %v", i, rate, step.rate)
		}
		predicted, predictedRate := filter.Predict()
		if math.Abs(predicted-step.predictValue) > estimateTolerance {
			t.Errorf("step %d: predicted value = %v, expected %v", i, predicted, step.predictValue)
		}
		if predictedRate != rate {
			t.Errorf("step %d: Predict() rate = %v, expected estimate rate %v", i, predictedRate, rate)
		}
	}
}

func TestAlphaBeta_PerfectMeasurementsKeepTrack(t *testing.T) {
	filter := NewAlphaBeta(0.5, 0.3, time.Second, 0, 10)

	// A target moving at exactly the seeded rate leaves zero residuals, so
	// the track must pass through every measurement unchanged.
	for i := 1; i <= 20; i++ {
		filter.Update(float64(i) * 10)
		value, rate := filter.Estimate()
		if math.Abs(value-float64(i)*10) > estimateTolerance {
			t.Fatalf("step %d: value = %v, expected %v", i, value, float64(i)*10)
		}
		if math.Abs(rate-10) > estimateTolerance {
			t.Fatalf("step %d: rate = %v, expected 10", i, rate)
		}
	}
}

func TestAlphaBeta_ConvergesToNewRate(t *testing.T) {
	filter := NewAlphaBeta(0.2, 0.1, time.Second, 0, 0)

	// Seeded stationary against a target moving at 5 units per interval;
	// the rate estimate must converge toward the true rate.
	for i := 1; i <= 200; i++ {
		filter.Update(float64(i) * 5)
	}
	if _, rate := filter.Estimate(); math.Abs(rate-5) > 0.05 {
		t.Errorf("rate = %v, expected convergence near 5", rate)
	}
}
