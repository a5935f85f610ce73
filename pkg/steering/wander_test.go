// pkg/steering/wander_test.go
package steering

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestWander(seed uint64) *Wander {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewWander(40, 80, math.Pi/4, rng)
}

func TestWander_NeverAbstains(t *testing.T) {
	wander := newTestWander(7)
	motor := newTestMotor()

	for i := 0; i < 100; i++ {
		out, ok := wander.Steer(motor)
		if !ok {
			t.Fatalf("Wander abstained on step %d", i)
		}
		if out.Linear.IsZero() {
			t.Fatalf("Wander produced zero linear output on step %d", i)
		}
	}
}

func TestWander_LinearSaturates(t *testing.T) {
	wander := newTestWander(11)
	motor := newTestMotor()

	// The circle center sits Offset ahead, so the target is always at
	// least Offset-Radius away and Seek commands full acceleration.
	for i := 0; i < 50; i++ {
		out, _ := wander.Steer(motor)
		if math.Abs(out.Linear.Length()-motor.MaxLinearAcceleration()) > tolerance {
			t.Fatalf("step %d: linear magnitude = %v, expected %v",
				i, out.Linear.Length(), motor.MaxLinearAcceleration())
		}
	}
}

func TestWander_DeterministicForSeed(t *testing.T) {
	first := newTestWander(42)
	second := newTestWander(42)
	motor := newTestMotor()

	for i := 0; i < 20; i++ {
		a, _ := first.Steer(motor)
		b, _ := second.Steer(motor)
		if !vectorsClose(a.Linear, b.Linear) || math.Abs(a.Angular-b.Angular) > tolerance {
			t.Fatalf("step %d: outputs diverged: %v vs %v", i, a, b)
		}
	}
}

func TestWander_OrientationDriftBounded(t *testing.T) {
	wander := newTestWander(3)
	motor := newTestMotor()
	rate := wander.Rate
	horizon := motor.ControlHorizon().Seconds()

	previous := wander.Orientation()
	for i := 0; i < 200; i++ {
		wander.Steer(motor)
		drift := math.Abs(wander.Orientation() - previous)
		if drift > rate*horizon+tolerance {
			t.Fatalf("step %d: orientation drifted %v, limit %v", i, drift, rate*horizon)
		}
		previous = wander.Orientation()
	}
}
