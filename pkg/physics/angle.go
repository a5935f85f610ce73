// pkg/physics/angle.go
package physics

import "math"

// NormalizeAngle wraps an angle into the half-open interval (-π, π].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	switch {
	case angle > math.Pi:
		angle -= 2 * math.Pi
	case angle <= -math.Pi:
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff returns the shortest signed rotation from angle a to angle b,
// normalized into (-π, π]. A positive result means b lies counterclockwise
// of a.
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
