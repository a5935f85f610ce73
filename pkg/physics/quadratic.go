// pkg/physics/quadratic.go
package physics

import "math"

// epsQuadratic is the threshold below which the leading coefficient is
// treated as zero and the equation degenerates to linear.
const epsQuadratic = 1e-12

// SmallestPositiveRoot solves a*t² + b*t + c = 0 for the smallest strictly
// positive root. It returns false when the equation has no real solution or
// when every real root is non-positive.
//
// The degenerate case |a| ≈ 0 (linear equation b*t + c = 0) is handled
// without dividing by the vanishing leading coefficient.
func SmallestPositiveRoot(a, b, c float64) (float64, bool) {
	if math.Abs(a) < epsQuadratic {
		if math.Abs(b) < epsQuadratic {
			return 0, false
		}
		t := -c / b
		if t <= 0 {
			return 0, false
		}
		return t, true
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	switch {
	case t1 > 0:
		return t1, true
	case t2 > 0:
		return t2, true
	default:
		return 0, false
	}
}
