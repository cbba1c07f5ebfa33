package spatial

import "math"

// Velocity is an immutable 2D displacement rate.
type Velocity struct {
	Dx float64
	Dy float64
}

// Speed returns the magnitude of the velocity vector.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.Dx, v.Dy)
}

// Angle returns the direction of the velocity vector in radians, in the
// range (-pi, pi].
func (v Velocity) Angle() float64 {
	return math.Atan2(v.Dy, v.Dx)
}
