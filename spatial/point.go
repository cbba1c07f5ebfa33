package spatial

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is an immutable point in 2D space.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Coordinates returns the point as a plain coordinate pair.
func (p Point) Coordinates() (float64, float64) {
	return p.X, p.Y
}

// R2 converts the point to an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}
