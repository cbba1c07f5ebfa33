package spatial_test

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/sightkit/detect/spatial"
)

func TestVelocitySpeed(t *testing.T) {
	test.That(t, spatial.Velocity{Dx: 3, Dy: 4}.Speed(), test.ShouldEqual, 5.0)
	test.That(t, spatial.Velocity{Dx: -3, Dy: -4}.Speed(), test.ShouldEqual, 5.0)
	test.That(t, spatial.Velocity{}.Speed(), test.ShouldEqual, 0.0)
}

func TestVelocityAngle(t *testing.T) {
	test.That(t, spatial.Velocity{Dx: 1, Dy: 0}.Angle(), test.ShouldEqual, 0.0)
	test.That(t, spatial.Velocity{Dx: 0, Dy: 1}.Angle(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, spatial.Velocity{Dx: 1, Dy: 1}.Angle(), test.ShouldAlmostEqual, math.Pi/4)
	test.That(t, spatial.Velocity{Dx: 0, Dy: -1}.Angle(), test.ShouldAlmostEqual, -math.Pi/2)
	// straight backwards is pi, not -pi
	test.That(t, spatial.Velocity{Dx: -1, Dy: 0}.Angle(), test.ShouldEqual, math.Pi)
}
