package semantic_test

import (
	"testing"

	"go.viam.com/test"

	"github.com/sightkit/detect/semantic"
)

func TestLabelFromString(t *testing.T) {
	test.That(t, semantic.LabelFromString("car"), test.ShouldEqual, semantic.LabelCar)
	test.That(t, semantic.LabelFromString("CAR"), test.ShouldEqual, semantic.LabelCar)
	test.That(t, semantic.LabelFromString("Pedestrian"), test.ShouldEqual, semantic.LabelPedestrian)
	test.That(t, semantic.LabelFromString("spaceship"), test.ShouldEqual, semantic.LabelUnknown)
	test.That(t, semantic.LabelFromString(""), test.ShouldEqual, semantic.LabelUnknown)
}

func TestLabelFromClassID(t *testing.T) {
	test.That(t, semantic.LabelFromClassID(0), test.ShouldEqual, semantic.LabelPedestrian)
	test.That(t, semantic.LabelFromClassID(1), test.ShouldEqual, semantic.LabelBicycle)
	test.That(t, semantic.LabelFromClassID(2), test.ShouldEqual, semantic.LabelCar)
	test.That(t, semantic.LabelFromClassID(3), test.ShouldEqual, semantic.LabelMotorcycle)
	test.That(t, semantic.LabelFromClassID(4), test.ShouldEqual, semantic.LabelBus)
	test.That(t, semantic.LabelFromClassID(5), test.ShouldEqual, semantic.LabelTruck)
	test.That(t, semantic.LabelFromClassID(80), test.ShouldEqual, semantic.LabelUnknown)
	test.That(t, semantic.LabelFromClassID(-1), test.ShouldEqual, semantic.LabelUnknown)
}

func TestLabelString(t *testing.T) {
	test.That(t, semantic.LabelBus.String(), test.ShouldEqual, "bus")
}
