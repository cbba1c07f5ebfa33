package objectdetection_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"go.viam.com/test"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/vision/objectdetection"
)

func TestOverlay(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	dets := []objectdetection.Detection{
		makeDetection(t, 20, 20, 60, 60, semantic.LabelCar, 0.9),
	}

	ovImg, err := objectdetection.Overlay(img, dets)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ovImg.Bounds(), test.ShouldResemble, img.Bounds())

	// the box edge is drawn over the white background
	r, g, b, _ := ovImg.At(40, 20).RGBA()
	test.That(t, r, test.ShouldEqual, uint32(0xffff))
	test.That(t, g, test.ShouldNotEqual, uint32(0xffff))
	test.That(t, b, test.ShouldNotEqual, uint32(0xffff))

	// the interior is untouched
	r, g, b, _ = ovImg.At(40, 40).RGBA()
	test.That(t, r, test.ShouldEqual, uint32(0xffff))
	test.That(t, g, test.ShouldEqual, uint32(0xffff))
	test.That(t, b, test.ShouldEqual, uint32(0xffff))

	// no detections leaves the image unchanged
	plain, err := objectdetection.Overlay(img, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plain.Bounds(), test.ShouldResemble, img.Bounds())
}
