package objectdetection_test

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"go.viam.com/test"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/spatial"
	"github.com/sightkit/detect/vision/objectdetection"
)

// whiteImageWithRects returns a white image with filled black rectangles.
func whiteImageWithRects(width, height int, rects ...image.Rectangle) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for _, r := range rects {
		draw.Draw(img, r, image.NewUniform(color.Black), image.Point{}, draw.Src)
	}
	return img
}

func TestSimpleDetector(t *testing.T) {
	img := whiteImageWithRects(100, 100, image.Rect(10, 10, 20, 20))
	d := objectdetection.NewSimpleDetector(128)

	dets, err := d(context.Background(), img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dets, test.ShouldHaveLength, 1)
	test.That(t, dets[0].BoundingBox(), test.ShouldResemble, spatial.NewBoundingBox(10, 10, 20, 20).Unwrap())
	test.That(t, dets[0].Confidence(), test.ShouldEqual, 1.0)
	test.That(t, dets[0].Label(), test.ShouldEqual, semantic.LabelUnknown)
}

func TestSimpleDetectorMultipleObjects(t *testing.T) {
	img := whiteImageWithRects(100, 100,
		image.Rect(5, 5, 15, 15),
		image.Rect(60, 60, 90, 80),
	)
	d := objectdetection.NewSimpleDetector(128)

	dets, err := d(context.Background(), img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dets, test.ShouldHaveLength, 2)
	boxes := map[spatial.BoundingBox]bool{}
	for _, det := range dets {
		boxes[det.BoundingBox()] = true
	}
	test.That(t, boxes[spatial.NewBoundingBox(5, 5, 15, 15).Unwrap()], test.ShouldBeTrue)
	test.That(t, boxes[spatial.NewBoundingBox(60, 60, 90, 80).Unwrap()], test.ShouldBeTrue)
}

func TestSimpleDetectorEmpty(t *testing.T) {
	img := whiteImageWithRects(50, 50)
	d := objectdetection.NewSimpleDetector(128)

	dets, err := d(context.Background(), img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dets, test.ShouldHaveLength, 0)
}

func TestSimpleDetectorCancel(t *testing.T) {
	img := whiteImageWithRects(50, 50)
	d := objectdetection.NewSimpleDetector(128)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d(ctx, img)
	test.That(t, err, test.ShouldBeError, context.Canceled)
}
