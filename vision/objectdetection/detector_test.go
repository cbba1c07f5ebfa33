package objectdetection_test

import (
	"context"
	"image"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/vision/objectdetection"
)

func TestBuildFunc(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	_, err := objectdetection.Build(nil, nil, nil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must have a Detector")

	// detector that creates an error
	det := func(context.Context, image.Image) ([]objectdetection.Detection, error) {
		return nil, errors.New("detector error")
	}
	ctx := context.Background()
	pipeline, err := objectdetection.Build(nil, det, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = pipeline(ctx, img)
	test.That(t, err.Error(), test.ShouldEqual, "detector error")

	// make simple detector
	det = func(context.Context, image.Image) ([]objectdetection.Detection, error) {
		return []objectdetection.Detection{makeDetection(t, 0, 0, 10, 10, semantic.LabelUnknown, 1.0)}, nil
	}
	pipeline, err = objectdetection.Build(nil, det, nil)
	test.That(t, err, test.ShouldBeNil)
	res, err := pipeline(ctx, img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res, test.ShouldHaveLength, 1)

	// make simple filter
	filt := func([]objectdetection.Detection) []objectdetection.Detection {
		return []objectdetection.Detection{}
	}
	pipeline, err = objectdetection.Build(nil, det, filt)
	test.That(t, err, test.ShouldBeNil)
	res, err = pipeline(ctx, img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res, test.ShouldHaveLength, 0)

	// preprocessor runs before the detector
	var sawBounds image.Rectangle
	det = func(_ context.Context, img image.Image) ([]objectdetection.Detection, error) {
		sawBounds = img.Bounds()
		return nil, nil
	}
	prep := func(img image.Image) image.Image {
		return image.NewRGBA(image.Rect(0, 0, 10, 10))
	}
	pipeline, err = objectdetection.Build(prep, det, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = pipeline(ctx, img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sawBounds, test.ShouldResemble, image.Rect(0, 0, 10, 10))
}
