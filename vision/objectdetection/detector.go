package objectdetection

import (
	"context"
	"image"

	"github.com/pkg/errors"
)

// Detector returns the detections found in an image frame. It is the port
// that detection adapters implement.
type Detector func(ctx context.Context, img image.Image) ([]Detection, error)

// Preprocessor modifies an image before detection.
type Preprocessor func(image.Image) image.Image

// Build composes a preprocessor, detector and postprocessor into a single
// detector. The detector is required; a nil preprocessor or postprocessor
// becomes the identity.
func Build(prep Preprocessor, det Detector, post Postprocessor) (Detector, error) {
	if det == nil {
		return nil, errors.New("must have a Detector to build a detection pipeline")
	}
	if prep == nil {
		prep = func(img image.Image) image.Image { return img }
	}
	if post == nil {
		post = func(in []Detection) []Detection { return in }
	}
	return func(ctx context.Context, img image.Image) ([]Detection, error) {
		preprocessed := prep(img)
		detections, err := det(ctx, preprocessed)
		if err != nil {
			return nil, err
		}
		return post(detections), nil
	}, nil
}
