// Package vision provides the application-level detection service that
// orchestrates a detector port with postprocessing and label filtering,
// reporting outcomes as Results rather than raw errors.
package vision

import (
	"context"
	"image"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/sightkit/detect/result"
	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/vision/objectdetection"
)

// Service handles the object detection workflow: it owns the detector port
// and applies its postprocessors to every frame.
type Service struct {
	detector       objectdetection.Detector
	postprocessors []objectdetection.Postprocessor
	logger         golog.Logger
}

// NewService wires a detector port into a Service. The detector is required;
// postprocessors are applied in the given order on every detection pass.
func NewService(det objectdetection.Detector, logger golog.Logger, post ...objectdetection.Postprocessor) (*Service, error) {
	if det == nil {
		return nil, errors.New("detection service requires a detector")
	}
	if logger == nil {
		logger = golog.NewLogger("vision")
	}
	return &Service{detector: det, postprocessors: post, logger: logger}, nil
}

// DetectObjects runs detection on a single frame. When labels are given,
// only detections carrying one of them are returned. The outcome is reported
// as a Result so callers branch on success/failure instead of handling
// errors out-of-band; failures are logged through the error channel tap.
func (s *Service) DetectObjects(
	ctx context.Context,
	img image.Image,
	labels ...semantic.Label,
) result.Result[[]objectdetection.Detection, error] {
	dets, err := s.detector(ctx, img)
	if err != nil {
		return result.Err[[]objectdetection.Detection](errors.Wrap(err, "detector failed")).
			InspectErr(func(err error) {
				s.logger.Errorw("detection failed", "error", err)
			})
	}
	for _, post := range s.postprocessors {
		dets = post(dets)
	}
	dets = objectdetection.NewLabelFilter(labels...)(dets)
	return result.Ok[[]objectdetection.Detection, error](dets).
		Inspect(func(dets []objectdetection.Detection) {
			s.logger.Debugw("detection complete", "detections", len(dets))
		})
}
