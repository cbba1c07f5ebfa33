// Package objectdetection defines the detector port of the detection
// platform together with its domain Detection type, the pipeline builder,
// reusable postprocessing filters and a streaming source.
package objectdetection

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/spatial"
)

// Detection represents a single object detected in a frame.
type Detection struct {
	boundingBox spatial.BoundingBox
	label       semantic.Label
	confidence  float64
	trackID     string
}

// NewDetection creates a Detection, validating that confidence lies in
// [0, 1]. The bounding box carries its own invariants, so a Detection built
// here is fully valid.
func NewDetection(box spatial.BoundingBox, label semantic.Label, confidence float64) (Detection, error) {
	if confidence < 0.0 || confidence > 1.0 {
		return Detection{}, errors.Errorf("confidence %v must be between 0.0 and 1.0", confidence)
	}
	return Detection{boundingBox: box, label: label, confidence: confidence}, nil
}

// BoundingBox returns the spatial location of the detected object.
func (d Detection) BoundingBox() spatial.BoundingBox {
	return d.boundingBox
}

// Label returns the semantic class of the detected object.
func (d Detection) Label() semantic.Label {
	return d.label
}

// Confidence returns the model certainty, in [0, 1].
func (d Detection) Confidence() float64 {
	return d.confidence
}

// TrackID returns the tracker-assigned identifier, or "" when tracking is
// not active. Nothing in this repository assigns track IDs yet.
func (d Detection) TrackID() string {
	return d.trackID
}

// WithTrackID returns a copy of the detection carrying the given track ID.
func (d Detection) WithTrackID(id string) Detection {
	d.trackID = id
	return d
}

// Area returns the area of the detection's bounding box.
func (d Detection) Area() float64 {
	return d.boundingBox.Area()
}

// Center returns the center of the detection's bounding box.
func (d Detection) Center() spatial.Point {
	return d.boundingBox.Center()
}

func (d Detection) String() string {
	return fmt.Sprintf("%s (%.2f): %s", d.label, d.confidence, d.boundingBox)
}
