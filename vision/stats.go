package vision

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/vision/objectdetection"
)

// LabelSummary aggregates the detections of a single label.
type LabelSummary struct {
	Count          int
	MeanConfidence float64
	StdDev         float64
}

// Summarize groups detections by label and computes per-label confidence
// statistics, for end-of-run reporting.
func Summarize(dets []objectdetection.Detection) map[semantic.Label]LabelSummary {
	confidences := map[semantic.Label][]float64{}
	for _, d := range dets {
		confidences[d.Label()] = append(confidences[d.Label()], d.Confidence())
	}
	out := make(map[semantic.Label]LabelSummary, len(confidences))
	for label, confs := range confidences {
		summary := LabelSummary{
			Count:          len(confs),
			MeanConfidence: stat.Mean(confs, nil),
		}
		if len(confs) > 1 {
			summary.StdDev = stat.StdDev(confs, nil)
		}
		out[label] = summary
	}
	return out
}
