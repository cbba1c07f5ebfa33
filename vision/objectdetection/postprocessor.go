package objectdetection

import (
	"sort"

	"github.com/sightkit/detect/semantic"
)

// Postprocessor defines a function that filters/modifies an incoming slice
// of Detections.
type Postprocessor func([]Detection) []Detection

// NewAreaFilter returns a function that filters out detections whose
// bounding box area is below the given minimum.
func NewAreaFilter(minArea float64) Postprocessor {
	return func(in []Detection) []Detection {
		out := make([]Detection, 0, len(in))
		for _, d := range in {
			if d.Area() >= minArea {
				out = append(out, d)
			}
		}
		return out
	}
}

// NewScoreFilter returns a function that filters out detections below a
// certain confidence.
func NewScoreFilter(conf float64) Postprocessor {
	return func(in []Detection) []Detection {
		out := make([]Detection, 0, len(in))
		for _, d := range in {
			if d.Confidence() >= conf {
				out = append(out, d)
			}
		}
		return out
	}
}

// NewLabelFilter returns a function that keeps only detections whose label
// is in the given set. An empty set keeps everything.
func NewLabelFilter(labels ...semantic.Label) Postprocessor {
	keep := make(map[semantic.Label]bool, len(labels))
	for _, l := range labels {
		keep[l] = true
	}
	return func(in []Detection) []Detection {
		if len(keep) == 0 {
			return in
		}
		out := make([]Detection, 0, len(in))
		for _, d := range in {
			if keep[d.Label()] {
				out = append(out, d)
			}
		}
		return out
	}
}

// NewNMSFilter returns a greedy non-maximum suppression filter: detections
// are visited in order of descending confidence, and any detection whose
// bounding box has an IoU above iouThreshold with an already kept detection
// is dropped.
func NewNMSFilter(iouThreshold float64) Postprocessor {
	return func(in []Detection) []Detection {
		sorted := make([]Detection, len(in))
		copy(sorted, in)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Confidence() > sorted[j].Confidence()
		})
		out := make([]Detection, 0, len(sorted))
		for _, d := range sorted {
			suppressed := false
			for _, kept := range out {
				if d.BoundingBox().IoU(kept.BoundingBox()) > iouThreshold {
					suppressed = true
					break
				}
			}
			if !suppressed {
				out = append(out, d)
			}
		}
		return out
	}
}
