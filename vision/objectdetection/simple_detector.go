package objectdetection

import (
	"context"
	"image"
	"image/color"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/spatial"
)

// simpleDetector converts an image to gray and then finds the connected components with values below a certain
// luminance threshold. threshold is between 0.0 and 256.0, with 256.0 being white, and 0.0 being black.
type simpleDetector struct {
	threshold float64
}

// NewSimpleDetector creates a detector useful for local testing and as the reference Detector implementation.
// Looks for dark objects in the image: it finds pixels below the set threshold, and returns a validated
// bounding box around each connected component, labeled unknown with confidence 1.0.
func NewSimpleDetector(threshold float64) Detector {
	sd := simpleDetector{threshold}
	return sd.Inference
}

// Inference takes in an image frame and returns the detections found in the image.
func (sd *simpleDetector) Inference(ctx context.Context, img image.Image) ([]Detection, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	seen := make([]bool, width*height)
	queue := []image.Point{}
	detections := []Detection{}
	for i := bounds.Min.X; i < bounds.Max.X; i++ {
		for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pt := image.Point{i, j}
			indx := (pt.Y-bounds.Min.Y)*width + (pt.X - bounds.Min.X)
			if seen[indx] {
				continue
			}
			if !sd.pass(img.At(pt.X, pt.Y)) {
				seen[indx] = true
				continue
			}
			queue = append(queue, pt)
			x0, y0, x1, y1 := pt.X, pt.Y, pt.X, pt.Y // the bounding box of the segment
			for len(queue) != 0 {
				newPt := queue[0]
				newIndx := (newPt.Y-bounds.Min.Y)*width + (newPt.X - bounds.Min.X)
				seen[newIndx] = true
				queue = queue[1:]
				if newPt.X < x0 {
					x0 = newPt.X
				}
				if newPt.X > x1 {
					x1 = newPt.X
				}
				if newPt.Y < y0 {
					y0 = newPt.Y
				}
				if newPt.Y > y1 {
					y1 = newPt.Y
				}
				neighbors := sd.getNeighbors(newPt, img, seen)
				queue = append(queue, neighbors...)
			}
			// x1/y1 hold the max pixel inclusive, the box right/bottom edges are exclusive
			boxResult := spatial.NewBoundingBox(float64(x0), float64(y0), float64(x1+1), float64(y1+1))
			if boxResult.IsErr() {
				continue
			}
			d, err := NewDetection(boxResult.Unwrap(), semantic.LabelUnknown, 1.0)
			if err != nil {
				return nil, err
			}
			detections = append(detections, d)
		}
	}
	return detections, nil
}

func (sd *simpleDetector) pass(c color.Color) bool {
	return luminance(c) < sd.threshold
}

func (sd *simpleDetector) getNeighbors(pt image.Point, img image.Image, seen []bool) []image.Point {
	bounds := img.Bounds()
	neighbors := make([]image.Point, 0, 4)
	fourPoints := []image.Point{{pt.X, pt.Y - 1}, {pt.X, pt.Y + 1}, {pt.X - 1, pt.Y}, {pt.X + 1, pt.Y}}
	for _, p := range fourPoints {
		if !p.In(bounds) {
			continue
		}
		indx := (p.Y-bounds.Min.Y)*bounds.Dx() + (p.X - bounds.Min.X)
		if seen[indx] {
			continue
		}
		if sd.pass(img.At(p.X, p.Y)) {
			neighbors = append(neighbors, p)
		}
		seen[indx] = true
	}
	return neighbors
}

// luminance returns the Rec. 601 luma of the color over 8-bit channels, in [0, 255].
func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}
