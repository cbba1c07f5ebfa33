// Package spatial implements the immutable 2D geometry value types the
// detection platform is built on: axis-aligned bounding boxes, points and
// velocity vectors.
//
// Coordinates follow the image convention of x1/y1 being the left/top edge
// and x2/y2 the right/bottom edge, but the package only enforces ordering, so
// a y-up coordinate system works equally well.
package spatial

import (
	"fmt"
	"image"
	"math"

	"github.com/golang/geo/r2"

	"github.com/sightkit/detect/result"
)

// InvalidBoxError is returned when bounding box coordinates violate one of
// the construction invariants. It identifies the violated constraint and the
// offending value(s).
type InvalidBoxError struct {
	msg string
}

func (e *InvalidBoxError) Error() string {
	return e.msg
}

func newBoxOrderError(axis string, lo, hi float64) *InvalidBoxError {
	return &InvalidBoxError{fmt.Sprintf("%s1 (%v) must be less than %s2 (%v)", axis, lo, axis, hi)}
}

func newBoxNegativeError(field string, value float64) *InvalidBoxError {
	return &InvalidBoxError{fmt.Sprintf("%s (%v) must be non-negative", field, value)}
}

// BoundingBox is an immutable axis-aligned rectangle. Every instance
// obtained through NewBoundingBox satisfies x1 < x2, y1 < y2, x1 >= 0 and
// y1 >= 0; no upper bound is imposed on x2/y2. Instances compare and hash by
// value and may be used as map keys.
type BoundingBox struct {
	x1, y1, x2, y2 float64
}

// NewBoundingBox validates the given edges and returns either a usable box or
// an *InvalidBoxError naming the first violated constraint. Constraints are
// checked in order: x1 < x2, y1 < y2, x1 >= 0, y1 >= 0.
func NewBoundingBox(x1, y1, x2, y2 float64) result.Result[BoundingBox, *InvalidBoxError] {
	if x1 >= x2 {
		return result.Err[BoundingBox](newBoxOrderError("x", x1, x2))
	}
	if y1 >= y2 {
		return result.Err[BoundingBox](newBoxOrderError("y", y1, y2))
	}
	if x1 < 0 {
		return result.Err[BoundingBox](newBoxNegativeError("x1", x1))
	}
	if y1 < 0 {
		return result.Err[BoundingBox](newBoxNegativeError("y1", y1))
	}
	return result.Ok[BoundingBox, *InvalidBoxError](BoundingBox{x1, y1, x2, y2})
}

// NewBoundingBoxFromCoordinates unpacks an (x1, y1, x2, y2) tuple into
// NewBoundingBox.
func NewBoundingBoxFromCoordinates(coords [4]float64) result.Result[BoundingBox, *InvalidBoxError] {
	return NewBoundingBox(coords[0], coords[1], coords[2], coords[3])
}

// NewBoundingBoxFromImageRect converts a stdlib image rectangle into a
// validated box.
func NewBoundingBoxFromImageRect(rect image.Rectangle) result.Result[BoundingBox, *InvalidBoxError] {
	return NewBoundingBox(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y))
}

// NewBoundingBoxFromR2Rect converts an r2 rectangle into a validated box.
func NewBoundingBoxFromR2Rect(rect r2.Rect) result.Result[BoundingBox, *InvalidBoxError] {
	return NewBoundingBox(rect.X.Lo, rect.Y.Lo, rect.X.Hi, rect.Y.Hi)
}

// X1 returns the left edge.
func (b BoundingBox) X1() float64 { return b.x1 }

// Y1 returns the top edge.
func (b BoundingBox) Y1() float64 { return b.y1 }

// X2 returns the right edge.
func (b BoundingBox) X2() float64 { return b.x2 }

// Y2 returns the bottom edge.
func (b BoundingBox) Y2() float64 { return b.y2 }

// Width returns x2 - x1. Always positive for a valid box.
func (b BoundingBox) Width() float64 {
	return b.x2 - b.x1
}

// Height returns y2 - y1. Always positive for a valid box.
func (b BoundingBox) Height() float64 {
	return b.y2 - b.y1
}

// Area returns width * height.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// Center returns the midpoint of both axes.
func (b BoundingBox) Center() Point {
	return Point{X: (b.x1 + b.x2) / 2, Y: (b.y1 + b.y2) / 2}
}

// TopLeft returns the (x1, y1) corner.
func (b BoundingBox) TopLeft() Point { return Point{X: b.x1, Y: b.y1} }

// TopRight returns the (x2, y1) corner.
func (b BoundingBox) TopRight() Point { return Point{X: b.x2, Y: b.y1} }

// BottomLeft returns the (x1, y2) corner.
func (b BoundingBox) BottomLeft() Point { return Point{X: b.x1, Y: b.y2} }

// BottomRight returns the (x2, y2) corner.
func (b BoundingBox) BottomRight() Point { return Point{X: b.x2, Y: b.y2} }

// Coordinates returns the box as an (x1, y1, x2, y2) tuple.
func (b BoundingBox) Coordinates() [4]float64 {
	return [4]float64{b.x1, b.y1, b.x2, b.y2}
}

// R2Rect converts the box to an r2.Rect.
func (b BoundingBox) R2Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: b.x1, Y: b.y1}, r2.Point{X: b.x2, Y: b.y2})
}

// ImageRect converts the box to a stdlib image rectangle, rounding each edge
// to the nearest integer.
func (b BoundingBox) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.x1)), int(math.Round(b.y1)),
		int(math.Round(b.x2)), int(math.Round(b.y2)),
	)
}

// IoU returns the Intersection over Union with another box, in [0, 1].
// Boxes that are disjoint or merely touch along an edge have an IoU of
// exactly 0. IoU is symmetric.
func (b BoundingBox) IoU(other BoundingBox) float64 {
	interX1 := math.Max(b.x1, other.x1)
	interY1 := math.Max(b.y1, other.y1)
	interX2 := math.Min(b.x2, other.x2)
	interY2 := math.Min(b.y2, other.y2)

	if interX2 <= interX1 || interY2 <= interY1 {
		return 0.0
	}

	interArea := (interX2 - interX1) * (interY2 - interY1)
	unionArea := b.Area() + other.Area() - interArea
	return interArea / unionArea
}

// Intersection returns the overlap of the two boxes. The second return is
// false exactly when the boxes are disjoint or merely touch along an edge,
// i.e. when Overlaps is false. The overlap of two valid boxes is itself
// valid, so the returned box never bypasses the constructor invariants.
func (b BoundingBox) Intersection(other BoundingBox) (BoundingBox, bool) {
	interX1 := math.Max(b.x1, other.x1)
	interY1 := math.Max(b.y1, other.y1)
	interX2 := math.Min(b.x2, other.x2)
	interY2 := math.Min(b.y2, other.y2)

	if interX2 <= interX1 || interY2 <= interY1 {
		return BoundingBox{}, false
	}
	return BoundingBox{interX1, interY1, interX2, interY2}, true
}

// ContainsPoint reports whether (x, y) lies within the box. All four edges
// are inclusive, so boundary points count as contained.
func (b BoundingBox) ContainsPoint(x, y float64) bool {
	return b.x1 <= x && x <= b.x2 && b.y1 <= y && y <= b.y2
}

// ContainsBox reports whether other is inclusively enclosed on all four
// sides.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.x1 <= other.x1 && b.y1 <= other.y1 && b.x2 >= other.x2 && b.y2 >= other.y2
}

// Overlaps reports whether the boxes share any area. Boxes that only share a
// boundary line do not overlap, consistent with IoU and Intersection.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return !(b.x2 <= other.x1 || b.x1 >= other.x2 || b.y2 <= other.y1 || b.y1 >= other.y2)
}

// Translate shifts all four edges by (dx, dy), preserving width and height
// exactly. The result is not re-validated: shifting toward the origin can
// produce negative x1/y1, and callers that need the non-negativity invariant
// must re-validate through NewBoundingBox.
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	return BoundingBox{b.x1 + dx, b.y1 + dy, b.x2 + dx, b.y2 + dy}
}

// Scale resizes the box symmetrically about its center. The new half extents
// are the old ones multiplied by factor. x1/y1 are clamped to a minimum of 0;
// x2/y2 are not clamped, so clamping can shift the center of boxes near the
// origin.
func (b BoundingBox) Scale(factor float64) BoundingBox {
	center := b.Center()
	halfWidth := (b.Width() * factor) / 2
	halfHeight := (b.Height() * factor) / 2
	return BoundingBox{
		x1: math.Max(0, center.X-halfWidth),
		y1: math.Max(0, center.Y-halfHeight),
		x2: center.X + halfWidth,
		y2: center.Y + halfHeight,
	}
}

// CenterDistance returns the Euclidean distance between the two box centers.
func (b BoundingBox) CenterDistance(other BoundingBox) float64 {
	return b.Center().DistanceTo(other.Center())
}

// EdgeDistance returns the Euclidean distance between the nearest edges of
// the two boxes, or exactly 0 when they overlap.
func (b BoundingBox) EdgeDistance(other BoundingBox) float64 {
	if b.Overlaps(other) {
		return 0.0
	}
	dx := math.Max(math.Max(other.x1-b.x2, b.x1-other.x2), 0)
	dy := math.Max(math.Max(other.y1-b.y2, b.y1-other.y2), 0)
	return math.Hypot(dx, dy)
}

// String returns a human readable representation of the box.
func (b BoundingBox) String() string {
	return fmt.Sprintf("Box(x1: %.1f, y1: %.1f, x2: %.1f, y2: %.1f)", b.x1, b.y1, b.x2, b.y2)
}
