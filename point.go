package geom

import (
	"fmt"
	"math"
)

// Point2 is a position in the plane.
type Point2 struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (pt Point2) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point2) Translate(o Vector2) Point2 {
	return Point2{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point2) Sub(o Point2) Vector2 {
	return Vector2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point2) Distance(o Point2) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point2) DistanceSquared(o Point2) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Equal reports whether both coordinates of pt and o compare equal under the
// total order used by [MinMax].
func (pt Point2) Equal(o Point2) bool {
	return compare(pt.X, o.X) == 0 && compare(pt.Y, o.Y) == 0
}
