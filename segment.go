package geom

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance shared by [LineSegment.PointOnSegment] and
// [LineSegment.CircleIntersections].
//
// It was tuned empirically rather than derived from an error bound: at 1e-8
// rays that should graze a circle are reported as hitting it, at 1e-9 they no
// longer are, and 1e-10 leaves a margin while still accepting near-tangent
// intersections.
//
// The two users apply it in different units. PointOnSegment compares it
// against a squared distance, so its effective linear tolerance is
// sqrt(Epsilon) ≈ 1e-5. CircleIntersections compares it directly against the
// quadratic's leading coefficient and discriminant.
const Epsilon = 1e-10

// LineSegment is a directed segment from a start point to an end point. Its
// direction vector is computed once, at construction; build a new segment
// instead of changing the endpoints of an existing one.
//
// Start and end may coincide, making the segment degenerate.
type LineSegment struct {
	start  Point2
	end    Point2
	vector Vector2
}

// Seg returns the segment from start to end.
func Seg(start, end Point2) LineSegment {
	return LineSegment{
		start:  start,
		end:    end,
		vector: end.Sub(start),
	}
}

func (s LineSegment) Start() Point2   { return s.start }
func (s LineSegment) End() Point2     { return s.end }
func (s LineSegment) Vector() Vector2 { return s.vector }

func (s LineSegment) String() string {
	return fmt.Sprintf("%v→%v", s.start, s.end)
}

// Bounds returns the smallest rectangle containing the segment.
func (s LineSegment) Bounds() Bounds {
	return NewBoundsFromPoints(s.start, s.end)
}

// Length returns the length of the segment.
func (s LineSegment) Length() float64 {
	return s.vector.Hypot()
}

// Angle returns the signed angle in radians from the positive x axis to the
// segment's direction. It is meaningless for degenerate segments.
func (s LineSegment) Angle() float64 {
	return s.vector.Angle()
}

// Eval returns start + t·vector.
func (s LineSegment) Eval(t float64) Point2 {
	return s.start.Translate(s.vector.Mul(t))
}

// ClosestPointOnSegment returns the point of the segment nearest to pt.
//
// pt is projected onto the line through the segment and the projection's
// parameter is clamped to [0, 1]. A degenerate segment returns its start.
func (s LineSegment) ClosestPointOnSegment(pt Point2) Point2 {
	// See http://paulbourke.net/geometry/pointlineplane/
	if s.start == s.end {
		return s.start
	}
	dx := s.end.X - s.start.X
	dy := s.end.Y - s.start.Y

	t := ((pt.X-s.start.X)*dx + (pt.Y-s.start.Y)*dy) / s.vector.Hypot2()
	if t <= 0.0 {
		return s.start
	} else if t >= 1.0 {
		return s.end
	}
	return Pt(s.start.X+t*dx, s.start.Y+t*dy)
}

// DistanceToSegmentSquared returns the squared distance between pt and the
// nearest point of the segment.
func (s LineSegment) DistanceToSegmentSquared(pt Point2) float64 {
	return s.ClosestPointOnSegment(pt).DistanceSquared(pt)
}

// PointOnSegment reports whether pt lies on the segment, endpoints included.
//
// Points outside the segment's bounds are rejected without further work. The
// remaining points are accepted if their squared distance to the segment is
// below [Epsilon].
func (s LineSegment) PointOnSegment(pt Point2) bool {
	// Epsilon is not squared here, so this accepts more points than the root
	// classification in CircleIntersections does.
	if !s.Bounds().ContainsPoint(pt) {
		return false
	}
	return s.DistanceToSegmentSquared(pt) < Epsilon
}

// CircleIntersections returns the points where the segment crosses the circle
// with the given center and radius.
//
// If there are two points, the first is the one further along the segment's
// direction. Roots of the line/circle equation that don't fall on the segment,
// as judged by [LineSegment.PointOnSegment], are dropped.
func (s LineSegment) CircleIntersections(center Point2, radius float64) Intersections {
	// See http://csharphelper.com/blog/2014/09/determine-where-a-line-intersects-a-circle-in-c/

	// Move the circle to the origin.
	sx := s.start.X - center.X
	sy := s.start.Y - center.Y
	ex := s.end.X - center.X
	ey := s.end.Y - center.Y

	dx := ex - sx
	dy := ey - sy
	a := dx*dx + dy*dy
	b := 2.0 * (dx*sx + dy*sy)
	c := sx*sx + sy*sy - radius*radius

	roots, n := solveCircleQuadratic(a, b, c)
	var xs Intersections
	for _, t := range roots[:n] {
		pt := Pt(s.start.X+t*dx, s.start.Y+t*dy)
		if s.PointOnSegment(pt) {
			xs = xs.push(pt)
		}
	}
	return xs
}

// IntersectCircle is like CircleIntersections but takes a [Circle].
func (s LineSegment) IntersectCircle(c Circle) Intersections {
	return s.CircleIntersections(c.Center, c.Radius)
}

// solveCircleQuadratic returns the real roots of a t² + b t + c = 0, classified
// with [Epsilon]. Two roots are returned larger one first for positive a.
// Nearly vanishing a means a degenerate direction, which has no roots.
func solveCircleQuadratic(a, b, c float64) ([2]float64, int) {
	// The conversions prevent fusing into a multiply-add.
	det := float64(b*b) - float64(4.0*a*c)
	switch {
	case a < Epsilon || det < -Epsilon:
		return [2]float64{}, 0
	case math.Abs(det) < Epsilon:
		return [2]float64{-b / (2.0 * a)}, 1
	default:
		sq := math.Sqrt(det)
		return [2]float64{(-b + sq) / (2.0 * a), (-b - sq) / (2.0 * a)}, 2
	}
}
