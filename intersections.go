package geom

import (
	"fmt"
	"iter"

	"deedles.dev/xiter"
)

type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	OneIntersection
	TwoIntersections
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "NoIntersection"
	case OneIntersection:
		return "OneIntersection"
	case TwoIntersections:
		return "TwoIntersections"
	default:
		return fmt.Sprintf("IntersectionKind(%d)", int(k))
	}
}

// Intersections holds the zero, one or two points where a line meets a circle.
// The zero value holds no points.
//
// Switch on [Intersections.Kind] to handle every case; only P0 is meaningful
// for OneIntersection, and neither is for NoIntersection.
type Intersections struct {
	kind IntersectionKind
	p0   Point2
	p1   Point2
}

// NoIntersections returns the empty result.
func NoIntersections() Intersections {
	return Intersections{}
}

func NewOneIntersection(pt Point2) Intersections {
	return Intersections{kind: OneIntersection, p0: pt}
}

func NewTwoIntersections(p0, p1 Point2) Intersections {
	return Intersections{kind: TwoIntersections, p0: p0, p1: p1}
}

// CollectIntersections builds an Intersections from the first two points of
// seq. Any further points are ignored; it is up to the caller not to produce
// more than two.
func CollectIntersections(seq iter.Seq[Point2]) Intersections {
	var xs Intersections
	for i, pt := range xiter.Enumerate(seq) {
		if i >= 2 {
			break
		}
		xs = xs.push(pt)
	}
	return xs
}

// push appends pt if there is room for it.
func (xs Intersections) push(pt Point2) Intersections {
	switch xs.kind {
	case NoIntersection:
		return NewOneIntersection(pt)
	case OneIntersection:
		return NewTwoIntersections(xs.p0, pt)
	default:
		return xs
	}
}

func (xs Intersections) Kind() IntersectionKind { return xs.kind }

// Len returns the number of points, which is 0, 1 or 2.
func (xs Intersections) Len() int {
	return int(xs.kind)
}

func (xs Intersections) IsEmpty() bool {
	return xs.kind == NoIntersection
}

// Get returns the i-th point. The boolean is false if there is no such point.
func (xs Intersections) Get(i int) (Point2, bool) {
	switch {
	case i == 0 && xs.kind >= OneIntersection:
		return xs.p0, true
	case i == 1 && xs.kind == TwoIntersections:
		return xs.p1, true
	default:
		return Point2{}, false
	}
}

// At returns the i-th point. It panics if i is out of range.
func (xs Intersections) At(i int) Point2 {
	pt, ok := xs.Get(i)
	if !ok {
		panic(fmt.Sprintf("geom: index %d out of range for %d intersections", i, xs.Len()))
	}
	return pt
}

// All returns an iterator over the points in storage order. Each call returns
// a fresh iterator.
func (xs Intersections) All() iter.Seq[Point2] {
	return func(yield func(Point2) bool) {
		switch xs.kind {
		case OneIntersection:
			yield(xs.p0)
		case TwoIntersections:
			_ = yield(xs.p0) &&
				yield(xs.p1)
		}
	}
}

// Equal reports whether xs and o are of the same kind and hold the same points,
// compared coordinate by coordinate with the total order used by [MinMax].
func (xs Intersections) Equal(o Intersections) bool {
	if xs.kind != o.kind {
		return false
	}
	switch xs.kind {
	case OneIntersection:
		return xs.p0.Equal(o.p0)
	case TwoIntersections:
		return xs.p0.Equal(o.p0) && xs.p1.Equal(o.p1)
	default:
		return true
	}
}

func (xs Intersections) String() string {
	switch xs.kind {
	case OneIntersection:
		return fmt.Sprintf("One(%v)", xs.p0)
	case TwoIntersections:
		return fmt.Sprintf("Two(%v, %v)", xs.p0, xs.p1)
	default:
		return "None"
	}
}
