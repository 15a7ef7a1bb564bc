package geom

import "fmt"

// Bounds is an axis-aligned rectangle. All four edges belong to the rectangle.
//
// Left ≤ Right and Top ≤ Bottom always hold for values built with [NewBounds]
// or [NewBoundsFromPoints]. Top is the smaller y coordinate, which makes it the
// upper edge in a y-down space.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewBounds returns the rectangle with the given edges. It panics if left >
// right or top > bottom.
func NewBounds(left, right, top, bottom float64) Bounds {
	if left > right {
		panic(fmt.Sprintf("geom: inverted bounds: left %g > right %g", left, right))
	}
	if top > bottom {
		panic(fmt.Sprintf("geom: inverted bounds: top %g > bottom %g", top, bottom))
	}
	return Bounds{
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
	}
}

// NewBoundsFromPoints returns the smallest rectangle containing a and b.
func NewBoundsFromPoints(a, b Point2) Bounds {
	left, right := MinMax(a.X, b.X)
	top, bottom := MinMax(a.Y, b.Y)
	return NewBounds(left, right, top, bottom)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", b.Left, b.Right, b.Top, b.Bottom)
}

// Width returns Right − Left. It is never negative.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom − Top. It is never negative.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// ClampX restricts x to [Left, Right].
func (b Bounds) ClampX(x float64) float64 {
	return min(max(x, b.Left), b.Right)
}

// ClampY restricts y to [Top, Bottom].
func (b Bounds) ClampY(y float64) float64 {
	return min(max(y, b.Top), b.Bottom)
}

// ContainsPoint reports whether pt lies inside b or on one of its edges.
func (b Bounds) ContainsPoint(pt Point2) bool {
	return b.Left <= pt.X &&
		pt.X <= b.Right &&
		b.Top <= pt.Y &&
		pt.Y <= b.Bottom
}

// Overlaps reports whether b and o share at least one point. Rectangles that
// merely touch along an edge or at a corner overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return !(b.Right < o.Left ||
		o.Right < b.Left ||
		b.Bottom < o.Top ||
		o.Bottom < b.Top)
}
