package geom

import "fmt"

// Side names one of the four edges of a [Bounds].
type Side int

const (
	Left Side = iota + 1
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// sideChecks is consulted in order; the first violated side wins.
var sideChecks = [...]struct {
	side    Side
	outside func(b Bounds, pt Point2) bool
}{
	{Left, func(b Bounds, pt Point2) bool { return pt.X < b.Left }},
	{Right, func(b Bounds, pt Point2) bool { return pt.X > b.Right }},
	{Top, func(b Bounds, pt Point2) bool { return pt.Y < b.Top }},
	{Bottom, func(b Bounds, pt Point2) bool { return pt.Y > b.Bottom }},
}

// ClassifySide returns the side of b that pt lies beyond. A point that is
// beyond two sides, such as one diagonally outside a corner, is reported for
// the first of Left, Right, Top and Bottom that applies. The boolean is false
// if pt lies inside b or on its edges.
func ClassifySide(b Bounds, pt Point2) (Side, bool) {
	for _, c := range sideChecks {
		if c.outside(b, pt) {
			return c.side, true
		}
	}
	return 0, false
}
