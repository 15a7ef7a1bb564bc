package geom

import "math"

type Circle struct {
	Center Point2
	Radius float64
}

// Contains reports whether pt lies inside the circle or on its perimeter.
func (c Circle) Contains(pt Point2) bool {
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Bounds returns the smallest rectangle containing the circle.
func (c Circle) Bounds() Bounds {
	r := math.Abs(c.Radius)
	return NewBounds(
		c.Center.X-r,
		c.Center.X+r,
		c.Center.Y-r,
		c.Center.Y+r,
	)
}
