package geom_test

import (
	"fmt"

	"honnef.co/go/geom"
)

func ExampleLineSegment_CircleIntersections() {
	s := geom.Seg(geom.Pt(-2, 0), geom.Pt(2, 0))
	xs := s.CircleIntersections(geom.Pt(0, 0), 1)
	for pt := range xs.All() {
		fmt.Println(pt)
	}

	// Output:
	// (1, 0)
	// (-1, 0)
}

func ExampleIntersections_Kind() {
	s := geom.Seg(geom.Pt(0, 0), geom.Pt(2, 0))
	for _, r := range []float64{0.5, 1, 3} {
		xs := s.IntersectCircle(geom.Circle{Center: geom.Pt(1, 1), Radius: r})
		switch xs.Kind() {
		case geom.NoIntersection:
			fmt.Println(r, "misses")
		case geom.OneIntersection:
			fmt.Println(r, "touches at", xs.At(0))
		case geom.TwoIntersections:
			fmt.Println(r, "crosses at", xs.At(0), "and", xs.At(1))
		}
	}

	// Output:
	// 0.5 misses
	// 1 touches at (1, 0)
	// 3 misses
}

func ExampleClassifySide() {
	b := geom.NewBounds(0, 10, 0, 10)
	for _, pt := range []geom.Point2{geom.Pt(5, 5), geom.Pt(-1, -1), geom.Pt(5, 12)} {
		if side, ok := geom.ClassifySide(b, pt); ok {
			fmt.Println(pt, "is beyond", side)
		} else {
			fmt.Println(pt, "is inside")
		}
	}

	// Output:
	// (5, 5) is inside
	// (-1, -1) is beyond Left
	// (5, 12) is beyond Bottom
}
