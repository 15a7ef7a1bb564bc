package geom

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// compare is a three-way comparison over floats that imposes a total order.
// NaN sorts before every number and equals itself, and -0 equals +0. It never
// panics.
func compare[F constraints.Float](a, b F) int {
	return cmp.Compare(a, b)
}

// MinMax returns a and b ordered as (min, max). When a and b compare equal, they
// are returned in their original order.
func MinMax[F constraints.Float](a, b F) (F, F) {
	if compare(a, b) > 0 {
		return b, a
	}
	return a, b
}
