package grid

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"

	"honnef.co/go/geom/position"
)

// Dense is a slice-backed grid with fixed bounds. Every position within the
// bounds holds a value, initially the zero value of T.
type Dense[T any] struct {
	values []T
	bounds Bounds
}

// NewDense returns a grid covering minX ≤ x ≤ maxX and minY ≤ y ≤ maxY. It
// panics if the range is empty.
func NewDense[T any](minX, minY, maxX, maxY int) *Dense[T] {
	b := Bounds{Min: position.Pos(minX, minY), Max: position.Pos(maxX, maxY)}
	if b.Width() == 0 || b.Height() == 0 {
		panic(fmt.Sprintf("grid: empty bounds %v", b))
	}
	return &Dense[T]{
		values: make([]T, b.Width()*b.Height()),
		bounds: b,
	}
}

// DenseFromOrigin returns a grid of the given size with its top left corner at
// (0,0).
func DenseFromOrigin[T any](width, height int) *Dense[T] {
	return NewDense[T](0, 0, width-1, height-1)
}

func (g *Dense[T]) Bounds() Bounds { return g.bounds }
func (g *Dense[T]) Width() int     { return g.bounds.Width() }
func (g *Dense[T]) Height() int    { return g.bounds.Height() }

// InBounds reports whether p lies within the grid.
func (g *Dense[T]) InBounds(p position.Position) bool {
	return g.bounds.Contains(p)
}

func (g *Dense[T]) index(p position.Position) int {
	return (p.Y-g.bounds.Min.Y)*g.bounds.Width() + (p.X - g.bounds.Min.X)
}

func (g *Dense[T]) posAt(i int) position.Position {
	w := g.bounds.Width()
	return position.Pos(g.bounds.Min.X+i%w, g.bounds.Min.Y+i/w)
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Dense[T]) Set(p position.Position, v T) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v is not in bounds %v", p, g.bounds))
	}
	g.values[g.index(p)] = v
}

// Get returns the value at p. The boolean is false if p is out of bounds.
func (g *Dense[T]) Get(p position.Position) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.values[g.index(p)], true
}

// At returns the value at p. It panics if p is out of bounds.
func (g *Dense[T]) At(p position.Position) T {
	v, ok := g.Get(p)
	if !ok {
		panic(fmt.Sprintf("grid: position %v is not in bounds %v", p, g.bounds))
	}
	return v
}

// All yields every position and its value in row-major order.
func (g *Dense[T]) All() iter.Seq2[position.Position, T] {
	return func(yield func(position.Position, T) bool) {
		for i, v := range xiter.Enumerate(slices.Values(g.values)) {
			if !yield(g.posAt(i), v) {
				return
			}
		}
	}
}

// String draws the grid, one line per row.
func (g *Dense[T]) String() string {
	return render(g.bounds, g.Get)
}
