package grid

import (
	"fmt"
	"iter"

	"honnef.co/go/geom/position"
)

// Sparse is a map-backed grid. Its bounds are the smallest rectangle covering
// every position that has been set. The zero value is not usable; use
// [NewSparse].
type Sparse[T any] struct {
	values map[position.Position]T
	bounds Bounds
}

func NewSparse[T any]() *Sparse[T] {
	return &Sparse[T]{
		values: make(map[position.Position]T, 256),
		bounds: Bounds{Min: position.Pos(0, 0), Max: position.Pos(-1, -1)},
	}
}

// FilledSparse returns a grid with v stored at every position with minX ≤ x <
// maxX and minY ≤ y < maxY.
func FilledSparse[T any](v T, minX, minY, maxX, maxY int) *Sparse[T] {
	g := NewSparse[T]()
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			g.Set(position.Pos(x, y), v)
		}
	}
	return g
}

// Set stores v at p, widening the grid's bounds if necessary.
func (g *Sparse[T]) Set(p position.Position, v T) {
	if len(g.values) == 0 {
		g.bounds = Bounds{Min: p, Max: p}
	} else {
		g.bounds.Min.X = min(g.bounds.Min.X, p.X)
		g.bounds.Min.Y = min(g.bounds.Min.Y, p.Y)
		g.bounds.Max.X = max(g.bounds.Max.X, p.X)
		g.bounds.Max.Y = max(g.bounds.Max.Y, p.Y)
	}
	g.values[p] = v
}

// Get returns the value stored at p. The boolean is false if nothing is.
func (g *Sparse[T]) Get(p position.Position) (T, bool) {
	v, ok := g.values[p]
	return v, ok
}

// At returns the value stored at p. It panics if nothing is.
func (g *Sparse[T]) At(p position.Position) T {
	v, ok := g.values[p]
	if !ok {
		panic(fmt.Sprintf("grid: no value at %v", p))
	}
	return v
}

// Len returns the number of positions holding a value.
func (g *Sparse[T]) Len() int {
	return len(g.values)
}

// Bounds returns the bounds of all positions that have been set. They are
// empty for an empty grid.
func (g *Sparse[T]) Bounds() Bounds {
	return g.bounds
}

// All yields the stored values in row-major order.
func (g *Sparse[T]) All() iter.Seq2[position.Position, T] {
	return func(yield func(position.Position, T) bool) {
		for y := g.bounds.Min.Y; y <= g.bounds.Max.Y; y++ {
			for x := g.bounds.Min.X; x <= g.bounds.Max.X; x++ {
				p := position.Pos(x, y)
				if v, ok := g.values[p]; ok {
					if !yield(p, v) {
						return
					}
				}
			}
		}
	}
}

// String draws the grid, one line per row.
func (g *Sparse[T]) String() string {
	return render(g.bounds, g.Get)
}
