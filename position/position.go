// Package position provides integer grid coordinates and the directions used
// to move between them. The y axis points down: North and Up decrease y.
package position

import (
	"fmt"
	"iter"
)

type Position struct {
	X int
	Y int
}

// Pos returns the position (x, y).
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Stepper is implemented by direction types that can move a [Position].
type Stepper interface {
	offset() Position
}

// Step returns the position one step from p in direction d.
func (p Position) Step(d Stepper) Position {
	return p.Add(d.offset())
}

// StepBy returns the position n steps from p in direction d. Negative n moves
// the opposite way.
func (p Position) StepBy(d Stepper, n int) Position {
	o := d.offset()
	return Position{X: p.X + o.X*n, Y: p.Y + o.Y*n}
}

var (
	offsets4 = [...]Position{
		{0, -1},
		{1, 0},
		{0, 1},
		{-1, 0},
	}
	offsets8 = [...]Position{
		{0, -1},
		{1, -1},
		{1, 0},
		{1, 1},
		{0, 1},
		{-1, 1},
		{-1, 0},
		{-1, -1},
	}
)

// Neighbours4 yields the four orthogonal neighbours of p clockwise, starting
// with the one to the north.
func (p Position) Neighbours4() iter.Seq[Position] {
	return neighbours(p, offsets4[:])
}

// Neighbours8 yields the eight orthogonal and diagonal neighbours of p
// clockwise, starting with the one to the north.
func (p Position) Neighbours8() iter.Seq[Position] {
	return neighbours(p, offsets8[:])
}

func neighbours(p Position, offsets []Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, o := range offsets {
			if !yield(p.Add(o)) {
				return
			}
		}
	}
}
