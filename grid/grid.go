// Package grid provides two-dimensional grids keyed by [position.Position].
//
// [Sparse] grows to cover whatever positions are set, while [Dense] has fixed,
// inclusive bounds chosen at construction and stores every cell.
package grid

import (
	"fmt"
	"strings"

	"honnef.co/go/geom/position"
)

// Bounds is an inclusive range of positions. It is empty if Max.X < Min.X or
// Max.Y < Min.Y.
type Bounds struct {
	Min position.Position
	Max position.Position
}

func (b Bounds) Contains(p position.Position) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Width returns the number of columns, or 0 for empty bounds.
func (b Bounds) Width() int {
	return max(b.Max.X-b.Min.X+1, 0)
}

// Height returns the number of rows, or 0 for empty bounds.
func (b Bounds) Height() int {
	return max(b.Max.Y-b.Min.Y+1, 0)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%v-%v", b.Min, b.Max)
}

// render draws the cells within b row by row, padding every cell to the width
// of the widest one. Missing cells are left blank.
func render[T any](b Bounds, get func(position.Position) (T, bool)) string {
	cells := make([]string, 0, b.Width()*b.Height())
	present := make([]bool, 0, cap(cells))
	width := 1
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			v, ok := get(position.Pos(x, y))
			s := ""
			if ok {
				s = fmt.Sprint(v)
				width = max(width, len(s))
			}
			cells = append(cells, s)
			present = append(present, ok)
		}
	}

	var sb strings.Builder
	for i, s := range cells {
		if present[i] {
			fmt.Fprintf(&sb, "%*s", width, s)
		} else {
			sb.WriteString(strings.Repeat(" ", width))
		}
		if (i+1)%b.Width() == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
