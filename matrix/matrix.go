// Package matrix provides a fixed-size matrix of booleans, with the
// transformations that pixel and tile puzzles keep asking for.
//
// Matrices have a text form in which '#' is true, '.' is false and rows are
// separated by '/', for example ".#./..#/###".
package matrix

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"deedles.dev/xiter"
)

var (
	ErrRagged      = errors.New("rows have different lengths")
	ErrInvalidCell = errors.New("invalid cell")
)

// Matrix is a width×height grid of booleans, indexed by (x, y) with (0, 0) at
// the top left.
type Matrix struct {
	width  int
	height int
	data   []bool
}

// New returns a matrix with every cell false.
func New(width, height int) *Matrix {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("matrix: negative size %d×%d", width, height))
	}
	return &Matrix{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// Parse parses the text form of a matrix. Surrounding whitespace is ignored.
func Parse(s string) (*Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return New(0, 0), nil
	}
	rows := strings.Split(s, "/")
	m := New(len(rows[0]), len(rows))
	for y, row := range xiter.Enumerate(slices.Values(rows)) {
		if len(row) != m.width {
			return nil, fmt.Errorf("parsing matrix %q: row %d: %w", s, y, ErrRagged)
		}
		for x := range len(row) {
			switch row[x] {
			case '#':
				m.Set(x, y, true)
			case '.':
			default:
				return nil, fmt.Errorf("parsing matrix %q: %q at (%d, %d): %w", s, row[x], x, y, ErrInvalidCell)
			}
		}
	}
	return m, nil
}

func (m *Matrix) Width() int  { return m.width }
func (m *Matrix) Height() int { return m.height }

func (m *Matrix) pos(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("matrix: (%d, %d) out of range for %d×%d matrix", x, y, m.width, m.height))
	}
	return x + y*m.width
}

// At returns the cell at (x, y). It panics if (x, y) is out of range.
func (m *Matrix) At(x, y int) bool {
	return m.data[m.pos(x, y)]
}

// Set sets the cell at (x, y). It panics if (x, y) is out of range.
func (m *Matrix) Set(x, y int, v bool) {
	m.data[m.pos(x, y)] = v
}

func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		width:  m.width,
		height: m.height,
		data:   slices.Clone(m.data),
	}
}

func (m *Matrix) Equal(o *Matrix) bool {
	return m.width == o.width && m.height == o.height && slices.Equal(m.data, o.data)
}

// All yields the cells in row-major order.
func (m *Matrix) All() iter.Seq[bool] {
	return slices.Values(m.data)
}

func (m *Matrix) CountTrue() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

func (m *Matrix) CountFalse() int {
	return len(m.data) - m.CountTrue()
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := range m.height {
		for x := range m.width {
			if m.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
