package matrix

// Slice returns a copy of the width×height region whose top left corner is
// (x, y).
func (m *Matrix) Slice(x, y, width, height int) *Matrix {
	r := New(width, height)
	for dy := range height {
		for dx := range width {
			r.Set(dx, dy, m.At(x+dx, y+dy))
		}
	}
	return r
}

// FillWith sets every cell of the width×height region at (x, y) to v.
func (m *Matrix) FillWith(x, y, width, height int, v bool) {
	for dy := range height {
		for dx := range width {
			m.Set(x+dx, y+dy, v)
		}
	}
}

func (m *Matrix) FillTrue(x, y, width, height int) {
	m.FillWith(x, y, width, height, true)
}

func (m *Matrix) FillFalse(x, y, width, height int) {
	m.FillWith(x, y, width, height, false)
}

// FillFrom copies src into m with src's top left corner at (x, y).
func (m *Matrix) FillFrom(x, y int, src *Matrix) {
	for sy := range src.height {
		for sx := range src.width {
			m.Set(x+sx, y+sy, src.At(sx, sy))
		}
	}
}

// Invert negates every cell of the width×height region at (x, y).
func (m *Matrix) Invert(x, y, width, height int) {
	for dy := range height {
		for dx := range width {
			m.Set(x+dx, y+dy, !m.At(x+dx, y+dy))
		}
	}
}

// Row returns row y as a width×1 matrix.
func (m *Matrix) Row(y int) *Matrix {
	return m.Slice(0, y, m.width, 1)
}

// Col returns column x as a 1×height matrix.
func (m *Matrix) Col(x int) *Matrix {
	return m.Slice(x, 0, 1, m.height)
}

// RotateRow rotates row y by steps cells towards x = 0. Cells shifted off the
// left edge reappear on the right.
func (m *Matrix) RotateRow(y, steps int) {
	if m.width == 0 {
		return
	}
	row := m.Row(y)
	for x := range m.width {
		m.Set(x, y, row.At(mod(x+steps, m.width), 0))
	}
}

// RotateCol rotates column x by steps cells towards y = 0. Cells shifted off
// the top edge reappear at the bottom.
func (m *Matrix) RotateCol(x, steps int) {
	if m.height == 0 {
		return
	}
	col := m.Col(x)
	for y := range m.height {
		m.Set(x, y, col.At(0, mod(y+steps, m.height)))
	}
}

// Rot90 returns m rotated a quarter turn counterclockwise, as displayed with y
// pointing down. The result is height×width.
func (m *Matrix) Rot90() *Matrix {
	r := New(m.height, m.width)
	for y := range m.height {
		for x := range m.width {
			r.Set(y, m.width-x-1, m.At(x, y))
		}
	}
	return r
}

// Flip returns m mirrored left to right.
func (m *Matrix) Flip() *Matrix {
	r := New(m.width, m.height)
	for y := range m.height {
		for x := range m.width {
			r.Set(m.width-x-1, y, m.At(x, y))
		}
	}
	return r
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
