package grid

import "github.com/charmbracelet/lipgloss"

// Columns is the number of span units in a full row.
const Columns = 24

// Col is one cell of a row. Span and Offset are in 1/24ths of the row; a
// zero Span sizes the column to its content.
type Col struct {
	Span    int
	Offset  int
	Content string
}

// Padding is the space a column adds around its content, in cells.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Padding returns the half gutters the column contributes when its row
// compensates with margins. Rows with native gaps need no column padding.
func (c Col) Padding(ctx RowContext) Padding {
	if ctx.NativeGap {
		return Padding{}
	}
	var p Padding
	if h := ctx.Gutter[0]; h > 0 {
		p.Left, p.Right = h/2, h-h/2
	}
	if v := ctx.Gutter[1]; v > 0 {
		p.Top, p.Bottom = v/2, v-v/2
	}
	return p
}

func clampSpan(n int) int {
	switch {
	case n < 0:
		return 0
	case n > Columns:
		return Columns
	}
	return n
}

// slot is a column measured against a line. outer includes one gutter,
// content excludes it.
type slot struct {
	col     Col
	offset  int
	outer   int
	content int
}

func measure(c Col, inner, gutter int) slot {
	s := slot{col: c, offset: clampSpan(c.Offset) * inner / Columns}
	if span := clampSpan(c.Span); span > 0 {
		s.outer = span * inner / Columns
		s.content = s.outer - gutter
	} else {
		s.content = lipgloss.Width(c.Content)
		s.outer = s.content + gutter
	}
	if s.content < 0 {
		s.content = 0
		s.outer = gutter
	}
	return s
}

func (s slot) width() int {
	return s.offset + s.outer
}
