package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layout draws cols into a block width cells wide. Gap rows separate
// columns with the native gap; margin rows pad each column by half a gutter
// and trim the overhang at the edges, which draws the same picture.
func Layout(r Rendered, cols []Col, width int) string {
	if width <= 0 || len(cols) == 0 {
		return ""
	}
	h, v := nonNegative(r.Context.Gutter[0]), nonNegative(r.Context.Gutter[1])
	inner := width + h

	lines := pack(cols, inner, h, r.Context.Wraps())
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if r.Context.NativeGap {
			out = append(out, gapLine(r, line, width, h))
		} else {
			out = append(out, marginLine(r, line, width, h, v))
		}
	}

	if r.Context.NativeGap {
		return joinWithGap(out, width, v)
	}
	return trimRows(strings.Join(out, "\n"), v/2, v-v/2)
}

// pack splits cols into lines no wider than inner. Without wrapping every
// column stays on the first line.
func pack(cols []Col, inner, gutter int, wrap bool) [][]slot {
	var lines [][]slot
	var cur []slot
	used := 0
	for _, c := range cols {
		s := measure(c, inner, gutter)
		if wrap && len(cur) > 0 && used+s.width() > inner {
			lines = append(lines, cur)
			cur, used = nil, 0
		}
		cur = append(cur, s)
		used += s.width()
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// spacing returns the free cells before each slot and, at index n, after
// the last one.
func spacing(j Justify, n, free int) []int {
	lead := make([]int, n+1)
	if free <= 0 {
		return lead
	}
	switch j {
	case JustifyEnd:
		lead[0] = free
	case JustifyCenter:
		lead[0] = free / 2
		lead[n] = free - free/2
	case JustifySpaceBetween:
		if n == 1 {
			lead[n] = free
			break
		}
		each, extra := free/(n-1), free%(n-1)
		for i := 1; i < n; i++ {
			lead[i] = each
			if i <= extra {
				lead[i]++
			}
		}
	case JustifySpaceAround:
		each, extra := free/n, free%n
		for i := 0; i < n; i++ {
			e := each
			if i < extra {
				e++
			}
			lead[i] += e / 2
			lead[i+1] += e - e/2
		}
	default:
		lead[n] = free
	}
	return lead
}

func lineFree(line []slot, inner int) int {
	used := 0
	for _, s := range line {
		used += s.width()
	}
	return inner - used
}

func position(a Align) lipgloss.Position {
	switch a {
	case AlignMiddle:
		return lipgloss.Center
	case AlignBottom:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// cell truncates every content line to the slot and pads it to full width.
func cell(s slot) string {
	if s.content == 0 {
		return ""
	}
	rows := strings.Split(s.col.Content, "\n")
	for i, row := range rows {
		rows[i] = ansi.Truncate(row, s.content, "…")
	}
	return lipgloss.PlaceHorizontal(s.content, lipgloss.Left, strings.Join(rows, "\n"))
}

func lineHeight(line []slot) int {
	height := 1
	for _, s := range line {
		if h := lipgloss.Height(s.col.Content); h > height {
			height = h
		}
	}
	return height
}

func spacer(width, height int) string {
	if width <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// assemble lays segments left to right, mirrored for right-to-left rows.
func assemble(r Rendered, segs []string) string {
	kept := segs[:0]
	for _, s := range segs {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if r.RTL {
		for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
			kept[i], kept[j] = kept[j], kept[i]
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, kept...)
}

func gapLine(r Rendered, line []slot, width, h int) string {
	height := lineHeight(line)
	lead := spacing(r.Justify, len(line), lineFree(line, width+h))
	pos := position(r.Align)

	var segs []string
	for i, s := range line {
		segs = append(segs, spacer(lead[i], height))
		if i > 0 {
			segs = append(segs, spacer(h, height))
		}
		segs = append(segs, spacer(s.offset, height))
		segs = append(segs, placeCell(s, height, pos))
	}
	segs = append(segs, spacer(lead[len(line)], height))
	return fitWidth(assemble(r, segs), 0, width)
}

func marginLine(r Rendered, line []slot, width, h, v int) string {
	height := lineHeight(line)
	lead := spacing(r.Justify, len(line), lineFree(line, width+h))
	pos := position(r.Align)
	pad := Col{}.Padding(r.Context)
	padded := height + v

	var segs []string
	for i, s := range line {
		segs = append(segs, spacer(lead[i], padded))
		segs = append(segs, spacer(s.offset, padded))
		box := lipgloss.NewStyle().
			Padding(pad.Top, pad.Right, pad.Bottom, pad.Left).
			Render(placeCell(s, height, pos))
		segs = append(segs, box)
	}
	segs = append(segs, spacer(lead[len(line)], padded))
	return fitWidth(assemble(r, segs), h/2, width)
}

// placeCell renders a slot's content at full line height. Zero width slots
// still occupy their padding, so they render as an empty column.
func placeCell(s slot, height int, pos lipgloss.Position) string {
	c := cell(s)
	if c == "" {
		return spacer(0, height)
	}
	return lipgloss.PlaceVertical(height, pos, c)
}

// fitWidth drops skip cells from the left of every row and cuts or pads it
// to width.
func fitWidth(block string, skip, width int) string {
	rows := strings.Split(block, "\n")
	for i, row := range rows {
		row = ansi.Cut(row, skip, skip+width)
		if w := ansi.StringWidth(row); w < width {
			row += strings.Repeat(" ", width-w)
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func joinWithGap(lines []string, width, gap int) string {
	if gap == 0 {
		return strings.Join(lines, "\n")
	}
	sep := "\n" + spacer(width, gap) + "\n"
	return strings.Join(lines, sep)
}

// trimRows removes top rows from the start and bottom rows from the end.
func trimRows(block string, top, bottom int) string {
	rows := strings.Split(block, "\n")
	if top+bottom >= len(rows) {
		return ""
	}
	return strings.Join(rows[top:len(rows)-bottom], "\n")
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
