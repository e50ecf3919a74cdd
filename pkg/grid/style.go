package grid

import (
	"sort"
	"strconv"
	"strings"
)

// Custom properties mirrored from the native gap values so nested
// components can compensate for the gap themselves.
const (
	VarColumnGap = "--column-gap"
	VarRowGap    = "--row-gap"
)

// Style is the inline style of a rendered row. Nil fields are unset.
type Style struct {
	ColumnGap *int
	RowGap    *int

	MarginLeft   *float64
	MarginRight  *float64
	MarginTop    *float64
	MarginBottom *float64

	Vars map[string]string
}

// Merge returns s overlaid with every field set in over. Vars merge per key.
func (s Style) Merge(over Style) Style {
	out := s
	if over.ColumnGap != nil {
		out.ColumnGap = over.ColumnGap
	}
	if over.RowGap != nil {
		out.RowGap = over.RowGap
	}
	if over.MarginLeft != nil {
		out.MarginLeft = over.MarginLeft
	}
	if over.MarginRight != nil {
		out.MarginRight = over.MarginRight
	}
	if over.MarginTop != nil {
		out.MarginTop = over.MarginTop
	}
	if over.MarginBottom != nil {
		out.MarginBottom = over.MarginBottom
	}
	if len(s.Vars) > 0 || len(over.Vars) > 0 {
		out.Vars = make(map[string]string, len(s.Vars)+len(over.Vars))
		for k, v := range s.Vars {
			out.Vars[k] = v
		}
		for k, v := range over.Vars {
			out.Vars[k] = v
		}
	}
	return out
}

// Gap returns the native column and row gaps, 0 when unset.
func (s Style) Gap() (column, row int) {
	if s.ColumnGap != nil {
		column = *s.ColumnGap
	}
	if s.RowGap != nil {
		row = *s.RowGap
	}
	return column, row
}

// String renders the style as CSS-like declarations in a stable order.
func (s Style) String() string {
	var decls []string
	addInt := func(name string, v *int) {
		if v != nil {
			decls = append(decls, name+":"+strconv.Itoa(*v))
		}
	}
	addFloat := func(name string, v *float64) {
		if v != nil {
			decls = append(decls, name+":"+strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}

	addInt("column-gap", s.ColumnGap)
	addInt("row-gap", s.RowGap)
	addFloat("margin-left", s.MarginLeft)
	addFloat("margin-right", s.MarginRight)
	addFloat("margin-top", s.MarginTop)
	addFloat("margin-bottom", s.MarginBottom)

	keys := make([]string, 0, len(s.Vars))
	for k := range s.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		decls = append(decls, k+":"+s.Vars[k])
	}
	return strings.Join(decls, ";")
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// gapStyle uses the platform's native gap properties.
func gapStyle(gutter [2]int) Style {
	s := Style{Vars: map[string]string{
		VarColumnGap: "0px",
		VarRowGap:    "0px",
	}}
	if gutter[0] > 0 {
		s.ColumnGap = intPtr(gutter[0])
		s.Vars[VarColumnGap] = strconv.Itoa(gutter[0]) + "px"
	}
	if gutter[1] > 0 {
		s.RowGap = intPtr(gutter[1])
		s.Vars[VarRowGap] = strconv.Itoa(gutter[1]) + "px"
	}
	return s
}

// marginStyle pulls the row outwards by half a gutter on each side so the
// padding columns add around themselves lines up with the row edges.
func marginStyle(gutter [2]int) Style {
	var s Style
	if gutter[0] > 0 {
		h := float64(gutter[0]) / -2
		s.MarginLeft, s.MarginRight = floatPtr(h), floatPtr(h)
	}
	if gutter[1] > 0 {
		v := float64(gutter[1]) / -2
		s.MarginTop, s.MarginBottom = floatPtr(v), floatPtr(v)
	}
	return s
}
