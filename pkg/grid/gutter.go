// Package grid implements a responsive row of columns for terminal layouts.
// A Row resolves its gutter against the active breakpoints, emits the class
// list and style that describe it and lays out Col values into lines.
package grid

import "github.com/Dicklesworthstone/termgrid/pkg/responsive"

// AxisGutter is the spacing along one axis: either a fixed number of cells
// or a value per breakpoint.
type AxisGutter struct {
	value int
	byBP  map[responsive.Breakpoint]int
}

// Fixed returns a gutter of n cells regardless of terminal width.
func Fixed(n int) AxisGutter {
	return AxisGutter{value: n}
}

// ByBreakpoint returns a gutter that depends on the active breakpoints.
// Breakpoints missing from m do not contribute.
func ByBreakpoint(m map[responsive.Breakpoint]int) AxisGutter {
	cp := make(map[responsive.Breakpoint]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return AxisGutter{byBP: cp}
}

// Responsive reports whether the value depends on the breakpoints.
func (a AxisGutter) Responsive() bool {
	return a.byBP != nil
}

// Resolve returns the gutter for the given screen state. Breakpoints are
// checked from widest to narrowest and the first one that is both active
// and present in the mapping wins; no match resolves to 0.
func (a AxisGutter) Resolve(screens responsive.ScreenMap) int {
	if !a.Responsive() {
		return a.value
	}
	for _, bp := range responsive.Widest {
		if !screens[bp] {
			continue
		}
		if v, ok := a.byBP[bp]; ok {
			return v
		}
	}
	return 0
}

// Gutter is the row spacing: index 0 is horizontal, index 1 vertical. The
// zero value means no spacing.
type Gutter [2]AxisGutter

// Single returns a horizontal-only gutter; the vertical axis is 0.
func Single(h AxisGutter) Gutter {
	return Gutter{h, Fixed(0)}
}

// Pair returns a gutter with both axes set.
func Pair(h, v AxisGutter) Gutter {
	return Gutter{h, v}
}

// Responsive reports whether either axis depends on the breakpoints.
func (g Gutter) Responsive() bool {
	return g[0].Responsive() || g[1].Responsive()
}

// ResolveGutter computes the concrete [horizontal, vertical] spacing.
// Negative values are passed through unchanged.
func ResolveGutter(g Gutter, screens responsive.ScreenMap) [2]int {
	return [2]int{g[0].Resolve(screens), g[1].Resolve(screens)}
}
