// Package responsive tracks which width breakpoints the terminal currently
// matches and notifies subscribers when that changes.
package responsive

import "fmt"

// Breakpoint names a terminal width threshold.
type Breakpoint string

const (
	XS  Breakpoint = "xs"
	SM  Breakpoint = "sm"
	MD  Breakpoint = "md"
	LG  Breakpoint = "lg"
	XL  Breakpoint = "xl"
	XXL Breakpoint = "xxl"
)

// Breakpoints lists every breakpoint from narrowest to widest.
var Breakpoints = []Breakpoint{XS, SM, MD, LG, XL, XXL}

// Widest lists every breakpoint from widest to narrowest. Responsive values
// are looked up in this order so the largest active breakpoint wins.
var Widest = []Breakpoint{XXL, XL, LG, MD, SM, XS}

// ParseBreakpoint returns the breakpoint with the given name.
func ParseBreakpoint(name string) (Breakpoint, error) {
	for _, bp := range Breakpoints {
		if string(bp) == name {
			return bp, nil
		}
	}
	return "", fmt.Errorf("unknown breakpoint %q", name)
}

// ScreenMap records whether each breakpoint currently matches.
type ScreenMap map[Breakpoint]bool

// AllScreens returns a map with every breakpoint matching. Rows start from
// this state until the first update arrives.
func AllScreens() ScreenMap {
	m := make(ScreenMap, len(Breakpoints))
	for _, bp := range Breakpoints {
		m[bp] = true
	}
	return m
}

// Clone returns a copy of the map.
func (m ScreenMap) Clone() ScreenMap {
	out := make(ScreenMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps agree on every breakpoint.
func (m ScreenMap) Equal(other ScreenMap) bool {
	for _, bp := range Breakpoints {
		if m[bp] != other[bp] {
			return false
		}
	}
	return true
}

// Largest returns the widest matching breakpoint, or "" if none match.
func (m ScreenMap) Largest() Breakpoint {
	for _, bp := range Widest {
		if m[bp] {
			return bp
		}
	}
	return ""
}

// Thresholds maps sm and wider breakpoints to their minimum width in cells.
// xs has no width of its own: it matches exactly when sm does not.
type Thresholds map[Breakpoint]int

// DefaultThresholds are tuned for common terminal sizes.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SM:  60,
		MD:  80,
		LG:  100,
		XL:  120,
		XXL: 160,
	}
}

// Match computes the screen state for a terminal of the given width.
func (t Thresholds) Match(width int) ScreenMap {
	m := make(ScreenMap, len(Breakpoints))
	for _, bp := range Breakpoints[1:] {
		m[bp] = width >= t[bp]
	}
	m[XS] = !m[SM]
	return m
}

// Ordered reports whether every breakpoint's width is at least the width of
// the one below it. It returns the first breakpoint that breaks the order.
func (t Thresholds) Ordered() (Breakpoint, bool) {
	for i := 2; i < len(Breakpoints); i++ {
		if t[Breakpoints[i]] < t[Breakpoints[i-1]] {
			return Breakpoints[i], false
		}
	}
	return "", true
}
