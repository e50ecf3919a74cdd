package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorSecondary = lipgloss.Color("#8BE9FD")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorWarning   = lipgloss.Color("#FFB86C")
	ColorDanger    = lipgloss.Color("#FF5555")
	ColorPink      = lipgloss.Color("#FF79C6")
	ColorYellow    = lipgloss.Color("#F1FA8C")
)

// Theme bundles the renderer and colors used by the demo views.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Subtext   lipgloss.Color
	Border    lipgloss.Color

	// Cells cycles through these for column contents.
	Cells []lipgloss.Color
}

// DefaultTheme returns the theme for the default renderer.
func DefaultTheme() Theme {
	return Theme{
		Renderer:  lipgloss.DefaultRenderer(),
		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Text:      ColorText,
		Subtext:   ColorSubtext,
		Border:    ColorBgHighlight,
		Cells: []lipgloss.Color{
			ColorSuccess,
			ColorSecondary,
			ColorWarning,
			ColorPink,
			ColorYellow,
			ColorDanger,
		},
	}
}

// CellColor returns the color for the i-th column.
func (t Theme) CellColor(i int) lipgloss.Color {
	if len(t.Cells) == 0 {
		return t.Text
	}
	return t.Cells[i%len(t.Cells)]
}
