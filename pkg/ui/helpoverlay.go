package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel lists the demo's key bindings.
type HelpOverlayModel struct {
	visible bool
	theme   Theme
}

// NewHelpOverlayModel creates a hidden help overlay.
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{theme: theme}
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// Update closes the overlay on any key.
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.visible = false
	}
	return m, nil
}

// helpSections groups bindings for display.
var helpSections = []struct {
	title string
	keys  []struct{ key, desc string }
}{
	{
		title: "LAYOUT",
		keys: []struct{ key, desc string }{
			{"j", "Cycle justify"},
			{"a", "Cycle align"},
			{"b", "Cycle gutter preset"},
			{"w", "Toggle wrap"},
			{"r", "Toggle right-to-left"},
			{"g", "Toggle native gap / margins"},
		},
	},
	{
		title: "VIEW",
		keys: []struct{ key, desc string }{
			{"↑/↓", "Scroll"},
			{"y", "Copy classes and style"},
			{"?", "Toggle this help"},
			{"q/Ctrl+C", "Quit"},
		},
	},
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Grid Row Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	for _, s := range helpSections {
		b.WriteString(sectionStyle.Render(s.title) + "\n")
		for _, k := range s.keys {
			b.WriteString("  " + keyStyle.Render(k.key) + descStyle.Render(k.desc) + "\n")
		}
		b.WriteString("\n")
	}

	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
