package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/termgrid/pkg/config"
	"github.com/Dicklesworthstone/termgrid/pkg/responsive"
	"github.com/Dicklesworthstone/termgrid/pkg/stylecheck"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	opts = append([]Option{WithProbe(stylecheck.Fixed(true)), WithClipboard(func(string) error { return nil })}, opts...)
	m := NewModel(config.Default(), opts...)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(config.Default(), WithProbe(stylecheck.Fixed(true)))
	defer m.Close()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestWindowSizeDrivesGutter(t *testing.T) {
	m := newTestModel(t)

	// Default preset is responsive: md=2, xl=4.
	if got := m.rendered().Context.Gutter; got != [2]int{2, 0} {
		t.Errorf("gutter at 100 cols = %v, want [2 0]", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	if got := m.rendered().Context.Gutter; got != [2]int{4, 0} {
		t.Errorf("gutter at 130 cols = %v, want [4 0]", got)
	}
	if !strings.Contains(m.View(), "130 cols • xl") {
		t.Errorf("header missing width and breakpoint:\n%s", m.View())
	}
}

func TestKeysChangeClasses(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("j"))
	m.Update(keyMsg("a"))
	m.Update(keyMsg("a"))
	m.Update(keyMsg("w"))
	m.Update(keyMsg("r"))

	got := m.rendered().ClassName()
	want := "tg-row tg-row-no-wrap tg-row-start tg-row-middle tg-row-rtl demo"
	if got != want {
		t.Errorf("classes = %q, want %q", got, want)
	}

	m.Update(keyMsg("w"))
	if strings.Contains(m.rendered().ClassName(), "no-wrap") {
		t.Error("second w did not re-enable wrapping")
	}
}

func TestGapToggleSwitchesStyle(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.Summary(), "column-gap:2") {
		t.Errorf("gap summary = %s", m.Summary())
	}

	m.Update(keyMsg("g"))
	if !strings.Contains(m.Summary(), "margin-left:-1") {
		t.Errorf("margin summary = %s", m.Summary())
	}
}

func TestGutterPresetResync(t *testing.T) {
	m := newTestModel(t)

	// responsive -> responsive pair; lg is active at 100 cols.
	m.Update(keyMsg("b"))
	if got := m.rendered().Context.Gutter; got != [2]int{4, 1} {
		t.Errorf("pair gutter = %v, want [4 1]", got)
	}

	// -> none -> fixed 2 -> responsive again. The resize arrives while the
	// gutter is fixed, so only the remount can pick it up.
	m.Update(keyMsg("b"))
	m.Update(keyMsg("b"))
	m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	m.Update(keyMsg("b"))
	if got := m.rendered().Context.Gutter; got != [2]int{0, 0} {
		t.Errorf("responsive gutter at 70 cols = %v, want [0 0]", got)
	}
}

func TestCopySummary(t *testing.T) {
	var copied string
	m := newTestModel(t, WithClipboard(func(s string) error { copied = s; return nil }))

	m.Update(keyMsg("y"))
	if copied != m.Summary() {
		t.Errorf("copied %q, want %q", copied, m.Summary())
	}
	if m.status != "copied" {
		t.Errorf("status = %q", m.status)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m.Update(keyMsg("y"))
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q", m.status)
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t)

	cfg := config.Default()
	cfg.Prefix = "ui"
	cfg.Breakpoints = map[string]int{"lg": 90, "xl": 100}
	m.Update(ConfigReloadedMsg{Config: cfg})

	if !strings.HasPrefix(m.rendered().ClassName(), "ui-row") {
		t.Errorf("classes = %q", m.rendered().ClassName())
	}
	if !m.observer.Screens()[responsive.XL] {
		t.Error("xl override not applied at 100 cols")
	}
	if got := m.rendered().Context.Gutter; got != [2]int{4, 0} {
		t.Errorf("gutter = %v, want [4 0]", got)
	}

	m.Update(ConfigReloadedMsg{Err: errors.New("bad yaml")})
	if !strings.Contains(m.status, "bad yaml") {
		t.Errorf("status = %q", m.status)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("?"))
	if !strings.Contains(m.View(), "Grid Row Help") {
		t.Error("help not shown")
	}
	m.Update(keyMsg("j"))
	if strings.Contains(m.View(), "Grid Row Help") {
		t.Error("help not closed by key")
	}
	if m.justify != 0 {
		t.Error("key that closed help also changed justify")
	}
}

func TestQuitUnmounts(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.observer.Len() != 0 {
		t.Errorf("observer has %d subscribers after quit", m.observer.Len())
	}
}
