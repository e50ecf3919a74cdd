// Package ui is an interactive bubbletea demo of a responsive grid row.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Dicklesworthstone/termgrid/pkg/config"
	"github.com/Dicklesworthstone/termgrid/pkg/grid"
	"github.com/Dicklesworthstone/termgrid/pkg/responsive"
	"github.com/Dicklesworthstone/termgrid/pkg/stylecheck"
)

// ConfigReloadedMsg carries a configuration re-read from disk.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

var (
	justifyCycle = []grid.Justify{"", grid.JustifyStart, grid.JustifyEnd, grid.JustifyCenter, grid.JustifySpaceAround, grid.JustifySpaceBetween}
	alignCycle   = []grid.Align{"", grid.AlignTop, grid.AlignMiddle, grid.AlignBottom, grid.AlignStretch}
)

type gutterPreset struct {
	name   string
	gutter grid.Gutter
}

const defaultPreset = 2

var gutterPresets = []gutterPreset{
	{"none", grid.Gutter{}},
	{"fixed 2", grid.Single(grid.Fixed(2))},
	{"responsive", grid.Single(grid.ByBreakpoint(map[responsive.Breakpoint]int{
		responsive.XS: 1,
		responsive.MD: 2,
		responsive.XL: 4,
	}))},
	{"responsive pair", grid.Pair(
		grid.ByBreakpoint(map[responsive.Breakpoint]int{responsive.SM: 2, responsive.LG: 4}),
		grid.ByBreakpoint(map[responsive.Breakpoint]int{responsive.XS: 0, responsive.LG: 1}),
	)},
}

// sampleSpans sizes the demo columns.
var sampleSpans = []int{6, 6, 6, 6, 8, 8, 8, 12, 12}

// Model is the demo's bubbletea model.
type Model struct {
	cfg       config.Config
	observer  *responsive.Observer
	row       *grid.Row
	nativeGap bool
	probe     stylecheck.Probe

	justify int
	align   int
	preset  int

	viewport viewport.Model
	help     HelpOverlayModel
	theme    Theme
	logger   *log.Logger

	width  int
	height int
	ready  bool
	status string

	copy func(string) error
}

// Option configures the Model.
type Option func(*Model)

// WithLogger sets the model's logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithProbe replaces the native gap probe.
func WithProbe(p stylecheck.Probe) Option {
	return func(m *Model) {
		m.probe = p
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// NewModel creates the demo model and mounts its row on a fresh observer.
func NewModel(cfg config.Config, opts ...Option) *Model {
	m := &Model{
		cfg:    cfg,
		theme:  DefaultTheme(),
		logger: log.New(io.Discard),
		preset: defaultPreset,
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.help = NewHelpOverlayModel(m.theme)
	m.observer = responsive.NewObserver(
		responsive.WithThresholds(cfg.Thresholds()),
		responsive.WithLogger(m.logger),
	)
	m.nativeGap = grid.NewEnv(cfg, m.probe).NativeGap
	m.row = &grid.Row{
		Gutter:    gutterPresets[m.preset].gutter,
		ClassName: "demo",
	}
	m.row.OnChange = func(s responsive.ScreenMap) {
		m.logger.Debug("row screens changed", "largest", s.Largest())
	}
	m.row.Mount(m.observer)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close unmounts the row.
func (m *Model) Close() {
	m.row.Unmount()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.observer.HandleMsg(msg)
		m.resize()

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.status = "config: " + msg.Err.Error()
			m.logger.Warn("config reload failed", "err", msg.Err)
			break
		}
		m.applyConfig(msg.Config)
		m.status = "config reloaded"

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "?":
			m.help.Toggle()
		case "j":
			m.justify = (m.justify + 1) % len(justifyCycle)
		case "a":
			m.align = (m.align + 1) % len(alignCycle)
		case "b":
			m.preset = (m.preset + 1) % len(gutterPresets)
			m.row.Gutter = gutterPresets[m.preset].gutter
			m.resync()
		case "w":
			m.toggleWrap()
		case "r":
			if m.cfg.IsRTL() {
				m.cfg.Direction = config.LTR
			} else {
				m.cfg.Direction = config.RTL
			}
		case "g":
			m.nativeGap = !m.nativeGap
		case "y":
			if err := m.copy(m.Summary()); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied"
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	m.refresh()
	return m, nil
}

func (m *Model) toggleWrap() {
	if m.row.Wrap == nil || *m.row.Wrap {
		off := false
		m.row.Wrap = &off
		return
	}
	m.row.Wrap = nil
}

// resync remounts the row so a newly responsive gutter picks up the
// current screens.
func (m *Model) resync() {
	m.row.Unmount()
	m.row.Mount(m.observer)
}

func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	m.nativeGap = grid.NewEnv(cfg, m.probe).NativeGap

	m.row.Unmount()
	m.observer = responsive.NewObserver(
		responsive.WithThresholds(cfg.Thresholds()),
		responsive.WithLogger(m.logger),
	)
	if m.width > 0 {
		m.observer.Update(m.width)
	}
	m.row.Mount(m.observer)
}

func (m *Model) env() grid.Env {
	return grid.Env{Config: m.cfg, NativeGap: m.nativeGap}
}

func (m *Model) rendered() grid.Rendered {
	m.row.Justify = justifyCycle[m.justify]
	m.row.Align = alignCycle[m.align]
	return m.row.Render(m.env())
}

// Summary describes the rendered row as class and style text.
func (m *Model) Summary() string {
	r := m.rendered()
	return fmt.Sprintf("class=%q style=%q", r.ClassName(), r.Style.String())
}

// SampleColumns returns the demo's columns colored with t.
func SampleColumns(t Theme) []grid.Col {
	cols := make([]grid.Col, len(sampleSpans))
	for i, span := range sampleSpans {
		style := t.Renderer.NewStyle().Foreground(t.CellColor(i)).Bold(true)
		content := style.Render(fmt.Sprintf("col %d", i+1)) + "\n" +
			t.Renderer.NewStyle().Foreground(t.Subtext).Render(fmt.Sprintf("span %d", span))
		cols[i] = grid.Col{Span: span, Content: content}
	}
	return cols
}

// DefaultGutter is the gutter the demo starts with.
func DefaultGutter() grid.Gutter {
	return gutterPresets[defaultPreset].gutter
}

const (
	headerHeight = 2
	footerHeight = 2
)

func (m *Model) resize() {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(grid.Layout(m.rendered(), SampleColumns(m.theme), m.width))
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	r := m.rendered()
	gutter := r.Context.Gutter
	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	subStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	mode := "margins"
	if m.nativeGap {
		mode = "gap"
	}
	header := titleStyle.Render("termgrid") + " " + subStyle.Render(fmt.Sprintf(
		"%d cols • %s • gutter %s [%d %d] • %s",
		m.width, m.observer.Screens().Largest(), gutterPresets[m.preset].name, gutter[0], gutter[1], mode,
	))
	classes := subStyle.Render(r.ClassName())

	footer := subStyle.Render(r.Style.String())
	status := m.status
	if status == "" {
		status = "? for help"
	}

	return strings.Join([]string{
		header,
		classes,
		m.viewport.View(),
		footer,
		subStyle.Italic(true).Render(status),
	}, "\n")
}
