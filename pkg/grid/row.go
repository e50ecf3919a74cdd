package grid

import (
	"strings"
	"sync"

	"github.com/Dicklesworthstone/termgrid/pkg/config"
	"github.com/Dicklesworthstone/termgrid/pkg/responsive"
	"github.com/Dicklesworthstone/termgrid/pkg/stylecheck"
)

// Align is the cross axis placement of columns within a line.
type Align string

const (
	AlignTop     Align = "top"
	AlignMiddle  Align = "middle"
	AlignBottom  Align = "bottom"
	AlignStretch Align = "stretch"
)

// Justify is the main axis distribution of columns within a line.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyEnd          Justify = "end"
	JustifyCenter       Justify = "center"
	JustifySpaceAround  Justify = "space-around"
	JustifySpaceBetween Justify = "space-between"
)

// Subscriber delivers screen state changes. *responsive.Observer
// implements it.
type Subscriber interface {
	Subscribe(fn func(responsive.ScreenMap)) responsive.Token
	Unsubscribe(token responsive.Token)
}

// Env is the ambient state a row renders against.
type Env struct {
	Config    config.Config
	NativeGap bool
}

// NewEnv resolves gap support from the config, falling back to probe. A nil
// probe uses stylecheck.DetectGapSupport.
func NewEnv(cfg config.Config, probe stylecheck.Probe) Env {
	if cfg.NativeGap != nil {
		return Env{Config: cfg, NativeGap: *cfg.NativeGap}
	}
	if probe == nil {
		probe = stylecheck.DetectGapSupport
	}
	return Env{Config: cfg, NativeGap: probe()}
}

// Rendered is the output of Row.Render.
type Rendered struct {
	Classes []string
	Style   Style
	Context RowContext

	Justify Justify
	Align   Align
	RTL     bool
}

// ClassName joins the class list with spaces.
func (r Rendered) ClassName() string {
	return strings.Join(r.Classes, " ")
}

// Row is a responsive container of columns. Its exported fields are props:
// set them before Mount, or from the goroutine that delivers screen updates.
type Row struct {
	Gutter    Gutter
	Align     Align
	Justify   Justify
	Wrap      *bool
	PrefixCls string
	ClassName string
	Style     Style

	// OnChange is called after a screen update has been stored, typically
	// to schedule a redraw.
	OnChange func(responsive.ScreenMap)

	mu      sync.Mutex
	screens responsive.ScreenMap
	sub     Subscriber
	token   responsive.Token
	mounted bool
}

// Mount subscribes the row to screen changes. Mounting twice is a no-op.
func (r *Row) Mount(sub Subscriber) {
	r.mu.Lock()
	if r.mounted {
		r.mu.Unlock()
		return
	}
	r.mounted = true
	r.sub = sub
	r.mu.Unlock()

	token := sub.Subscribe(r.onScreens)

	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
}

// Unmount releases the subscription taken by Mount. Only the first call
// after a Mount unsubscribes.
func (r *Row) Unmount() {
	r.mu.Lock()
	if !r.mounted {
		r.mu.Unlock()
		return
	}
	sub, token := r.sub, r.token
	r.mounted = false
	r.sub = nil
	r.mu.Unlock()

	sub.Unsubscribe(token)
}

// onScreens stores the update only for breakpoint dependent gutters; fixed
// gutters cannot change with the screens so the redraw is skipped.
func (r *Row) onScreens(screens responsive.ScreenMap) {
	r.mu.Lock()
	if !r.Gutter.Responsive() {
		r.mu.Unlock()
		return
	}
	r.screens = screens.Clone()
	onChange := r.OnChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(screens)
	}
}

// Screens returns the screen state the row last stored. Before any update
// every breakpoint matches.
func (r *Row) Screens() responsive.ScreenMap {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.screens == nil {
		return responsive.AllScreens()
	}
	return r.screens.Clone()
}

// Gutters resolves the row's gutter against its stored screens.
func (r *Row) Gutters() [2]int {
	return ResolveGutter(r.Gutter, r.Screens())
}

// Render computes the row's classes, style and column context.
func (r *Row) Render(env Env) Rendered {
	gutter := r.Gutters()
	prefix := env.Config.PrefixCls("row", r.PrefixCls)
	rtl := env.Config.IsRTL()

	classes := classList(
		prefix,
		when(r.Wrap != nil && !*r.Wrap, prefix+"-no-wrap"),
		when(r.Justify != "", prefix+"-"+string(r.Justify)),
		when(r.Align != "", prefix+"-"+string(r.Align)),
		when(rtl, prefix+"-rtl"),
		r.ClassName,
	)

	var style Style
	if env.NativeGap {
		style = gapStyle(gutter)
	} else {
		style = marginStyle(gutter)
	}

	return Rendered{
		Classes: classes,
		Style:   style.Merge(r.Style),
		Context: RowContext{
			Gutter:    gutter,
			Wrap:      r.Wrap,
			NativeGap: env.NativeGap,
		},
		Justify: r.Justify,
		Align:   r.Align,
		RTL:     rtl,
	}
}
