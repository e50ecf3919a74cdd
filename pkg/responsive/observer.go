package responsive

import (
	"io"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Token identifies a subscription. Tokens are never reused by an Observer.
type Token int

// Source reports terminal widths to an Observer. Start is called when the
// first subscriber arrives and Stop when the last one leaves.
type Source interface {
	Start(onWidth func(width int)) error
	Stop()
}

// Observer fans screen state changes out to subscribers. Dispatches are
// delivered one at a time in the order their states were stored, so
// subscribers always end on the newest state. Subscribers must not call
// Update or Dispatch from inside their callback.
type Observer struct {
	// dispatchMu serializes store and fan-out; mu guards the fields below.
	dispatchMu sync.Mutex
	mu         sync.Mutex
	thresholds Thresholds
	screens    ScreenMap
	subs       map[Token]func(ScreenMap)
	lastToken  Token
	source     Source
	running    bool
	logger     *log.Logger
}

// Option configures an Observer.
type Option func(*Observer)

// WithThresholds replaces the default breakpoint widths.
func WithThresholds(t Thresholds) Option {
	return func(o *Observer) {
		if len(t) > 0 {
			o.thresholds = t
		}
	}
}

// WithSource attaches a width source that runs while anyone is subscribed.
func WithSource(s Source) Option {
	return func(o *Observer) {
		o.source = s
	}
}

// WithLogger sets the logger used for subscription and dispatch events.
func WithLogger(l *log.Logger) Option {
	return func(o *Observer) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewObserver creates an Observer whose initial state matches every
// breakpoint.
func NewObserver(opts ...Option) *Observer {
	o := &Observer{
		thresholds: DefaultThresholds(),
		screens:    AllScreens(),
		subs:       make(map[Token]func(ScreenMap)),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Subscribe registers fn and immediately calls it with the current screens.
func (o *Observer) Subscribe(fn func(ScreenMap)) Token {
	o.mu.Lock()
	startSource := len(o.subs) == 0 && o.source != nil && !o.running
	if startSource {
		o.running = true
	}
	o.lastToken++
	token := o.lastToken
	o.subs[token] = fn
	o.mu.Unlock()

	o.logger.Debug("subscribed", "token", token)
	if startSource {
		if err := o.source.Start(o.Update); err != nil {
			o.logger.Warn("width source failed to start", "err", err)
			o.mu.Lock()
			o.running = false
			o.mu.Unlock()
		}
	}

	o.dispatchMu.Lock()
	fn(o.Screens())
	o.dispatchMu.Unlock()
	return token
}

// Unsubscribe removes the subscription. Unknown tokens are ignored.
func (o *Observer) Unsubscribe(token Token) {
	o.mu.Lock()
	if _, ok := o.subs[token]; !ok {
		o.mu.Unlock()
		return
	}
	delete(o.subs, token)
	stopSource := len(o.subs) == 0 && o.running
	if stopSource {
		o.running = false
	}
	o.mu.Unlock()

	o.logger.Debug("unsubscribed", "token", token)
	if stopSource {
		o.source.Stop()
	}
}

// Dispatch replaces the current screens and notifies every subscriber.
func (o *Observer) Dispatch(screens ScreenMap) {
	o.dispatchMu.Lock()
	defer o.dispatchMu.Unlock()

	o.mu.Lock()
	o.screens = screens.Clone()
	fns := o.snapshot()
	o.mu.Unlock()

	o.notify(fns, screens)
}

// Update matches width against the thresholds and dispatches only when the
// resulting screens differ from the current ones.
func (o *Observer) Update(width int) {
	o.dispatchMu.Lock()
	defer o.dispatchMu.Unlock()

	o.mu.Lock()
	next := o.thresholds.Match(width)
	if next.Equal(o.screens) {
		o.mu.Unlock()
		return
	}
	o.screens = next.Clone()
	fns := o.snapshot()
	o.mu.Unlock()

	o.notify(fns, next)
}

func (o *Observer) notify(fns []func(ScreenMap), screens ScreenMap) {
	o.logger.Debug("dispatch", "largest", screens.Largest(), "subscribers", len(fns))
	for _, fn := range fns {
		fn(screens.Clone())
	}
}

// HandleMsg feeds bubbletea window size messages into Update. Other
// messages are ignored.
func (o *Observer) HandleMsg(msg tea.Msg) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		o.Update(ws.Width)
	}
}

// Screens returns a copy of the current screen state.
func (o *Observer) Screens() ScreenMap {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.screens.Clone()
}

// Len returns the number of active subscriptions.
func (o *Observer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// snapshot returns subscribers in subscription order. Callers hold mu.
func (o *Observer) snapshot() []func(ScreenMap) {
	tokens := make([]Token, 0, len(o.subs))
	for t := range o.subs {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	fns := make([]func(ScreenMap), 0, len(tokens))
	for _, t := range tokens {
		fns = append(fns, o.subs[t])
	}
	return fns
}
