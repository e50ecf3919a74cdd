package responsive

import (
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestThresholdsMatch(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  []Breakpoint
	}{
		{"tiny", 40, []Breakpoint{XS}},
		{"just below sm", 59, []Breakpoint{XS}},
		{"sm", 60, []Breakpoint{SM}},
		{"md", 80, []Breakpoint{SM, MD}},
		{"lg", 119, []Breakpoint{SM, MD, LG}},
		{"xl", 120, []Breakpoint{SM, MD, LG, XL}},
		{"xxl", 200, []Breakpoint{SM, MD, LG, XL, XXL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultThresholds().Match(tt.width)
			want := ScreenMap{}
			for _, bp := range tt.want {
				want[bp] = true
			}
			if !got.Equal(want) {
				t.Errorf("Match(%d) = %v, want %v", tt.width, got, want)
			}
		})
	}
}

func TestMatchDerivesXsFromSm(t *testing.T) {
	th := DefaultThresholds()
	th[SM] = 70
	for width := 0; width < 200; width++ {
		s := th.Match(width)
		if s[XS] == s[SM] {
			t.Fatalf("Match(%d): xs=%v sm=%v, want exactly one", width, s[XS], s[SM])
		}
	}
}

func TestThresholdsOrdered(t *testing.T) {
	if bp, ok := DefaultThresholds().Ordered(); !ok {
		t.Errorf("defaults out of order at %s", bp)
	}
	th := DefaultThresholds()
	th[LG] = 70
	if bp, ok := th.Ordered(); ok || bp != LG {
		t.Errorf("Ordered() = %q, %v, want lg, false", bp, ok)
	}
	th = DefaultThresholds()
	th[LG] = th[MD]
	if _, ok := th.Ordered(); !ok {
		t.Error("equal widths reported out of order")
	}
}

func TestAllScreensAndLargest(t *testing.T) {
	s := AllScreens()
	for _, bp := range Breakpoints {
		if !s[bp] {
			t.Errorf("AllScreens()[%s] = false", bp)
		}
	}
	if got := s.Largest(); got != XXL {
		t.Errorf("Largest() = %q, want xxl", got)
	}
	if got := (ScreenMap{}).Largest(); got != "" {
		t.Errorf("empty Largest() = %q, want empty", got)
	}
}

func TestParseBreakpoint(t *testing.T) {
	if bp, err := ParseBreakpoint("md"); err != nil || bp != MD {
		t.Errorf("ParseBreakpoint(md) = %q, %v", bp, err)
	}
	if _, err := ParseBreakpoint("huge"); err == nil {
		t.Error("expected error for unknown breakpoint")
	}
}

func TestSubscribeCallsImmediately(t *testing.T) {
	o := NewObserver()
	var got []ScreenMap
	o.Subscribe(func(s ScreenMap) { got = append(got, s) })

	if len(got) != 1 {
		t.Fatalf("expected 1 immediate call, got %d", len(got))
	}
	if !got[0].Equal(AllScreens()) {
		t.Errorf("initial screens = %v, want all matching", got[0])
	}
}

func TestTokensAreUnique(t *testing.T) {
	o := NewObserver()
	a := o.Subscribe(func(ScreenMap) {})
	o.Unsubscribe(a)
	b := o.Subscribe(func(ScreenMap) {})
	if a == b {
		t.Errorf("token %d reused", a)
	}
}

func TestUpdateDispatchesOnlyOnChange(t *testing.T) {
	o := NewObserver()
	calls := 0
	o.Subscribe(func(ScreenMap) { calls++ })
	calls = 0

	o.Update(90)
	o.Update(95) // same breakpoints as 90
	if calls != 1 {
		t.Errorf("calls after two md widths = %d, want 1", calls)
	}

	o.Update(30)
	if calls != 2 {
		t.Errorf("calls after xs width = %d, want 2", calls)
	}
	if !o.Screens()[XS] || o.Screens()[SM] {
		t.Errorf("screens = %v, want only xs", o.Screens())
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	o := NewObserver()
	calls := 0
	tok := o.Subscribe(func(ScreenMap) { calls++ })
	o.Unsubscribe(tok)
	o.Unsubscribe(tok)
	o.Update(30)

	if calls != 1 {
		t.Errorf("calls = %d, want only the immediate one", calls)
	}
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
}

func TestConcurrentUpdatesEndOnStoredState(t *testing.T) {
	o := NewObserver()
	var (
		mu   sync.Mutex
		last ScreenMap
	)
	o.Subscribe(func(s ScreenMap) {
		mu.Lock()
		last = s
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for _, widths := range [][]int{{40, 130}, {90, 200}} {
		wg.Add(1)
		go func(widths []int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				o.Update(widths[i%2])
			}
		}(widths)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if !last.Equal(o.Screens()) {
		t.Errorf("last delivered %v, observer holds %v", last, o.Screens())
	}
}

func TestSubscriberCannotMutateState(t *testing.T) {
	o := NewObserver()
	o.Subscribe(func(s ScreenMap) { s[XXL] = false })
	if !o.Screens()[XXL] {
		t.Error("subscriber mutation leaked into observer state")
	}
}

func TestHandleMsg(t *testing.T) {
	o := NewObserver()
	o.HandleMsg(tea.WindowSizeMsg{Width: 85, Height: 30})
	s := o.Screens()
	if !s[MD] || s[LG] {
		t.Errorf("screens after 85 cols = %v", s)
	}
	o.HandleMsg(tea.KeyMsg{})
	if !o.Screens().Equal(s) {
		t.Error("non-size message changed screens")
	}
}

type fakeSource struct {
	starts, stops int
	onWidth       func(int)
	err           error
}

func (f *fakeSource) Start(fn func(int)) error {
	f.starts++
	if f.err != nil {
		return f.err
	}
	f.onWidth = fn
	fn(70)
	return nil
}

func (f *fakeSource) Stop() { f.stops++ }

func TestSourceLifecycle(t *testing.T) {
	src := &fakeSource{}
	o := NewObserver(WithSource(src))

	var last ScreenMap
	a := o.Subscribe(func(s ScreenMap) { last = s })
	b := o.Subscribe(func(ScreenMap) {})
	if src.starts != 1 {
		t.Fatalf("starts = %d, want 1", src.starts)
	}
	if last[MD] || !last[SM] {
		t.Errorf("screens after source width 70 = %v", last)
	}

	src.onWidth(130)
	if !last[XL] {
		t.Errorf("screens after source width 130 = %v", last)
	}

	o.Unsubscribe(a)
	if src.stops != 0 {
		t.Errorf("source stopped with a subscriber left")
	}
	o.Unsubscribe(b)
	if src.stops != 1 {
		t.Errorf("stops = %d, want 1", src.stops)
	}

	o.Subscribe(func(ScreenMap) {})
	if src.starts != 2 {
		t.Errorf("starts after resubscribe = %d, want 2", src.starts)
	}
}

func TestSourceStartFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("no tty")}
	o := NewObserver(WithSource(src))

	calls := 0
	tok := o.Subscribe(func(ScreenMap) { calls++ })
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	o.Unsubscribe(tok)
	if src.stops != 0 {
		t.Errorf("stopped a source that never started")
	}
}
