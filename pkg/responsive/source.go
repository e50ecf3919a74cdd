package responsive

import (
	"errors"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/termgrid/pkg/watcher"
)

// ErrNotTerminal is returned by TerminalSource.Start when the file is not a
// terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TerminalSource reports the width of a terminal whenever it is resized.
type TerminalSource struct {
	file     *os.File
	debounce *watcher.Debouncer

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTerminalSource watches f, usually os.Stdout. Resize bursts are
// coalesced over debounce.
func NewTerminalSource(f *os.File, debounce time.Duration) *TerminalSource {
	return &TerminalSource{
		file:     f,
		debounce: watcher.NewDebouncer(debounce),
	}
}

// Width queries the terminal's current width.
func (s *TerminalSource) Width() (int, error) {
	fd := int(s.file.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNotTerminal
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, err
	}
	return w, nil
}

// Start reports the current width and then every debounced resize until
// Stop is called.
func (s *TerminalSource) Start(onWidth func(width int)) error {
	w, err := s.Width()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return nil
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done
	s.mu.Unlock()

	onWidth(w)

	resized, release := notifyResize()
	go func() {
		defer close(done)
		defer release()
		for {
			select {
			case <-stop:
				return
			case <-resized:
				s.debounce.Trigger(func() {
					if w, err := s.Width(); err == nil {
						onWidth(w)
					}
				})
			}
		}
	}()
	return nil
}

// Stop ends resize reporting and waits for the watch loop to exit.
func (s *TerminalSource) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	s.debounce.Cancel()
}
