package responsive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTerminalSourceRejectsFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := NewTerminalSource(f, 0)
	if _, err := src.Width(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Width() err = %v, want ErrNotTerminal", err)
	}
	if err := src.Start(func(int) {}); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Start() err = %v, want ErrNotTerminal", err)
	}
	src.Stop()
}

func TestObserverWithFileSource(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	o := NewObserver(WithSource(NewTerminalSource(f, 0)))
	tok := o.Subscribe(func(ScreenMap) {})
	if !o.Screens().Equal(AllScreens()) {
		t.Errorf("screens = %v, want all matching", o.Screens())
	}
	o.Unsubscribe(tok)
}
