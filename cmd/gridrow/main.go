package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/termgrid/pkg/config"
	"github.com/Dicklesworthstone/termgrid/pkg/grid"
	"github.com/Dicklesworthstone/termgrid/pkg/responsive"
	"github.com/Dicklesworthstone/termgrid/pkg/ui"
	"github.com/Dicklesworthstone/termgrid/pkg/watcher"
)

const version = "0.1.0"

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "termgrid.yaml", "Path to the grid config file")
	logFile := flag.String("log-file", "", "Write logs to this file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	once := flag.Bool("print", false, "Print the row once for the current terminal width and exit")
	follow := flag.Bool("follow", false, "Print the row again whenever its breakpoints change")
	flag.Parse()

	if *help {
		fmt.Println("Usage: gridrow [options]")
		fmt.Println("\nAn interactive demo of a responsive terminal grid row.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("gridrow version " + version)
		os.Exit(0)
	}

	logger, closeLog, err := newLogger(*logFile, *debug)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *once || *follow:
		err = printRows(ctx, cfg, logger, *follow)
	default:
		err = runDemo(ctx, cfg, *configPath, logger)
	}
	if err != nil {
		fmt.Printf("Error running gridrow: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to path, or nowhere when path is empty, since the TUI
// owns the terminal.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridrow",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func runDemo(ctx context.Context, cfg config.Config, configPath string, logger *log.Logger) error {
	m := ui.NewModel(cfg, ui.WithLogger(logger))
	defer m.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		err := watcher.WatchFile(gctx, configPath, 0, func() {
			next, err := config.Load(configPath)
			logger.Info("config changed", "path", configPath, "err", err)
			p.Send(ui.ConfigReloadedMsg{Config: next, Err: err})
		})
		if err != nil {
			logger.Warn("config watch stopped", "err", err)
		}
		return nil
	})

	return g.Wait()
}

type widthReader interface {
	Width() (int, error)
}

// seedFallbackWidth matches obs to fallbackWidth when src cannot report a
// width, so the screens agree with the width draw falls back to.
func seedFallbackWidth(obs *responsive.Observer, src widthReader) bool {
	if _, err := src.Width(); err == nil {
		return false
	}
	obs.Update(fallbackWidth)
	return true
}

// printRows lays out the sample row at the terminal's width. With follow
// set it keeps printing until ctx is done, once per breakpoint change.
func printRows(ctx context.Context, cfg config.Config, logger *log.Logger, follow bool) error {
	src := responsive.NewTerminalSource(os.Stdout, watcher.DefaultDebounceDuration)
	obs := responsive.NewObserver(
		responsive.WithThresholds(cfg.Thresholds()),
		responsive.WithSource(src),
		responsive.WithLogger(logger),
	)

	if seedFallbackWidth(obs, src) {
		logger.Debug("stdout is not a terminal", "width", fallbackWidth)
	}

	env := grid.NewEnv(cfg, nil)
	cols := ui.SampleColumns(ui.DefaultTheme())
	row := &grid.Row{Gutter: ui.DefaultGutter()}

	var (
		mu   sync.Mutex
		last responsive.ScreenMap
	)
	draw := func(screens responsive.ScreenMap) {
		mu.Lock()
		defer mu.Unlock()
		if last != nil && last.Equal(screens) {
			return
		}
		last = screens
		width, err := src.Width()
		if err != nil {
			width = fallbackWidth
		}
		fmt.Println(grid.Layout(row.Render(env), cols, width))
		fmt.Println()
	}

	if follow {
		row.OnChange = draw
	}
	row.Mount(obs)
	defer row.Unmount()

	if !follow {
		draw(row.Screens())
		return nil
	}
	<-ctx.Done()
	return nil
}
