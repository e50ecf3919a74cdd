// Package config holds the settings shared by every grid component: the
// class prefix, the text direction and breakpoint overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/termgrid/pkg/responsive"
)

// DefaultPrefix is prepended to component class names.
const DefaultPrefix = "tg"

// Direction is the text direction of the layout.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var (
	// ErrUnknownDirection is returned for directions other than ltr and rtl.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrUnknownBreakpoint is returned for breakpoint overrides with an
	// unrecognised name.
	ErrUnknownBreakpoint = errors.New("unknown breakpoint")
	// ErrBreakpointOrder is returned when a breakpoint would be narrower
	// than the one below it, or when xs is given a width.
	ErrBreakpointOrder = errors.New("breakpoint widths out of order")
)

// Config is the ambient configuration read by rows and columns.
type Config struct {
	Prefix    string    `yaml:"prefix"`
	Direction Direction `yaml:"direction"`
	// NativeGap forces gap or margin rendering. Nil leaves the decision to
	// the platform probe.
	NativeGap *bool `yaml:"native_gap,omitempty"`
	// Breakpoints overrides threshold widths by breakpoint name.
	Breakpoints map[string]int `yaml:"breakpoints,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prefix:    DefaultPrefix,
		Direction: LTR,
	}
}

// Load reads a YAML config file. A missing file yields Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFrom(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFrom decodes YAML from r over the defaults and validates it.
func LoadFrom(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Direction == "" {
		cfg.Direction = LTR
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the direction and the breakpoint overrides. xs cannot be
// set: it covers every width below sm.
func (c Config) Validate() error {
	switch c.Direction {
	case LTR, RTL:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, c.Direction)
	}
	for name, width := range c.Breakpoints {
		bp, err := responsive.ParseBreakpoint(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownBreakpoint, name)
		}
		if bp == responsive.XS {
			return fmt.Errorf("%w: xs ends where sm begins, set sm instead", ErrBreakpointOrder)
		}
		if width < 0 {
			return fmt.Errorf("breakpoint %s: negative width %d", name, width)
		}
	}
	if bp, ok := c.Thresholds().Ordered(); !ok {
		return fmt.Errorf("%w: %s is narrower than the breakpoint below it", ErrBreakpointOrder, bp)
	}
	return nil
}

// PrefixCls returns the class prefix for a component. A non-empty custom
// prefix wins outright.
func (c Config) PrefixCls(suffix, custom string) string {
	if custom != "" {
		return custom
	}
	if c.Prefix == "" {
		return suffix
	}
	return c.Prefix + "-" + suffix
}

// IsRTL reports whether the layout runs right to left.
func (c Config) IsRTL() bool {
	return strings.EqualFold(string(c.Direction), string(RTL))
}

// Thresholds overlays the configured breakpoint widths on the defaults.
func (c Config) Thresholds() responsive.Thresholds {
	t := responsive.DefaultThresholds()
	for name, width := range c.Breakpoints {
		if bp, err := responsive.ParseBreakpoint(name); err == nil && bp != responsive.XS {
			t[bp] = width
		}
	}
	return t
}
