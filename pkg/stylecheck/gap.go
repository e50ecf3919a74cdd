// Package stylecheck probes the rendering platform for layout capabilities.
package stylecheck

import (
	"os"
	"strconv"
	"sync"
)

// EnvNativeGap overrides gap detection. Any value strconv.ParseBool accepts
// is honoured; other values are ignored.
const EnvNativeGap = "TERMGRID_NATIVE_GAP"

// Probe reports whether the platform lays out gaps natively.
type Probe func() bool

var (
	gapOnce      sync.Once
	gapSupported bool
)

// DetectGapSupport reports whether rows may use native gap spacing instead
// of margin compensation. The result is computed once per process.
func DetectGapSupport() bool {
	gapOnce.Do(func() {
		gapSupported = detect(os.Getenv)
	})
	return gapSupported
}

func detect(getenv func(string) string) bool {
	if v := getenv(EnvNativeGap); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return true
}

// Fixed returns a Probe that always answers v.
func Fixed(v bool) Probe {
	return func() bool { return v }
}
