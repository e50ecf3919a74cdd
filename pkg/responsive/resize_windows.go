//go:build windows

package responsive

import "time"

const resizePollInterval = 250 * time.Millisecond

// notifyResize ticks periodically; Windows consoles have no resize signal.
// The observer drops ticks that do not change the screen state.
func notifyResize() (<-chan struct{}, func()) {
	out := make(chan struct{}, 1)
	quit := make(chan struct{})
	ticker := time.NewTicker(resizePollInterval)

	go func() {
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, func() {
		ticker.Stop()
		close(quit)
	}
}
