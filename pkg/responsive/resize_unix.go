//go:build !windows

package responsive

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize delivers SIGWINCH notifications.
func notifyResize() (<-chan struct{}, func()) {
	sig := make(chan os.Signal, 1)
	out := make(chan struct{}, 1)
	quit := make(chan struct{})
	signal.Notify(sig, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-quit:
				return
			case <-sig:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, func() {
		signal.Stop(sig)
		close(quit)
	}
}
