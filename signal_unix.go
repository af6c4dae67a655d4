//go:build unix

package lineedit

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize delivers SIGWINCH to ch until stop is called.
func notifyResize(ch chan os.Signal) (stop func()) {
	signal.Notify(ch, syscall.SIGWINCH)
	return func() { signal.Stop(ch) }
}
