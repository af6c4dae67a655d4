//go:build !unix

package lineedit

import "os"

// notifyResize is a no-op: there is no resize signal on this platform.
func notifyResize(chan os.Signal) (stop func()) {
	return func() {}
}
