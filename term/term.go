//go:build unix

// Package term switches a terminal file descriptor into and out of raw mode.
// The attributes seen on first use are remembered, and restored by Restore.
package term

import (
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var (
	saveTermios     unix.Termios
	saveTermiosFD   int
	saveTermiosOnce sync.Once
	saveTermiosErr  error
)

func getOriginalTermios(fd int) (*unix.Termios, error) {
	saveTermiosOnce.Do(func() {
		saveTermiosFD = fd
		var t *unix.Termios
		t, saveTermiosErr = termios.Tcgetattr(uintptr(fd))
		if saveTermiosErr == nil {
			saveTermios = *t
		}
	})
	if saveTermiosErr != nil {
		return nil, saveTermiosErr
	}
	o := saveTermios
	return &o, nil
}

// Restore restores the attributes of the first descriptor passed to SetRaw
// or RestoreFD.
func Restore() error {
	return RestoreFD(saveTermiosFD)
}

// RestoreFD applies the remembered attributes to fd.
func RestoreFD(fd int) error {
	o, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}
	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, o)
}
