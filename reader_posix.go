//go:build unix

package lineedit

import (
	"errors"
	"os"
	"syscall"

	"github.com/joeycumines/go-lineedit/term"
	"golang.org/x/sys/unix"
)

// PosixReader is a Reader implementation for the POSIX environment.
type PosixReader struct {
	fd int
	// file, if set, supplies the fd instead of opening /dev/tty, and is not
	// closed by Close
	file         *os.File
	open         func(string, int, uint32) (int, error)
	close        func(int) error
	read         func(int, []byte) (int, error)
	setNonblock  func(int, bool) error
	setRaw       func(int) error
	restoreFD    func(int) error
	ioctlWinsize func(int, uint) (*unix.Winsize, error)
}

func (t *PosixReader) initFuncs() {
	if t.open == nil {
		t.open = syscall.Open
	}
	if t.close == nil {
		t.close = syscall.Close
	}
	if t.read == nil {
		t.read = syscall.Read
	}
	if t.setNonblock == nil {
		t.setNonblock = syscall.SetNonblock
	}
	if t.setRaw == nil {
		t.setRaw = term.SetRaw
	}
	if t.restoreFD == nil {
		t.restoreFD = term.RestoreFD
	}
	if t.ioctlWinsize == nil {
		t.ioctlWinsize = unix.IoctlGetWinsize
	}
}

// Open should be called before starting input
func (t *PosixReader) Open() error {
	t.initFuncs()
	if t.file != nil {
		t.fd = int(t.file.Fd())
	} else {
		in, err := t.open("/dev/tty", syscall.O_RDONLY, 0)
		if os.IsNotExist(err) {
			in = syscall.Stdin
		} else if err != nil {
			return err
		}
		t.fd = in
	}
	// Set NonBlocking mode because if syscall.Read block this goroutine, it cannot receive data from stopCh.
	if err := t.setNonblock(t.fd, true); err != nil {
		return err
	}
	if err := t.setRaw(t.fd); err != nil {
		return err
	}
	return nil
}

// Close should be called after stopping input
func (t *PosixReader) Close() error {
	t.initFuncs()
	err := t.restoreFD(t.fd)
	if t.file != nil || t.fd == syscall.Stdin {
		return err
	}
	if closeErr := t.close(t.fd); err == nil {
		err = closeErr
	}
	return err
}

// Read returns byte array.
func (t *PosixReader) Read(buff []byte) (int, error) {
	return t.read(t.fd, buff)
}

// GetWinSize returns WinSize object to represent width and height of terminal.
func (t *PosixReader) GetWinSize() *WinSize {
	t.initFuncs()
	ws, err := t.ioctlWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		// If this errors, we simply return the default window size as
		// it's our best guess.
		return &WinSize{
			Row: DefRowCount,
			Col: DefColCount,
		}
	}
	return &WinSize{
		Row: ws.Row,
		Col: ws.Col,
	}
}

var _ Reader = &PosixReader{}

// NewStdinReader returns Reader object to read from the controlling terminal,
// falling back to stdin.
func NewStdinReader() *PosixReader {
	pr := &PosixReader{
		open:         syscall.Open,
		close:        syscall.Close,
		read:         syscall.Read,
		setNonblock:  syscall.SetNonblock,
		setRaw:       term.SetRaw,
		restoreFD:    term.RestoreFD,
		ioctlWinsize: unix.IoctlGetWinsize,
	}
	return pr
}

// NewFileReader returns a Reader over an already open terminal, such as the
// slave end of a pseudo-terminal. The file is left open by Close.
func NewFileReader(f *os.File) *PosixReader {
	pr := NewStdinReader()
	pr.file = f
	return pr
}

// IsRetryableReadError reports whether err from Reader.Read only means that no
// input is available yet.
func IsRetryableReadError(err error) bool {
	return errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EWOULDBLOCK) ||
		errors.Is(err, syscall.EINTR)
}
