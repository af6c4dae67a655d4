package lineedit

// WinSize represents the width and height of terminal.
type WinSize struct {
	Row uint16
	Col uint16
}

// Reader is an interface to abstract input layer.
type Reader interface {
	// Open should be called before starting reading input. It puts the
	// terminal into raw mode.
	Open() error
	// Close should be called after stopping input. It restores the terminal
	// mode saved by Open.
	Close() error
	// Read returns the bytes available without blocking. No data available
	// is reported as (0, nil) or as an error for which IsRetryableReadError
	// holds.
	Read([]byte) (int, error)
	// GetWinSize returns WinSize object to represent width and height of terminal.
	GetWinSize() *WinSize
}

// Default window size, used when the terminal cannot be queried.
const (
	DefColCount = 80
	DefRowCount = 25
)
