package lineedit

import (
	"errors"
	"fmt"

	istrings "github.com/joeycumines/go-lineedit/strings"
)

var (
	// ErrOutOfRange indicates an edit addressed outside of the buffer.
	ErrOutOfRange = errors.New("lineedit: offset out of range")

	// ErrNotBoundary indicates an edit addressed the middle of a grapheme
	// cluster. It is a programming error on the caller's side.
	ErrNotBoundary = errors.New("lineedit: offset is not a grapheme boundary")

	// ErrIO is matched (via errors.Is) by every [IOError].
	ErrIO = errors.New("lineedit: terminal i/o failure")

	// ErrTerminated is returned by [Prompt.Input] when the session ended
	// without a line being submitted.
	ErrTerminated = errors.New("lineedit: session terminated")
)

// OffsetError describes a rejected [TextBuffer] operation.
type OffsetError struct {
	Op     string
	Offset istrings.ByteNumber
	Len    istrings.ByteNumber
	// Err is either ErrOutOfRange or ErrNotBoundary.
	Err error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%v: %s at %d (len %d)", e.Err, e.Op, e.Offset, e.Len)
}

func (e *OffsetError) Unwrap() error { return e.Err }

// IOError wraps a failure of the terminal, either while reading input or
// while drawing. It is fatal to the session.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("lineedit: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}
