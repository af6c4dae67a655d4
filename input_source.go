package lineedit

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/joeycumines/go-lineedit/debug"
)

// InputSource produces input events. Open acquires the terminal (entering raw
// mode) and Close releases it; ReadEvent blocks until an event is available,
// the context is done, or the source fails.
type InputSource interface {
	Open() error
	Close() error
	ReadEvent(ctx context.Context) (Event, error)
}

// DefaultPollInterval is how long TerminalInput waits between reads that
// returned no data.
const DefaultPollInterval = 10 * time.Millisecond

const readBufferSize = 1024

// TerminalInput is an InputSource over a [Reader]: it polls the non-blocking
// reader, decodes the bytes into events, and turns window size changes into
// Resize events.
type TerminalInput struct {
	reader       Reader
	decoder      Decoder
	queue        []Event
	buf          []byte
	resize       chan os.Signal
	stopSignals  func()
	pollInterval time.Duration
	open         bool
}

var _ InputSource = (*TerminalInput)(nil)

// NewTerminalInput returns an InputSource reading from r.
func NewTerminalInput(r Reader) *TerminalInput {
	return &TerminalInput{
		reader:       r,
		buf:          make([]byte, readBufferSize),
		resize:       make(chan os.Signal, 1),
		pollInterval: DefaultPollInterval,
	}
}

// Open enters raw mode and starts listening for resizes.
func (x *TerminalInput) Open() error {
	if x.open {
		return nil
	}
	if err := x.reader.Open(); err != nil {
		return wrapIO("open", err)
	}
	x.stopSignals = notifyResize(x.resize)
	x.open = true
	debug.Log("terminal input opened")
	return nil
}

// Close restores the terminal. Events already decoded stay queued.
func (x *TerminalInput) Close() error {
	if !x.open {
		return nil
	}
	x.open = false
	x.stopSignals()
	x.stopSignals = nil
	debug.Log("terminal input closed")
	return wrapIO("close", x.reader.Close())
}

// ReadEvent returns the next event. End of input is reported as Ctrl+D.
func (x *TerminalInput) ReadEvent(ctx context.Context) (Event, error) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		if len(x.queue) != 0 {
			ev := x.queue[0]
			x.queue[0] = nil
			x.queue = x.queue[1:]
			return ev, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-x.resize:
			return x.resizeEvent(), nil
		default:
		}

		n, err := x.reader.Read(x.buf)
		if n > 0 {
			x.queue = append(x.queue, x.decoder.Feed(x.buf[:n])...)
			continue
		}
		switch {
		case err == nil || IsRetryableReadError(err):
		case errors.Is(err, io.EOF):
			debug.Log("terminal input reached EOF")
			return KeyPress{Key: RuneKey, Rune: 'd', Mod: ModCtrl}, nil
		default:
			return nil, wrapIO("read", err)
		}

		// idle
		if events := x.decoder.Flush(); len(events) != 0 {
			x.queue = append(x.queue, events...)
			continue
		}
		if timer == nil {
			timer = time.NewTimer(x.pollInterval)
		} else {
			timer.Reset(x.pollInterval)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-x.resize:
			return x.resizeEvent(), nil
		case <-timer.C:
		}
	}
}

func (x *TerminalInput) resizeEvent() Event {
	ws := x.reader.GetWinSize()
	debug.Log("terminal resized")
	return Resize{Cols: ws.Col, Rows: ws.Row}
}
