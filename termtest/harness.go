//go:build unix

package termtest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/joeycumines/go-lineedit"
)

const harnessExitTimeout = 2 * time.Second

var errAlreadyStarted = errors.New("prompt already started")

// Harness runs a lineedit.Prompt in-process, reading from and drawing to the
// slave end of a PTY. The master end is exposed as a Console.
type Harness struct {
	console *Console
	ptm     *os.File
	pts     *os.File
	cfg     *harnessConfig

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
	runErr  error

	cmdMu sync.Mutex
	cmds  []string

	closeOnce sync.Once
	closeErr  error
}

// NewHarness opens a PTY pair sized per the options.
func NewHarness(ctx context.Context, opts ...HarnessOption) (*Harness, error) {
	cfg, err := resolveHarnessOptions(opts)
	if err != nil {
		return nil, err
	}

	ptm, pts, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open pty: %w", err)
	}

	if err := pty.Setsize(ptm, &pty.Winsize{Rows: cfg.rows, Cols: cfg.cols}); err != nil {
		_ = pts.Close()
		_ = ptm.Close()
		return nil, fmt.Errorf("failed to size pty: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Harness{
		// the harness waits for the read loop itself, after closing pts
		console: newConsole(ptm, nil, cfg.defaultTimeout, cancel, false),
		ptm:     ptm,
		pts:     pts,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}, nil
}

// Console returns the user's side of the PTY.
func (h *Harness) Console() *Console {
	return h.console
}

// RunPrompt starts a prompt on the PTY in a background goroutine. Every
// submitted line is recorded, see ExecutedCommands, before being passed to
// executor, which may be nil. Options are applied after WithPromptOptions.
func (h *Harness) RunPrompt(executor lineedit.Executor, options ...lineedit.Option) error {
	if !h.started.CompareAndSwap(false, true) {
		return errAlreadyStarted
	}

	opts := []lineedit.Option{
		lineedit.WithReader(lineedit.NewFileReader(h.pts)),
		lineedit.WithWriter(lineedit.NewWriter(h.pts)),
		lineedit.WithSyncProtocol(true),
	}
	opts = append(opts, h.cfg.promptOptions...)
	opts = append(opts, options...)

	p, err := lineedit.New(func(line string) {
		h.cmdMu.Lock()
		h.cmds = append(h.cmds, line)
		h.cmdMu.Unlock()
		if executor != nil {
			executor(line)
		}
	}, opts...)
	if err != nil {
		close(h.done)
		return err
	}

	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				h.runErr = fmt.Errorf("prompt panic: %v", r)
			}
		}()
		h.runErr = p.Run(h.ctx)
	}()

	return nil
}

// ExecutedCommands returns the lines submitted so far.
func (h *Harness) ExecutedCommands() []string {
	h.cmdMu.Lock()
	defer h.cmdMu.Unlock()
	return append([]string(nil), h.cmds...)
}

// Resize changes the PTY dimensions and notifies the prompt. The PTY is not
// the process's controlling terminal, so SIGWINCH is raised explicitly.
func (h *Harness) Resize(rows, cols uint16) error {
	if err := pty.Setsize(h.ptm, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		return err
	}
	return syscall.Kill(os.Getpid(), syscall.SIGWINCH)
}

// WaitExit waits for the prompt to return. A prompt ended by EOF or the exit
// command returns nil.
func (h *Harness) WaitExit(ctx context.Context) error {
	if !h.started.Load() {
		return errors.New("prompt not started")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return h.runErr
	}
}

// Close stops the prompt and releases the PTY. The slave is closed before the
// master so the console's read loop observes EOF.
func (h *Harness) Close() error {
	h.closeOnce.Do(func() {
		h.closeErr = errors.New("panic during close")
		h.closeErr = h.close()
	})
	return h.closeErr
}

func (h *Harness) close() error {
	h.cancel()

	var errs []error

	if h.started.Load() {
		ctx, cancel := context.WithTimeout(context.Background(), harnessExitTimeout)
		err := h.WaitExit(ctx)
		cancel()
		if err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, fmt.Errorf("prompt exit: %w", err))
		}
	}

	if err := h.pts.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close pts: %w", err))
	}

	if err := h.console.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close console: %w", err))
	}

	select {
	case <-h.console.done:
	case <-time.After(readLoopExitTimeout):
		errs = append(errs, errReadLoopTimeout)
	}

	return errors.Join(errs...)
}
