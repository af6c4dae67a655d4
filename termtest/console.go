//go:build unix

package termtest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	"github.com/joeycumines/go-lineedit"
)

const (
	pollInterval        = 10 * time.Millisecond
	readLoopExitTimeout = time.Second
)

var errReadLoopTimeout = errors.New("timeout waiting for console read loop to exit")

// Console is the user's side of a terminal session: it writes keystrokes to
// the PTY master and records everything the other side draws.
// It is safe for concurrent use.
type Console struct {
	mu             sync.RWMutex
	output         bytes.Buffer
	ptm            *os.File
	cmd            *exec.Cmd // nil for a harness
	defaultTimeout time.Duration
	cancel         context.CancelFunc
	done           chan struct{}
	closed         bool
	waitDone       bool

	waitOnce  sync.Once
	exitCh    chan struct{}
	exitCode  int
	exitErr   error
	closeOnce sync.Once
	closeErr  error
}

// Snapshot marks a position in the captured output.
type Snapshot struct {
	offset int
}

var syncCounter atomic.Uint64

// NewConsole starts an external process attached to a PTY.
func NewConsole(ctx context.Context, opts ...ConsoleOption) (*Console, error) {
	cfg, err := resolveConsoleOptions(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	cmd := exec.CommandContext(ctx, cfg.cmdName, cfg.args...)
	cmd.Env = append(os.Environ(), cfg.env...)
	cmd.Env = append(cmd.Env,
		"TERM=xterm-256color",
		fmt.Sprintf("COLUMNS=%d", cfg.cols),
		fmt.Sprintf("LINES=%d", cfg.rows),
	)
	cmd.Dir = cfg.dir

	ptm, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: cfg.rows, Cols: cfg.cols})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start command with pty: %w", err)
	}

	return newConsole(ptm, cmd, cfg.defaultTimeout, cancel, true), nil
}

func newConsole(ptm *os.File, cmd *exec.Cmd, timeout time.Duration, cancel context.CancelFunc, waitDone bool) *Console {
	c := &Console{
		ptm:            ptm,
		cmd:            cmd,
		defaultTimeout: timeout,
		cancel:         cancel,
		done:           make(chan struct{}),
		exitCh:         make(chan struct{}),
		waitDone:       waitDone,
	}
	go c.readLoop()
	return c
}

// Snapshot marks the current end of the output. Take it immediately before
// the action whose effect is being asserted.
func (c *Console) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{offset: c.output.Len()}
}

// Await blocks until the output written since the snapshot satisfies cond,
// or ctx is done.
func (c *Console) Await(ctx context.Context, since Snapshot, cond Condition) error {
	if c.check(since, cond) {
		return nil
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if c.check(since, cond) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if c.check(since, cond) {
				return nil
			}
		}
	}
}

// Expect is Await with the default timeout applied and the unmatched output
// included in the error.
func (c *Console) Expect(ctx context.Context, since Snapshot, cond Condition, description string) error {
	if _, ok := ctx.Deadline(); !ok && c.defaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.defaultTimeout)
		defer cancel()
	}

	if err := c.Await(ctx, since, cond); err != nil {
		return fmt.Errorf("expected %s not found in output since offset %d: %w\nOutput chunk: %q",
			description, since.offset, err, c.since(since))
	}

	return nil
}

// Since returns the raw output captured after the snapshot.
func (c *Console) Since(s Snapshot) string {
	return c.since(s)
}

func (c *Console) since(s Snapshot) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.output.String()
	if s.offset > len(out) {
		return out
	}
	return out[s.offset:]
}

func (c *Console) check(since Snapshot, cond Condition) bool {
	return cond(c.since(since))
}

// Write writes raw bytes to the PTY master.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed || c.ptm == nil {
		return 0, io.ErrClosedPipe
	}
	return c.ptm.Write(p)
}

// WriteString writes a raw string to the PTY master.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// WriteSync writes s followed by a sync request, then blocks until the
// matching acknowledgement is drawn. The prompt processes input in order, so
// on return every byte of s has been handled.
func (c *Console) WriteSync(ctx context.Context, s string) error {
	id := fmt.Sprintf("sync-%d", syncCounter.Add(1))
	snap := c.Snapshot()

	if _, err := c.Write(append([]byte(s), lineedit.BuildSyncRequest(id)...)); err != nil {
		return err
	}

	return c.Expect(ctx, snap, ContainsRaw(string(lineedit.BuildSyncAck(id))), fmt.Sprintf("sync ack %q", id))
}

// Send writes the sequences for the named keys (see KeyNames).
func (c *Console) Send(keys ...string) error {
	for _, k := range keys {
		seq, err := lookupKey(k)
		if err != nil {
			return err
		}
		if _, err := c.WriteString(seq); err != nil {
			return err
		}
	}
	return nil
}

// SendSync sends each key with WriteSync. Keys are never coalesced into one
// read, which matters for sequences sharing a prefix with ESC.
func (c *Console) SendSync(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		seq, err := lookupKey(k)
		if err != nil {
			return err
		}
		if err := c.WriteSync(ctx, seq); err != nil {
			return err
		}
	}
	return nil
}

// SendLine types input and presses Enter, without waiting for either to be
// processed.
func (c *Console) SendLine(input string) error {
	_, err := c.WriteString(input + "\r")
	return err
}

// WaitExit waits for the command started by NewConsole to exit, returning
// its exit code.
func (c *Console) WaitExit(ctx context.Context) (int, error) {
	if c.cmd == nil {
		return -1, errors.New("no command to wait for")
	}

	c.waitProcess()

	select {
	case <-ctx.Done():
		return -1, ctx.Err()
	case <-c.exitCh:
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.exitCode, c.exitErr
	}
}

func (c *Console) waitProcess() {
	c.waitOnce.Do(func() {
		go func() {
			err := c.cmd.Wait()

			code := 0
			if err != nil {
				code = -1
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					code = exitErr.ExitCode()
				}
			}

			c.mu.Lock()
			c.exitCode = code
			c.exitErr = err
			c.mu.Unlock()

			close(c.exitCh)
		}()
	})
}

// Close ends the session, killing the command if there is one.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = errors.New("panic during close")
		c.closeErr = c.close()
	})
	return c.closeErr
}

func (c *Console) close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()

	var errs []error
	if c.ptm != nil {
		if err := c.ptm.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if c.cmd != nil && c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
		c.waitProcess()
	}

	if c.waitDone {
		select {
		case <-c.done:
		case <-time.After(readLoopExitTimeout):
			errs = append(errs, errReadLoopTimeout)
		}
	}

	if len(errs) != 0 {
		return fmt.Errorf("close errors: %w", errors.Join(errs...))
	}
	return nil
}

// String returns all captured output.
func (c *Console) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.output.String()
}

func (c *Console) readLoop() {
	defer close(c.done)
	buf := make([]byte, 4096)
	for {
		n, err := c.ptm.Read(buf)
		if n > 0 {
			c.mu.Lock()
			c.output.Write(buf[:n])
			c.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}
