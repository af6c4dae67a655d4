package lineedit

import (
	"github.com/joeycumines/go-lineedit/debug"
	istrings "github.com/joeycumines/go-lineedit/strings"
)

// DefaultExitCommand is the line that, when submitted, ends the session.
const DefaultExitCommand = "exit"

// State is the lifecycle state of a [Controller].
type State int

const (
	// Prompting accepts input.
	Prompting State = iota
	// Terminated ignores all further input.
	Terminated
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "Prompting"
	case Terminated:
		return "Terminated"
	default:
		return "State(?)"
	}
}

// EditSession is the state of a single line being edited: the column at which
// input starts, plus a view of the owning controller's buffer and history.
// It ends when the line is submitted, the session terminates, or the terminal
// is resized.
type EditSession struct {
	PromptOffset istrings.Width
	c            *Controller
}

// Text returns the line as typed so far.
func (s *EditSession) Text() string { return s.c.buffer.Contents() }

// Caret returns the caret offset.
func (s *EditSession) Caret() istrings.ByteNumber { return s.c.buffer.Caret() }

// HistoryCursor returns the history browse cursor, -1 while not browsing.
func (s *EditSession) HistoryCursor() int { return s.c.history.Cursor() }

// ControllerOption configures a [Controller].
type ControllerOption func(c *Controller)

// WithControllerExitCommand sets the line that terminates the session. An
// empty command disables it.
func WithControllerExitCommand(cmd string) ControllerOption {
	return func(c *Controller) { c.exitCommand = cmd }
}

// WithControllerPushEmptyLines controls whether submitting an empty line
// records it in the history.
func WithControllerPushEmptyLines(push bool) ControllerOption {
	return func(c *Controller) { c.pushEmptyLines = push }
}

// WithControllerHistory replaces the controller's history.
func WithControllerHistory(h *History) ControllerOption {
	return func(c *Controller) {
		if h != nil {
			c.history = h
		}
	}
}

// Controller interprets input events against a [TextBuffer] and a [History],
// both of which it owns exclusively. It performs no I/O: every visible
// consequence is returned from Dispatch as an [Effect].
type Controller struct {
	buffer         *TextBuffer
	history        *History
	session        *EditSession
	state          State
	exitCommand    string
	pushEmptyLines bool
}

// NewController returns a controller in the Prompting state, with an empty
// buffer and a history of DefaultHistoryCapacity.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		buffer:         NewTextBuffer(),
		history:        NewHistory(DefaultHistoryCapacity),
		state:          Prompting,
		exitCommand:    DefaultExitCommand,
		pushEmptyLines: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Session returns the active edit session, or nil.
func (c *Controller) Session() *EditSession { return c.session }

// Text returns the buffer contents.
func (c *Controller) Text() string { return c.buffer.Contents() }

// Caret returns the buffer caret.
func (c *Controller) Caret() istrings.ByteNumber { return c.buffer.Caret() }

// History returns a copy of the history entries, most recent first.
func (c *Controller) History() []string { return c.history.Entries() }

// Begin starts a new edit session, with input beginning promptOffset columns
// into the line. It returns nil once terminated.
func (c *Controller) Begin(promptOffset istrings.Width) *EditSession {
	if c.state == Terminated {
		return nil
	}
	c.session = &EditSession{PromptOffset: promptOffset, c: c}
	return c.session
}

// Dispatch applies ev and returns the resulting effects, in order.
func (c *Controller) Dispatch(ev Event) []Effect {
	if c.state == Terminated {
		return nil
	}
	switch ev := ev.(type) {
	case KeyPress:
		if ev.Kind != KeyPressed {
			return nil
		}
		return c.dispatchKey(ev)
	case Resize:
		c.session = nil
		return []Effect{Interrupt{Cols: ev.Cols, Rows: ev.Rows}}
	case Paste:
		return []Effect{Notice{Kind: NoticePaste, Data: ev.Data}}
	case Mouse:
		return []Effect{Notice{Kind: NoticeMouse, Data: ev.Raw}}
	}
	return nil
}

func (c *Controller) dispatchKey(ev KeyPress) []Effect {
	b := c.buffer
	switch ev.Key {
	case RuneKey:
		if ev.Mod.Has(ModCtrl) {
			if ev.Rune == 'd' {
				return c.terminate(TerminateEOF)
			}
			return nil
		}
		if err := b.Insert(b.Caret(), ev.Rune); err != nil {
			debug.AssertNoError(err)
			return nil
		}
		return []Effect{Repaint{Caret: b.Advance()}}

	case Backspace:
		if ev.Mod != 0 || b.IsEmpty() {
			return nil
		}
		if b.Caret() == b.Len() {
			// the whole last cluster goes, not just its final scalar
			b.Retreat()
			for b.Len() > b.Caret() {
				b.Pop()
			}
		} else {
			// at 0 this removes the cluster under the caret
			b.Retreat()
			_, err := b.RemoveClusterAt(b.Caret())
			debug.AssertNoError(err)
		}
		return []Effect{Repaint{Caret: b.Caret()}}

	case Delete:
		if ev.Mod != 0 || b.Caret() >= b.Len() {
			return nil
		}
		_, err := b.RemoveClusterAt(b.Caret())
		debug.AssertNoError(err)
		return []Effect{Repaint{Caret: b.Caret()}}

	case Left:
		switch ev.Mod {
		case 0:
			if b.Caret() == 0 {
				return nil
			}
			return []Effect{Repaint{Caret: b.Retreat()}}
		case ModAlt:
			if b.Caret() == 0 {
				return nil
			}
			return []Effect{MoveCaret{Caret: b.WordLeft()}}
		}
		return nil

	case Right:
		switch ev.Mod {
		case 0:
			if b.Caret() >= b.Len() {
				return nil
			}
			return []Effect{Repaint{Caret: b.Advance()}}
		case ModAlt:
			if b.Caret() >= b.Len() {
				return nil
			}
			return []Effect{MoveCaret{Caret: b.WordRight()}}
		}
		return nil

	case Home:
		if ev.Mod != 0 {
			return nil
		}
		debug.AssertNoError(b.SetCaret(0))
		return []Effect{MoveCaret{Caret: 0}}

	case End:
		if ev.Mod != 0 {
			return nil
		}
		return []Effect{Repaint{Caret: b.MoveToEnd()}}

	case Up:
		if ev.Mod != 0 {
			return nil
		}
		line, ok := c.history.BrowseUp()
		if !ok {
			return nil
		}
		b.ReplaceAll(line)
		return []Effect{Repaint{Caret: b.MoveToEnd()}}

	case Down:
		if ev.Mod != 0 {
			return nil
		}
		line, ok := c.history.BrowseDown()
		if !ok {
			return nil
		}
		b.ReplaceAll(line)
		return []Effect{Repaint{Caret: b.MoveToEnd()}}

	case Enter:
		if ev.Mod != 0 {
			return nil
		}
		line := b.Contents()
		if c.exitCommand != "" && line == c.exitCommand {
			return c.terminate(TerminateExitCommand)
		}
		if line != "" || c.pushEmptyLines {
			c.history.Push(line)
		} else {
			c.history.ResetBrowse()
		}
		b.Reset()
		c.session = nil
		return []Effect{Submit{Line: line}}
	}
	return nil
}

func (c *Controller) terminate(reason TerminateReason) []Effect {
	c.state = Terminated
	c.session = nil
	return []Effect{Terminate{Reason: reason}}
}
