package lineedit

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// Option is the type to replace default parameters.
// prompt.New accepts any number of options (this is functional option pattern).
type Option func(prompt *Prompt) error

// WithReader to set a custom Reader object. An argument should implement Reader interface.
func WithReader(r Reader) Option {
	return func(p *Prompt) error {
		if r == nil {
			return errors.New("lineedit: nil reader")
		}
		p.input = NewTerminalInput(r)
		return nil
	}
}

// WithInputSource replaces the terminal input entirely, e.g. with a scripted
// source in tests.
func WithInputSource(src InputSource) Option {
	return func(p *Prompt) error {
		if src == nil {
			return errors.New("lineedit: nil input source")
		}
		p.input = src
		return nil
	}
}

// WithWriter to set a custom Writer object. An argument should implement ConsoleWriter interface.
func WithWriter(w ConsoleWriter) Option {
	return func(p *Prompt) error {
		if w == nil {
			return errors.New("lineedit: nil writer")
		}
		p.renderer.out = w
		return nil
	}
}

// WithPrefix to set prefix string.
func WithPrefix(prefix string) Option {
	return func(p *Prompt) error {
		p.renderer.prefix = prefix
		return nil
	}
}

// WithPrefixTextColor change a text color of prefix string
func WithPrefixTextColor(x Color) Option {
	return func(p *Prompt) error {
		p.renderer.prefixTextColor = x
		return nil
	}
}

// WithPrefixBackgroundColor to change a background color of prefix string
func WithPrefixBackgroundColor(x Color) Option {
	return func(p *Prompt) error {
		p.renderer.prefixBGColor = x
		return nil
	}
}

// WithInputTextColor to change a color of text which is input by user
func WithInputTextColor(x Color) Option {
	return func(p *Prompt) error {
		p.renderer.inputTextColor = x
		return nil
	}
}

// WithHistory to set history expressed by string array, oldest first.
func WithHistory(x []string) Option {
	return func(p *Prompt) error {
		p.initialHistory = x
		return nil
	}
}

// WithHistoryCapacity sets the maximum number of history entries.
func WithHistoryCapacity(n int) Option {
	return func(p *Prompt) error {
		if n <= 0 {
			return errors.New("lineedit: history capacity must be positive")
		}
		p.historyCapacity = n
		return nil
	}
}

// WithPushEmptyLines controls whether empty submitted lines are recorded in
// the history. They are by default.
func WithPushEmptyLines(push bool) Option {
	return func(p *Prompt) error {
		p.controllerOptions = append(p.controllerOptions, WithControllerPushEmptyLines(push))
		return nil
	}
}

// WithExitCommand sets the line that ends the session when submitted. The
// default is DefaultExitCommand; the empty string disables it.
func WithExitCommand(cmd string) Option {
	return func(p *Prompt) error {
		p.controllerOptions = append(p.controllerOptions, WithControllerExitCommand(cmd))
		return nil
	}
}

// WithLogger sets the logger used for session diagnostics.
func WithLogger(l *logiface.Logger[logiface.Event]) Option {
	return func(p *Prompt) error {
		p.logger = l
		return nil
	}
}

// WithNoticeHandler sets a function called for paste and mouse input, which
// is not applied to the buffer. A non-empty return value is printed on its
// own line, after which the prompt is redrawn.
func WithNoticeHandler(fn func(Notice) string) Option {
	return func(p *Prompt) error {
		p.noticeHandler = fn
		return nil
	}
}

// WithBracketedPaste controls whether bracketed paste mode is requested from
// the terminal. It is by default.
func WithBracketedPaste(enabled bool) Option {
	return func(p *Prompt) error {
		p.renderer.bracketedPaste = enabled
		return nil
	}
}

// WithSyncProtocol enables acknowledgement of in-band sync requests, see
// SyncPrefix.
func WithSyncProtocol(enabled bool) Option {
	return func(p *Prompt) error {
		p.syncEnabled = enabled
		return nil
	}
}

// WithExitChecker sets a function called after each executed line; returning
// true ends the session.
func WithExitChecker(fn func(line string) bool) Option {
	return func(p *Prompt) error {
		p.exitChecker = fn
		return nil
	}
}
