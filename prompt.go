package lineedit

import (
	"context"
	"errors"
	"fmt"

	"github.com/joeycumines/go-lineedit/debug"
	"github.com/joeycumines/logiface"
)

// Executor is called with each submitted line.
type Executor func(line string)

// Prompt is a core struct of the line editor.
type Prompt struct {
	input      InputSource
	renderer   *Renderer
	controller *Controller
	executor   Executor
	logger     *logiface.Logger[logiface.Event]

	controllerOptions []ControllerOption
	initialHistory    []string
	historyCapacity   int
	noticeHandler     func(Notice) string
	exitChecker       func(string) bool
	syncEnabled       bool
}

// New returns a Prompt calling executor with every submitted line.
func New(executor Executor, opts ...Option) (*Prompt, error) {
	p := &Prompt{
		renderer:        NewRenderer(),
		executor:        executor,
		historyCapacity: DefaultHistoryCapacity,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.input == nil {
		p.input = NewTerminalInput(NewStdinReader())
	}
	if p.logger == nil {
		p.logger = debug.Logger()
	}
	history := NewHistory(p.historyCapacity)
	for _, line := range p.initialHistory {
		history.Push(line)
	}
	p.controller = NewController(append([]ControllerOption{WithControllerHistory(history)}, p.controllerOptions...)...)
	return p, nil
}

// Controller returns the controller driving this prompt.
func (p *Prompt) Controller() *Controller { return p.controller }

// Run starts the prompt, calling the executor for each submitted line, until
// the session terminates, the context is done, or the terminal fails.
//
// The terminal is released on every exit path, including panics, which are
// propagated once the terminal has been restored. Termination by Ctrl+D or
// the exit command returns nil.
func (p *Prompt) Run(ctx context.Context) error {
	_, err := p.run(ctx, false)
	if errors.Is(err, ErrTerminated) {
		err = nil
	}
	return err
}

// Input reads a single line. ErrTerminated is returned if the session ended
// without one being submitted.
func (p *Prompt) Input(ctx context.Context) (string, error) {
	return p.run(ctx, true)
}

func (p *Prompt) run(ctx context.Context, once bool) (line string, err error) {
	if p.controller.State() == Terminated {
		return "", ErrTerminated
	}
	if err := p.input.Open(); err != nil {
		p.logger.Err().Err(err).Log("failed to open terminal input")
		return "", err
	}
	defer func() {
		closeErr := p.renderer.Close()
		if inputErr := p.input.Close(); closeErr == nil {
			closeErr = inputErr
		}
		if err == nil && closeErr != nil {
			err = closeErr
		}
		if err != nil && !errors.Is(err, ErrTerminated) {
			p.logger.Err().Err(err).Log("prompt stopped")
		}
	}()
	if err := p.renderer.Setup(); err != nil {
		return "", err
	}

	if err := p.beginLine(); err != nil {
		return "", err
	}
	for {
		ev, err := p.input.ReadEvent(ctx)
		if err != nil {
			return "", err
		}

		if req, ok := ev.(SyncRequest); ok {
			if p.syncEnabled {
				if err := p.renderer.WriteSyncAck(req.ID); err != nil {
					return "", err
				}
			}
			continue
		}

		for _, effect := range p.controller.Dispatch(ev) {
			switch effect := effect.(type) {
			case Repaint:
				err = p.renderer.Repaint(p.controller.Text(), effect.Caret)

			case MoveCaret:
				err = p.renderer.MoveCaret(p.controller.Text(), effect.Caret)

			case Submit:
				p.logger.Debug().Int("bytes", len(effect.Line)).Log("line submitted")
				if err := p.renderer.BreakLine(); err != nil {
					return "", err
				}
				if once {
					return effect.Line, nil
				}
				if err := p.execute(effect.Line); err != nil {
					return "", err
				}
				if p.exitChecker != nil && p.exitChecker(effect.Line) {
					return "", ErrTerminated
				}
				err = p.beginLine()

			case Interrupt:
				p.logger.Debug().
					Int("cols", int(effect.Cols)).
					Int("rows", int(effect.Rows)).
					Log("terminal resized")
				if err := p.renderer.PrintMessage(fmt.Sprintf("width: %d, height: %d", effect.Cols, effect.Rows)); err != nil {
					return "", err
				}
				err = p.beginLine()

			case Notice:
				p.logger.Info().
					Str("kind", effect.Kind.String()).
					Int("bytes", len(effect.Data)).
					Log("input ignored")
				if p.noticeHandler == nil {
					break
				}
				msg := p.noticeHandler(effect)
				if msg == "" {
					break
				}
				if err := p.renderer.PrintMessage(msg); err != nil {
					return "", err
				}
				err = p.redraw()

			case Terminate:
				p.logger.Debug().Str("reason", effect.Reason.String()).Log("session terminated")
				if effect.Reason == TerminateEOF {
					if err := p.renderer.PrintMessage("exit"); err != nil {
						return "", err
					}
				} else if err := p.renderer.BreakLine(); err != nil {
					return "", err
				}
				return "", ErrTerminated

			default:
				debug.Assert(false, fmt.Sprintf("unexpected effect %T", effect))
			}
			if err != nil {
				return "", err
			}
		}
	}
}

// execute runs the executor with the terminal released from raw mode.
func (p *Prompt) execute(line string) error {
	if p.executor == nil {
		return nil
	}
	if err := p.input.Close(); err != nil {
		return err
	}
	p.executor(line)
	return p.input.Open()
}

// beginLine draws a fresh prompt and starts a new edit session, redrawing any
// text kept from an interrupted line.
func (p *Prompt) beginLine() error {
	offset, err := p.renderer.RenderPrompt()
	if err != nil {
		return err
	}
	p.controller.Begin(offset)
	if p.controller.Text() != "" {
		return p.renderer.Repaint(p.controller.Text(), p.controller.Caret())
	}
	return nil
}

// redraw draws the prompt and the current text, within the same session.
func (p *Prompt) redraw() error {
	if _, err := p.renderer.RenderPrompt(); err != nil {
		return err
	}
	return p.renderer.Repaint(p.controller.Text(), p.controller.Caret())
}
