package lineedit

import (
	istrings "github.com/joeycumines/go-lineedit/strings"
)

// Default prompt appearance.
const (
	DefaultPrefix          = "> "
	DefaultPrefixTextColor = Magenta
)

// Renderer draws the prompt and the edited line on a [ConsoleWriter].
// Everything is drawn on the terminal's current line: input starts at the
// prompt offset, and repaints only touch the columns from there onwards.
type Renderer struct {
	out ConsoleWriter

	prefix                string
	prefixTextColor       Color
	prefixBGColor         Color
	inputTextColor        Color
	bracketedPaste        bool
	bracketedPasteEnabled bool

	promptOffset istrings.Width
}

// NewRenderer returns a renderer writing to standard output.
func NewRenderer() *Renderer {
	return &Renderer{
		out:             NewStdoutWriter(),
		prefix:          DefaultPrefix,
		prefixTextColor: DefaultPrefixTextColor,
		prefixBGColor:   DefaultColor,
		inputTextColor:  DefaultColor,
		bracketedPaste:  true,
	}
}

// Setup prepares the terminal for a session.
func (r *Renderer) Setup() error {
	if r.bracketedPaste && !r.bracketedPasteEnabled {
		r.out.EnableBracketedPaste()
		r.bracketedPasteEnabled = true
	}
	return r.flush()
}

// Close restores terminal modes changed by Setup.
func (r *Renderer) Close() error {
	if r.bracketedPasteEnabled {
		r.out.DisableBracketedPaste()
		r.bracketedPasteEnabled = false
	}
	r.out.SetColor(DefaultColor, DefaultColor, false)
	r.out.ShowCursor()
	return r.flush()
}

// PromptOffset returns the display width of the prefix, as last rendered.
func (r *Renderer) PromptOffset() istrings.Width { return r.promptOffset }

// RenderPrompt draws the prefix at the start of the current line and returns
// the column at which input begins.
func (r *Renderer) RenderPrompt() (istrings.Width, error) {
	r.out.CursorGoToColumn(0)
	r.out.SetColor(r.prefixTextColor, r.prefixBGColor, false)
	r.out.WriteString(r.prefix)
	r.out.SetColor(DefaultColor, DefaultColor, false)
	r.promptOffset = istrings.GetWidth(r.prefix)
	return r.promptOffset, r.flush()
}

// Repaint redraws text after the prompt, leaving the cursor at the byte
// offset caret.
//
// The cursor position is saved after the text before the caret and restored
// once the rest is written and the line cleared.
func (r *Renderer) Repaint(text string, caret istrings.ByteNumber) error {
	if caret < 0 || caret > istrings.ByteNumber(len(text)) {
		return &OffsetError{Op: "repaint", Offset: caret, Len: istrings.ByteNumber(len(text)), Err: ErrOutOfRange}
	}
	r.out.CursorGoToColumn(r.promptOffset)
	r.out.SetColor(r.inputTextColor, DefaultColor, false)
	r.out.WriteString(text[:caret])
	r.out.SaveCursor()
	r.out.WriteString(text[caret:])
	r.out.EraseEndOfLine()
	r.out.UnSaveCursor()
	r.out.SetColor(DefaultColor, DefaultColor, false)
	return r.flush()
}

// MoveCaret positions the cursor at the byte offset caret of text, without
// redrawing.
func (r *Renderer) MoveCaret(text string, caret istrings.ByteNumber) error {
	if caret < 0 || caret > istrings.ByteNumber(len(text)) {
		return &OffsetError{Op: "move caret", Offset: caret, Len: istrings.ByteNumber(len(text)), Err: ErrOutOfRange}
	}
	r.out.CursorGoToColumn(r.promptOffset + istrings.GetWidth(text[:caret]))
	return r.flush()
}

// BreakLine moves to the start of a fresh line, after a line was submitted.
func (r *Renderer) BreakLine() error {
	r.out.WriteRawString("\n")
	r.out.CursorGoToColumn(0)
	return r.flush()
}

// PrintMessage writes msg on a line of its own, leaving the cursor at the
// start of the following line.
func (r *Renderer) PrintMessage(msg string) error {
	r.out.WriteRawString("\n")
	r.out.CursorGoToColumn(0)
	r.out.WriteString(msg)
	r.out.WriteRawString("\n")
	r.out.CursorGoToColumn(0)
	return r.flush()
}

// WriteSyncAck writes the acknowledgement for a sync request.
func (r *Renderer) WriteSyncAck(id string) error {
	r.out.WriteRaw(BuildSyncAck(id))
	return r.flush()
}

func (r *Renderer) flush() error {
	return wrapIO("flush", r.out.Flush())
}
