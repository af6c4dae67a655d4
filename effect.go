package lineedit

import istrings "github.com/joeycumines/go-lineedit/strings"

// Effect is an instruction returned by [Controller.Dispatch], describing what
// must be drawn or what the session must do next.
type Effect interface {
	isEffect()
}

// Repaint redraws the buffer contents after the prompt, with the caret placed
// at Caret.
type Repaint struct {
	Caret istrings.ByteNumber
}

// MoveCaret repositions the caret without redrawing text.
type MoveCaret struct {
	Caret istrings.ByteNumber
}

// Submit delivers a completed line.
type Submit struct {
	Line string
}

// Interrupt ends the current line without submitting it, because the terminal
// was resized. The buffer is kept.
type Interrupt struct {
	Cols uint16
	Rows uint16
}

// TerminateReason says why a session ended.
type TerminateReason int

const (
	// TerminateEOF is end of input (Ctrl+D).
	TerminateEOF TerminateReason = iota
	// TerminateExitCommand is the exit command being submitted.
	TerminateExitCommand
)

func (r TerminateReason) String() string {
	switch r {
	case TerminateEOF:
		return "EOF"
	case TerminateExitCommand:
		return "ExitCommand"
	default:
		return "TerminateReason(?)"
	}
}

// Terminate ends the session.
type Terminate struct {
	Reason TerminateReason
}

// NoticeKind classifies a [Notice].
type NoticeKind int

const (
	NoticePaste NoticeKind = iota
	NoticeMouse
)

func (k NoticeKind) String() string {
	switch k {
	case NoticePaste:
		return "Paste"
	case NoticeMouse:
		return "Mouse"
	default:
		return "NoticeKind(?)"
	}
}

// Notice reports input that was received but not applied to the buffer.
type Notice struct {
	Kind NoticeKind
	Data []byte
}

func (Repaint) isEffect()   {}
func (MoveCaret) isEffect() {}
func (Submit) isEffect()    {}
func (Interrupt) isEffect() {}
func (Terminate) isEffect() {}
func (Notice) isEffect()    {}
