package lineedit

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/joeycumines/go-lineedit/debug"
	istrings "github.com/joeycumines/go-lineedit/strings"
)

// TextBuffer is the editable line: UTF-8 text plus a caret.
//
// The caret is a byte offset that is always either the length of the text or
// the start of a grapheme cluster. Every mutating method re-establishes that
// invariant before returning, including when an edit merges or splits
// clusters around the caret.
type TextBuffer struct {
	text  string
	caret istrings.ByteNumber

	// boundaries caches istrings.GraphemeBoundaries(text), nil when stale.
	boundaries []istrings.ByteNumber
}

// NewTextBuffer returns an empty buffer with the caret at 0.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

// Contents returns the full text.
func (b *TextBuffer) Contents() string { return b.text }

// Caret returns the caret offset.
func (b *TextBuffer) Caret() istrings.ByteNumber { return b.caret }

// Len returns the length of the text in bytes.
func (b *TextBuffer) Len() istrings.ByteNumber { return istrings.ByteNumber(len(b.text)) }

// IsEmpty reports whether the text is empty.
func (b *TextBuffer) IsEmpty() bool { return len(b.text) == 0 }

// TextBeforeCaret returns the text preceding the caret.
func (b *TextBuffer) TextBeforeCaret() string { return b.text[:b.caret] }

// TextAfterCaret returns the text from the caret onwards.
func (b *TextBuffer) TextAfterCaret() string { return b.text[b.caret:] }

// Insert encodes ch as UTF-8 and inserts it at the byte offset at, which must
// be a grapheme boundary or the end of the text. The caret does not move,
// other than to stay aligned if the insertion merged clusters.
func (b *TextBuffer) Insert(at istrings.ByteNumber, ch rune) error {
	if err := b.checkBoundary("insert", at); err != nil {
		return err
	}
	b.setText(b.text[:at] + string(ch) + b.text[at:])
	return nil
}

// RemoveAt removes the single scalar value starting at offset, which must be
// the start of a grapheme cluster, and returns it.
func (b *TextBuffer) RemoveAt(offset istrings.ByteNumber) (rune, error) {
	if offset == b.Len() {
		return 0, &OffsetError{Op: "remove", Offset: offset, Len: b.Len(), Err: ErrOutOfRange}
	}
	if err := b.checkBoundary("remove", offset); err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(b.text[offset:])
	b.setText(b.text[:offset] + b.text[offset+istrings.ByteNumber(size):])
	return r, nil
}

// RemoveClusterAt removes the whole grapheme cluster starting at offset and
// returns it.
func (b *TextBuffer) RemoveClusterAt(offset istrings.ByteNumber) (string, error) {
	if offset == b.Len() {
		return "", &OffsetError{Op: "remove", Offset: offset, Len: b.Len(), Err: ErrOutOfRange}
	}
	if err := b.checkBoundary("remove", offset); err != nil {
		return "", err
	}
	end := b.nextBoundary(offset)
	removed := b.text[offset:end]
	b.setText(b.text[:offset] + b.text[end:])
	return removed, nil
}

// Pop removes and returns the last scalar value. It reports false if the
// buffer was empty.
func (b *TextBuffer) Pop() (rune, bool) {
	if len(b.text) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(b.text)
	b.setText(b.text[:len(b.text)-size])
	return r, true
}

// Advance moves the caret to the next grapheme boundary, or to the end.
func (b *TextBuffer) Advance() istrings.ByteNumber {
	b.caret = b.nextBoundary(b.caret)
	return b.caret
}

// Retreat moves the caret to the previous grapheme boundary, saturating at 0.
func (b *TextBuffer) Retreat() istrings.ByteNumber {
	g := b.graphemes()
	// first index with g[i] >= caret; at the end of the text this is len(g)
	i, _ := slices.BinarySearch(g, b.caret)
	if i > 0 {
		b.caret = g[i-1]
	} else {
		b.caret = 0
	}
	return b.caret
}

// WordLeft moves the caret to just after the nearest space or tab that lies
// strictly before the character preceding the caret, or to 0.
func (b *TextBuffer) WordLeft() istrings.ByteNumber {
	if b.caret == 0 {
		return 0
	}
	pos := istrings.ByteNumber(0)
	for i := int(b.caret) - 2; i >= 0; i-- {
		if isWordSeparator(b.text[i]) {
			pos = istrings.ByteNumber(i + 1)
			break
		}
	}
	b.caret = pos
	b.align()
	return b.caret
}

// WordRight moves the caret to just after the nearest space or tab that lies
// strictly after the caret, or to the end.
func (b *TextBuffer) WordRight() istrings.ByteNumber {
	pos := b.Len()
	for i := int(b.caret) + 1; i < len(b.text); i++ {
		if isWordSeparator(b.text[i]) {
			pos = istrings.ByteNumber(i + 1)
			break
		}
	}
	b.caret = pos
	b.align()
	return b.caret
}

// ReplaceAll replaces the text. The caret is clamped to the new length and
// aligned, but otherwise left alone.
func (b *TextBuffer) ReplaceAll(text string) {
	b.setText(text)
}

// MoveToEnd puts the caret after the last character.
func (b *TextBuffer) MoveToEnd() istrings.ByteNumber {
	b.caret = b.Len()
	return b.caret
}

// SetCaret moves the caret to offset, which must be a grapheme boundary or the
// end of the text.
func (b *TextBuffer) SetCaret(offset istrings.ByteNumber) error {
	if err := b.checkBoundary("set caret", offset); err != nil {
		return err
	}
	b.caret = offset
	return nil
}

// Reset empties the buffer and puts the caret at 0.
func (b *TextBuffer) Reset() {
	b.caret = 0
	b.setText("")
}

func (b *TextBuffer) String() string {
	return fmt.Sprintf("%q@%d", b.text, b.caret)
}

func (b *TextBuffer) checkBoundary(op string, offset istrings.ByteNumber) error {
	if offset < 0 || offset > b.Len() {
		return &OffsetError{Op: op, Offset: offset, Len: b.Len(), Err: ErrOutOfRange}
	}
	if offset == b.Len() {
		return nil
	}
	if _, found := slices.BinarySearch(b.graphemes(), offset); !found {
		debug.Assert(false, func() string {
			return fmt.Sprintf("%s at %d splits a grapheme cluster in %q", op, offset, b.text)
		})
		return &OffsetError{Op: op, Offset: offset, Len: b.Len(), Err: ErrNotBoundary}
	}
	return nil
}

func (b *TextBuffer) graphemes() []istrings.ByteNumber {
	if b.boundaries == nil && len(b.text) != 0 {
		b.boundaries = istrings.GraphemeBoundaries(b.text)
	}
	return b.boundaries
}

// nextBoundary returns the smallest boundary strictly greater than offset, or
// the end of the text.
func (b *TextBuffer) nextBoundary(offset istrings.ByteNumber) istrings.ByteNumber {
	g := b.graphemes()
	i, found := slices.BinarySearch(g, offset)
	if found {
		i++
	}
	if i < len(g) {
		return g[i]
	}
	return b.Len()
}

func (b *TextBuffer) setText(text string) {
	b.text = text
	b.boundaries = nil
	b.align()
}

// align clamps the caret into the text and snaps it back to the start of the
// cluster that contains it.
func (b *TextBuffer) align() {
	switch {
	case b.caret < 0:
		b.caret = 0
	case b.caret >= b.Len():
		b.caret = b.Len()
	default:
		b.caret = istrings.ContainingBoundary(b.graphemes(), b.caret)
	}
}

func isWordSeparator(c byte) bool {
	return c == ' ' || c == '\t'
}
