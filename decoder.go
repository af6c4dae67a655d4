package lineedit

import (
	"bytes"
	"unicode/utf8"

	"github.com/joeycumines/go-lineedit/debug"
)

const (
	bracketedPasteStart = "\x1b[200~"
	bracketedPasteEnd   = "\x1b[201~"
	mouseX10Prefix      = "\x1b[M"
	mouseSGRPrefix      = "\x1b[<"
)

// Decoder turns raw terminal input into events. Input may be fed in arbitrary
// chunks: sequences split across chunks are held until they complete.
//
// The zero value is ready to use.
type Decoder struct {
	pending []byte
	paste   []byte
	inPaste bool
}

// Feed consumes b and returns every event that is now complete.
func (d *Decoder) Feed(b []byte) []Event {
	d.pending = append(d.pending, b...)
	var events []Event
	for len(d.pending) > 0 {
		ev, n, ok := d.next()
		if !ok {
			break
		}
		d.pending = d.pending[n:]
		if ev != nil {
			events = append(events, ev)
		}
	}
	if len(d.pending) == 0 {
		d.pending = nil
	}
	return events
}

// Flush resolves a lone escape byte held at the end of the input into an
// Escape key press. It is called once input has gone idle, since a bare ESC
// is otherwise indistinguishable from the start of a sequence.
func (d *Decoder) Flush() []Event {
	if !d.inPaste && bytes.Equal(d.pending, []byte{0x1b}) {
		d.pending = nil
		return []Event{KeyPress{Key: Escape}}
	}
	return nil
}

// Pending reports whether incomplete input is being held.
func (d *Decoder) Pending() bool { return len(d.pending) != 0 || d.inPaste }

// next decodes one event from the head of pending, returning the number of
// bytes consumed. ok is false when more input is needed. A nil event with ok
// set means the bytes were consumed without producing anything.
func (d *Decoder) next() (ev Event, n int, ok bool) {
	p := d.pending

	if d.inPaste {
		return d.nextPaste()
	}

	if p[0] == 0x1b {
		switch {
		case hasPrefixOrPartial(p, bracketedPasteStart):
			if len(p) < len(bracketedPasteStart) {
				return nil, 0, false
			}
			d.inPaste = true
			d.paste = d.paste[:0]
			return nil, len(bracketedPasteStart), true

		case hasPrefixOrPartial(p, SyncPrefix):
			return d.nextSync()

		case bytes.HasPrefix(p, []byte(mouseSGRPrefix)):
			i := bytes.IndexAny(p[len(mouseSGRPrefix):], "Mm")
			if i < 0 {
				return nil, 0, false
			}
			n = len(mouseSGRPrefix) + i + 1
			return Mouse{Raw: bytes.Clone(p[:n])}, n, true

		case bytes.HasPrefix(p, []byte(mouseX10Prefix)):
			n = len(mouseX10Prefix) + 3
			if len(p) < n {
				return nil, 0, false
			}
			return Mouse{Raw: bytes.Clone(p[:n])}, n, true
		}
	}

	if k := matchSequence(p); k != nil && !(k.Key == Escape && len(p) > 1) {
		return KeyPress{Key: k.Key, Mod: k.Mod}, len(k.ASCIICode), true
	}

	if p[0] == 0x1b {
		return d.nextEscape()
	}

	if p[0] < 0x20 {
		if p[0] >= 0x01 && p[0] <= 0x1a {
			return KeyPress{Key: RuneKey, Rune: rune('a' + p[0] - 1), Mod: ModCtrl}, 1, true
		}
		return nil, 1, true
	}

	if !utf8.FullRune(p) {
		return nil, 0, false
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size == 1 {
		debug.Log("dropping invalid utf-8 byte")
		return nil, 1, true
	}
	return KeyPress{Key: RuneKey, Rune: r}, size, true
}

// nextEscape handles an escape sequence not found in ASCIISequences.
func (d *Decoder) nextEscape() (Event, int, bool) {
	p := d.pending
	switch p[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte
		for i := 2; i < len(p); i++ {
			if p[i] >= 0x40 && p[i] <= 0x7e {
				debug.Log("ignoring unknown CSI sequence")
				return nil, i + 1, true
			}
		}
		return nil, 0, false
	case 'O':
		if len(p) < 3 {
			return nil, 0, false
		}
		return nil, 3, true
	case '_':
		// APC other than a sync request
		if i := bytes.Index(p, []byte(StringTerminator)); i >= 0 {
			return nil, i + len(StringTerminator), true
		}
		if len(p) > maxSyncBufferSize {
			return nil, len(p), true
		}
		return nil, 0, false
	}
	if !utf8.FullRune(p[1:]) {
		return nil, 0, false
	}
	r, size := utf8.DecodeRune(p[1:])
	if r == utf8.RuneError && size == 1 {
		return KeyPress{Key: Escape}, 1, true
	}
	if r < 0x20 {
		// ESC followed by a control byte, e.g. a double escape
		return KeyPress{Key: Escape}, 1, true
	}
	return KeyPress{Key: RuneKey, Rune: r, Mod: ModAlt}, 1 + size, true
}

func (d *Decoder) nextSync() (Event, int, bool) {
	p := d.pending
	if len(p) < len(SyncPrefix) {
		return nil, 0, false
	}
	i := bytes.Index(p[len(SyncPrefix):], []byte(StringTerminator))
	if i < 0 {
		if len(p) > maxSyncBufferSize {
			debug.Log("dropping oversized sync request")
			return nil, len(p), true
		}
		return nil, 0, false
	}
	id := string(p[len(SyncPrefix) : len(SyncPrefix)+i])
	return SyncRequest{ID: id}, len(SyncPrefix) + i + len(StringTerminator), true
}

func (d *Decoder) nextPaste() (Event, int, bool) {
	p := d.pending
	if i := bytes.Index(p, []byte(bracketedPasteEnd)); i >= 0 {
		d.paste = append(d.paste, p[:i]...)
		d.inPaste = false
		ev := Paste{Data: append(make([]byte, 0, len(d.paste)), d.paste...)}
		d.paste = d.paste[:0]
		return ev, i + len(bracketedPasteEnd), true
	}
	// keep anything that might be the start of the end marker
	keep := 0
	for k := min(len(p), len(bracketedPasteEnd)-1); k > 0; k-- {
		if bytes.HasPrefix([]byte(bracketedPasteEnd), p[len(p)-k:]) {
			keep = k
			break
		}
	}
	if keep == len(p) {
		return nil, 0, false
	}
	d.paste = append(d.paste, p[:len(p)-keep]...)
	return nil, len(p) - keep, true
}

// hasPrefixOrPartial reports whether p starts with prefix, or p is itself a
// prefix of prefix.
func hasPrefixOrPartial(p []byte, prefix string) bool {
	if len(p) >= len(prefix) {
		return bytes.HasPrefix(p, []byte(prefix))
	}
	return bytes.HasPrefix([]byte(prefix), p)
}
