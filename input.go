package lineedit

import (
	"bytes"
	"slices"
)

// ASCIICode maps an input byte sequence to the key it represents.
type ASCIICode struct {
	Key       Key
	Mod       Modifier
	ASCIICode []byte
}

// GetKey returns the key and modifiers encoded by exactly b, or NotDefined.
func GetKey(b []byte) (Key, Modifier) {
	for _, k := range ASCIISequences {
		if bytes.Equal(k.ASCIICode, b) {
			return k.Key, k.Mod
		}
	}
	return NotDefined, 0
}

// matchSequence returns the longest entry of ASCIISequences that prefixes b.
func matchSequence(b []byte) *ASCIICode {
	for _, k := range ASCIISequences {
		if bytes.HasPrefix(b, k.ASCIICode) {
			return k
		}
	}
	return nil
}

func init() {
	// longest first, so that matchSequence prefers e.g. ESC [ A over ESC
	slices.SortStableFunc(ASCIISequences, func(a, b *ASCIICode) int {
		return len(b.ASCIICode) - len(a.ASCIICode)
	})
}

// ASCIISequences holds the sequences sent by common terminals, sorted from
// longest to shortest.
var ASCIISequences = []*ASCIICode{
	{Key: Escape, ASCIICode: []byte{0x1b}},

	{Key: Enter, ASCIICode: []byte{0x0d}},
	{Key: Enter, ASCIICode: []byte{0x0a}},
	{Key: Tab, ASCIICode: []byte{0x09}},
	{Key: Backspace, ASCIICode: []byte{0x7f}},
	{Key: Backspace, ASCIICode: []byte{0x08}},
	{Key: Backspace, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x7f}},

	{Key: Up, ASCIICode: []byte{0x1b, 0x5b, 0x41}},
	{Key: Down, ASCIICode: []byte{0x1b, 0x5b, 0x42}},
	{Key: Right, ASCIICode: []byte{0x1b, 0x5b, 0x43}},
	{Key: Left, ASCIICode: []byte{0x1b, 0x5b, 0x44}},
	{Key: Up, ASCIICode: []byte{0x1b, 0x4f, 0x41}},
	{Key: Down, ASCIICode: []byte{0x1b, 0x4f, 0x42}},
	{Key: Right, ASCIICode: []byte{0x1b, 0x4f, 0x43}},
	{Key: Left, ASCIICode: []byte{0x1b, 0x4f, 0x44}},

	{Key: Up, Mod: ModShift, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x32, 0x41}},
	{Key: Down, Mod: ModShift, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x32, 0x42}},
	{Key: Right, Mod: ModShift, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x32, 0x43}},
	{Key: Left, Mod: ModShift, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x32, 0x44}},

	{Key: Up, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x33, 0x41}},
	{Key: Down, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x33, 0x42}},
	{Key: Right, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x33, 0x43}},
	{Key: Left, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x33, 0x44}},
	// iTerm2 reports option+arrow as meta (9)
	{Key: Right, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x39, 0x43}},
	{Key: Left, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x39, 0x44}},
	{Key: Right, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x1b, 0x5b, 0x43}},
	{Key: Left, Mod: ModAlt, ASCIICode: []byte{0x1b, 0x1b, 0x5b, 0x44}},
	// readline style meta-f / meta-b
	{Key: Right, Mod: ModAlt, ASCIICode: []byte{0x1b, 'f'}},
	{Key: Left, Mod: ModAlt, ASCIICode: []byte{0x1b, 'b'}},

	{Key: Up, Mod: ModCtrl, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x35, 0x41}},
	{Key: Down, Mod: ModCtrl, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x35, 0x42}},
	{Key: Right, Mod: ModCtrl, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x35, 0x43}},
	{Key: Left, Mod: ModCtrl, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x3b, 0x35, 0x44}},

	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x48}},
	{Key: Home, ASCIICode: []byte{0x1b, 0x4f, 0x48}},
	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x31, 0x7e}},
	{Key: Home, ASCIICode: []byte{0x1b, 0x5b, 0x37, 0x7e}},
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x46}},
	{Key: End, ASCIICode: []byte{0x1b, 0x4f, 0x46}},
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x34, 0x7e}},
	{Key: End, ASCIICode: []byte{0x1b, 0x5b, 0x38, 0x7e}},

	{Key: Insert, ASCIICode: []byte{0x1b, 0x5b, 0x32, 0x7e}},
	{Key: Delete, ASCIICode: []byte{0x1b, 0x5b, 0x33, 0x7e}},
	{Key: PageUp, ASCIICode: []byte{0x1b, 0x5b, 0x35, 0x7e}},
	{Key: PageDown, ASCIICode: []byte{0x1b, 0x5b, 0x36, 0x7e}},
	{Key: BackTab, ASCIICode: []byte{0x1b, 0x5b, 0x5a}},

	{Key: F1, ASCIICode: []byte{0x1b, 0x4f, 0x50}},
	{Key: F2, ASCIICode: []byte{0x1b, 0x4f, 0x51}},
	{Key: F3, ASCIICode: []byte{0x1b, 0x4f, 0x52}},
	{Key: F4, ASCIICode: []byte{0x1b, 0x4f, 0x53}},
}
