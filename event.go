package lineedit

// Event is a single decoded input occurrence, as produced by an
// [InputSource] and consumed by [Controller.Dispatch].
//
// The concrete types are [KeyPress], [Resize], [Paste], [Mouse] and
// [SyncRequest].
type Event interface {
	isEvent()
}

// Modifier is a bit set of the modifier keys held during a key press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

func (m Modifier) String() string {
	if m == 0 {
		return "None"
	}
	var s string
	for _, v := range [...]struct {
		mod  Modifier
		name string
	}{
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
	} {
		if m.Has(v.mod) {
			if s != "" {
				s += "+"
			}
			s += v.name
		}
	}
	return s
}

// KeyKind distinguishes presses from repeats and releases. Terminals that do
// not report releases only ever produce KeyPressed.
type KeyKind uint8

const (
	KeyPressed KeyKind = iota
	KeyRepeated
	KeyReleased
)

func (k KeyKind) String() string {
	switch k {
	case KeyPressed:
		return "Pressed"
	case KeyRepeated:
		return "Repeated"
	case KeyReleased:
		return "Released"
	default:
		return "KeyKind(?)"
	}
}

// KeyPress is a key event. Rune is set when Key is [RuneKey], including for
// control chords such as Ctrl+D, which arrive as Rune 'd' with ModCtrl.
type KeyPress struct {
	Key  Key
	Rune rune
	Mod  Modifier
	Kind KeyKind
}

// Resize reports new terminal dimensions, in cells.
type Resize struct {
	Cols uint16
	Rows uint16
}

// Paste carries bracketed paste contents, with the markers stripped.
type Paste struct {
	Data []byte
}

// Mouse carries a raw mouse report (X10 or SGR encoding).
type Mouse struct {
	Raw []byte
}

// SyncRequest is an in-band request, sent by a test driver, that must be
// acknowledged once all preceding input has been processed and drawn.
type SyncRequest struct {
	ID string
}

func (KeyPress) isEvent()    {}
func (Resize) isEvent()      {}
func (Paste) isEvent()       {}
func (Mouse) isEvent()       {}
func (SyncRequest) isEvent() {}
