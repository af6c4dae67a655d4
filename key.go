package lineedit

// Key identifies a keyboard key, independent of modifiers.
type Key int

const (
	NotDefined Key = iota

	// RuneKey is any key producing a character; see KeyPress.Rune.
	RuneKey

	Escape
	Enter
	Tab
	BackTab
	Backspace
	Delete
	Insert

	Up
	Down
	Right
	Left

	Home
	End
	PageUp
	PageDown

	F1
	F2
	F3
	F4
)

var keyNames = [...]string{
	NotDefined: "NotDefined",
	RuneKey:    "Rune",
	Escape:     "Escape",
	Enter:      "Enter",
	Tab:        "Tab",
	BackTab:    "BackTab",
	Backspace:  "Backspace",
	Delete:     "Delete",
	Insert:     "Insert",
	Up:         "Up",
	Down:       "Down",
	Right:      "Right",
	Left:       "Left",
	Home:       "Home",
	End:        "End",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
	F1:         "F1",
	F2:         "F2",
	F3:         "F3",
	F4:         "F4",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return "Key(?)"
}
