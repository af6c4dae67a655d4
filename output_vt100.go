package lineedit

import (
	"bytes"
	"io"
	"strconv"

	istrings "github.com/joeycumines/go-lineedit/strings"
)

// VT100Writer generates VT100 escape sequences, buffering them until Flush
// writes them to the underlying writer.
type VT100Writer struct {
	out    io.Writer
	buffer []byte
}

var _ ConsoleWriter = (*VT100Writer)(nil)

// NewWriter returns a VT100Writer flushing to out.
func NewWriter(out io.Writer) *VT100Writer {
	return &VT100Writer{out: out}
}

// WriteRaw to write raw byte array
func (w *VT100Writer) WriteRaw(data []byte) {
	w.buffer = append(w.buffer, data...)
}

// Write to write safety byte array by removing control sequences.
func (w *VT100Writer) Write(data []byte) {
	w.WriteRaw(bytes.ReplaceAll(data, []byte{0x1b}, []byte{'?'}))
}

// WriteRawString to write raw string
func (w *VT100Writer) WriteRawString(data string) {
	w.WriteRaw([]byte(data))
}

// WriteString to write safety string by removing control sequences.
func (w *VT100Writer) WriteString(data string) {
	w.Write([]byte(data))
}

// Flush writes everything buffered so far. The buffer is discarded even when
// the write fails.
func (w *VT100Writer) Flush() error {
	if len(w.buffer) == 0 {
		return nil
	}
	_, err := w.out.Write(w.buffer)
	w.buffer = w.buffer[:0]
	return wrapIO("write", err)
}

// Buffered returns the bytes not yet flushed.
func (w *VT100Writer) Buffered() []byte { return w.buffer }

// EraseEndOfLine erases from the current cursor position to the end of the current line.
func (w *VT100Writer) EraseEndOfLine() {
	w.WriteRaw([]byte{0x1b, '[', 'K'})
}

// CursorGoToColumn moves the cursor to the given 0-based column.
func (w *VT100Writer) CursorGoToColumn(col istrings.Width) {
	if col < 0 {
		col = 0
	}
	w.WriteRaw([]byte{0x1b, '['})
	w.WriteRaw(strconv.AppendInt(nil, int64(col)+1, 10))
	w.WriteRaw([]byte{'G'})
}

// SaveCursor saves current cursor position.
func (w *VT100Writer) SaveCursor() {
	w.WriteRaw([]byte{0x1b, '[', 's'})
}

// UnSaveCursor restores cursor position after a Save Cursor.
func (w *VT100Writer) UnSaveCursor() {
	w.WriteRaw([]byte{0x1b, '[', 'u'})
}

// HideCursor hides cursor.
func (w *VT100Writer) HideCursor() {
	w.WriteRaw([]byte{0x1b, '[', '?', '2', '5', 'l'})
}

// ShowCursor shows cursor.
func (w *VT100Writer) ShowCursor() {
	w.WriteRaw([]byte{0x1b, '[', '?', '1', '2', 'l', 0x1b, '[', '?', '2', '5', 'h'})
}

// EnableBracketedPaste enables bracketed paste mode.
func (w *VT100Writer) EnableBracketedPaste() {
	w.WriteRaw([]byte("\x1b[?2004h"))
}

// DisableBracketedPaste disables bracketed paste mode.
func (w *VT100Writer) DisableBracketedPaste() {
	w.WriteRaw([]byte("\x1b[?2004l"))
}

// SetColor sets text and background colors. and specify whether text is bold.
func (w *VT100Writer) SetColor(fg, bg Color, bold bool) {
	if bold {
		w.SetDisplayAttributes(fg, bg, DisplayBold)
	} else {
		// If using `DisplayDefaultFont`, it will be broken in some environment.
		// Details are https://github.com/c-bata/go-prompt/pull/85.
		// Use `DisplayReset` instead of `DisplayDefaultFont`.
		w.SetDisplayAttributes(fg, bg, DisplayReset)
	}
}

// SetDisplayAttributes to set VT100 display attributes.
func (w *VT100Writer) SetDisplayAttributes(fg, bg Color, attrs ...DisplayAttribute) {
	w.WriteRaw([]byte{0x1b, '['}) // control sequence introducer
	defer w.WriteRaw([]byte{'m'}) // final character

	var separator byte = ';'
	for i := range attrs {
		p, ok := displayAttributeParameters[attrs[i]]
		if !ok {
			continue
		}
		w.WriteRaw(p)
		w.WriteRaw([]byte{separator})
	}

	f, ok := foregroundColors[fg]
	if !ok {
		f = foregroundColors[DefaultColor]
	}
	w.WriteRaw(f)
	w.WriteRaw([]byte{separator})
	b, ok := backgroundColors[bg]
	if !ok {
		b = backgroundColors[DefaultColor]
	}
	w.WriteRaw(b)
}

var displayAttributeParameters = map[DisplayAttribute][]byte{
	DisplayReset:        {'0'},
	DisplayBold:         {'1'},
	DisplayLowIntensity: {'2'},
	DisplayItalic:       {'3'},
	DisplayUnderline:    {'4'},
	DisplayBlink:        {'5'},
	DisplayRapidBlink:   {'6'},
	DisplayReverse:      {'7'},
	DisplayInvisible:    {'8'},
	DisplayCrossedOut:   {'9'},
	DisplayDefaultFont:  {'1', '0'},
}

var foregroundColors = map[Color][]byte{
	DefaultColor: {'3', '9'},

	// Low intensity.
	Black:     {'3', '0'},
	DarkRed:   {'3', '1'},
	DarkGreen: {'3', '2'},
	Brown:     {'3', '3'},
	DarkBlue:  {'3', '4'},
	Purple:    {'3', '5'},
	Cyan:      {'3', '6'},
	LightGray: {'3', '7'},

	// High intensity.
	DarkGray:  {'9', '0'},
	Red:       {'9', '1'},
	Green:     {'9', '2'},
	Yellow:    {'9', '3'},
	Blue:      {'9', '4'},
	Fuchsia:   {'9', '5'},
	Turquoise: {'9', '6'},
	White:     {'9', '7'},
}

var backgroundColors = map[Color][]byte{
	DefaultColor: {'4', '9'},

	// Low intensity.
	Black:     {'4', '0'},
	DarkRed:   {'4', '1'},
	DarkGreen: {'4', '2'},
	Brown:     {'4', '3'},
	DarkBlue:  {'4', '4'},
	Purple:    {'4', '5'},
	Cyan:      {'4', '6'},
	LightGray: {'4', '7'},

	// High intensity
	DarkGray:  {'1', '0', '0'},
	Red:       {'1', '0', '1'},
	Green:     {'1', '0', '2'},
	Yellow:    {'1', '0', '3'},
	Blue:      {'1', '0', '4'},
	Fuchsia:   {'1', '0', '5'},
	Turquoise: {'1', '0', '6'},
	White:     {'1', '0', '7'},
}
