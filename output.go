package lineedit

import istrings "github.com/joeycumines/go-lineedit/strings"

// DisplayAttribute represents display attributes like Blinking, Bold, Italic and so on.
type DisplayAttribute int

const (
	// DisplayReset reset all display attributes.
	DisplayReset DisplayAttribute = iota
	// DisplayBold set bold or increases intensity.
	DisplayBold
	// DisplayLowIntensity decreases intensity. Not widely supported.
	DisplayLowIntensity
	// DisplayItalic set italic. Not widely supported.
	DisplayItalic
	// DisplayUnderline set underline
	DisplayUnderline
	// DisplayBlink set blink (less than 150 per minute).
	DisplayBlink
	// DisplayRapidBlink set blink (more than 150 per minute). Not widely supported.
	DisplayRapidBlink
	// DisplayReverse swap foreground and background colors.
	DisplayReverse
	// DisplayInvisible set invisible. Not widely supported.
	DisplayInvisible
	// DisplayCrossedOut set characters legible, but marked for deletion. Not widely supported.
	DisplayCrossedOut
	// DisplayDefaultFont set primary(default) font
	DisplayDefaultFont
)

// Color represents color on terminal.
type Color int

const (
	// DefaultColor represents a default color.
	DefaultColor Color = iota

	// Low intensity

	// Black represents a black.
	Black
	// DarkRed represents a dark red.
	DarkRed
	// DarkGreen represents a dark green.
	DarkGreen
	// Brown represents a brown.
	Brown
	// DarkBlue represents a dark blue.
	DarkBlue
	// Purple represents a purple.
	Purple
	// Cyan represents a cyan.
	Cyan
	// LightGray represents a light gray.
	LightGray

	// High intensity

	// DarkGray represents a dark gray.
	DarkGray
	// Red represents a red.
	Red
	// Green represents a green.
	Green
	// Yellow represents a yellow.
	Yellow
	// Blue represents a blue.
	Blue
	// Fuchsia represents a fuchsia.
	Fuchsia
	// Turquoise represents a turquoise.
	Turquoise
	// White represents a white.
	White
)

// Magenta is an alias of Purple, the colour of the default prefix.
const Magenta = Purple

// ConsoleWriter is the drawing surface a [Renderer] writes to. Calls are
// buffered until Flush.
type ConsoleWriter interface {
	// WriteRaw writes bytes as-is.
	WriteRaw(data []byte)
	// Write writes text, neutralising any escape bytes it contains.
	Write(data []byte)
	// WriteRawString writes a string as-is.
	WriteRawString(data string)
	// WriteString writes text, neutralising any escape bytes it contains.
	WriteString(data string)
	// Flush sends everything buffered to the terminal.
	Flush() error

	// EraseEndOfLine erases from the cursor to the end of the line.
	EraseEndOfLine()

	// CursorGoToColumn moves the cursor to the 0-based column col.
	CursorGoToColumn(col istrings.Width)
	// SaveCursor saves the cursor position.
	SaveCursor()
	// UnSaveCursor restores the cursor position saved by SaveCursor.
	UnSaveCursor()
	// HideCursor hides the cursor.
	HideCursor()
	// ShowCursor shows the cursor.
	ShowCursor()

	// SetColor sets the text and background colors.
	SetColor(fg, bg Color, bold bool)
	// SetDisplayAttributes sets colors and display attributes together.
	SetDisplayAttributes(fg, bg Color, attrs ...DisplayAttribute)

	// EnableBracketedPaste asks the terminal to mark pasted text.
	EnableBracketedPaste()
	// DisableBracketedPaste undoes EnableBracketedPaste.
	DisableBracketedPaste()
}
