package termtest

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func lookupKey(k string) (string, error) {
	if seq, ok := keyMap[strings.ToLower(k)]; ok {
		return seq, nil
	}
	return "", fmt.Errorf("unknown key: %s", k)
}

// KeyNames returns the names accepted by Send and SendSync, sorted.
func KeyNames() []string {
	return slices.Sorted(maps.Keys(keyMap))
}

// keyMap maps key names to the bytes an xterm-compatible terminal sends.
// Names follow bubbletea's conventions. Anything not listed can be sent with
// WriteString.
var keyMap = map[string]string{
	"ctrl+@": "\x00",
	"ctrl+a": "\x01",
	"ctrl+b": "\x02",
	"ctrl+c": "\x03",
	"ctrl+d": "\x04",
	"ctrl+e": "\x05",
	"ctrl+f": "\x06",
	"ctrl+g": "\x07",
	"ctrl+h": "\x08",
	"ctrl+k": "\x0b",
	"ctrl+l": "\x0c",
	"ctrl+n": "\x0e",
	"ctrl+p": "\x10",
	"ctrl+u": "\x15",
	"ctrl+w": "\x17",
	"ctrl+z": "\x1a",
	"ctrl+?": "\x7f",

	// enter is CR, ctrl+j is LF; both submit
	"enter":     "\r",
	"ctrl+j":    "\n",
	"tab":       "\t",
	"shift+tab": "\x1b[Z",
	"backspace": "\x7f",
	"esc":       "\x1b",
	"escape":    "\x1b",
	"space":     " ",

	"up":    "\x1b[A",
	"down":  "\x1b[B",
	"right": "\x1b[C",
	"left":  "\x1b[D",

	"shift+up":    "\x1b[1;2A",
	"shift+down":  "\x1b[1;2B",
	"shift+right": "\x1b[1;2C",
	"shift+left":  "\x1b[1;2D",

	"alt+up":    "\x1b[1;3A",
	"alt+down":  "\x1b[1;3B",
	"alt+right": "\x1b[1;3C",
	"alt+left":  "\x1b[1;3D",

	"ctrl+up":    "\x1b[1;5A",
	"ctrl+down":  "\x1b[1;5B",
	"ctrl+right": "\x1b[1;5C",
	"ctrl+left":  "\x1b[1;5D",

	// readline word motion
	"alt+b":         "\x1bb",
	"alt+f":         "\x1bf",
	"alt+backspace": "\x1b\x7f",

	"home":     "\x1b[H",
	"end":      "\x1b[F",
	"insert":   "\x1b[2~",
	"delete":   "\x1b[3~",
	"pgup":     "\x1b[5~",
	"pgdown":   "\x1b[6~",
	"f1":       "\x1bOP",
	"f2":       "\x1bOQ",
	"f3":       "\x1bOR",
	"f4":       "\x1bOS",
	"ss3+up":   "\x1bOA",
	"ss3+down": "\x1bOB",
}
