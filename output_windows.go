//go:build windows

package lineedit

import (
	colorable "github.com/mattn/go-colorable"
)

// NewStdoutWriter returns a ConsoleWriter for standard output, translating
// escape sequences for consoles that lack native VT support.
func NewStdoutWriter() ConsoleWriter {
	return NewWriter(colorable.NewColorableStdout())
}

// NewStderrWriter returns a ConsoleWriter for standard error, translating
// escape sequences for consoles that lack native VT support.
func NewStderrWriter() ConsoleWriter {
	return NewWriter(colorable.NewColorableStderr())
}
