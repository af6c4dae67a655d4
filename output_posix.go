//go:build !windows

package lineedit

import (
	"os"
)

// NewStdoutWriter returns a ConsoleWriter for standard output.
func NewStdoutWriter() ConsoleWriter {
	return NewWriter(os.Stdout)
}

// NewStderrWriter returns a ConsoleWriter for standard error.
func NewStderrWriter() ConsoleWriter {
	return NewWriter(os.Stderr)
}
