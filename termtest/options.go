package termtest

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeycumines/go-lineedit"
)

const (
	defaultRows    = 24
	defaultCols    = 80
	defaultTimeout = 30 * time.Second
)

// ConsoleOption configures a process-based Console.
type ConsoleOption interface {
	applyConsole(*consoleConfig) error
}

// HarnessOption configures an in-process Harness.
type HarnessOption interface {
	applyHarness(*harnessConfig) error
}

// SharedOption is accepted by both NewConsole and NewHarness.
type SharedOption interface {
	ConsoleOption
	HarnessOption
}

// ptyConfig is the part of the configuration common to both factories.
type ptyConfig struct {
	rows           uint16
	cols           uint16
	defaultTimeout time.Duration
}

type consoleConfig struct {
	ptyConfig
	env     []string
	dir     string
	cmdName string
	args    []string
}

type harnessConfig struct {
	ptyConfig
	promptOptions []lineedit.Option
}

// sharedOption is applied to the embedded ptyConfig of either factory.
type sharedOption func(*ptyConfig) error

func (f sharedOption) applyConsole(c *consoleConfig) error { return f(&c.ptyConfig) }

func (f sharedOption) applyHarness(c *harnessConfig) error { return f(&c.ptyConfig) }

type consoleOption func(*consoleConfig) error

func (f consoleOption) applyConsole(c *consoleConfig) error { return f(c) }

type harnessOption func(*harnessConfig) error

func (f harnessOption) applyHarness(c *harnessConfig) error { return f(c) }

// WithSize sets the PTY dimensions. Default is 24x80.
func WithSize(rows, cols uint16) SharedOption {
	return sharedOption(func(c *ptyConfig) error {
		if rows == 0 || cols == 0 {
			return fmt.Errorf("invalid size %dx%d", rows, cols)
		}
		c.rows = rows
		c.cols = cols
		return nil
	})
}

// WithDefaultTimeout sets the timeout Expect applies when its context has no
// deadline. Zero disables it.
func WithDefaultTimeout(d time.Duration) SharedOption {
	return sharedOption(func(c *ptyConfig) error {
		if d < 0 {
			return errors.New("negative default timeout")
		}
		c.defaultTimeout = d
		return nil
	})
}

// WithEnv appends to the inherited environment.
func WithEnv(env ...string) ConsoleOption {
	return consoleOption(func(c *consoleConfig) error {
		c.env = append(c.env, env...)
		return nil
	})
}

// WithDir sets the working directory.
func WithDir(path string) ConsoleOption {
	return consoleOption(func(c *consoleConfig) error {
		c.dir = path
		return nil
	})
}

// WithCommand sets the command to execute. Arguments replace any previously
// configured ones.
func WithCommand(cmdName string, args ...string) ConsoleOption {
	return consoleOption(func(c *consoleConfig) error {
		c.cmdName = cmdName
		c.args = args
		return nil
	})
}

// WithPromptOptions passes options through to lineedit.New. They are applied
// after the harness's own reader, writer, and sync options.
func WithPromptOptions(opts ...lineedit.Option) HarnessOption {
	return harnessOption(func(c *harnessConfig) error {
		c.promptOptions = append(c.promptOptions, opts...)
		return nil
	})
}

func defaultPTYConfig() ptyConfig {
	return ptyConfig{rows: defaultRows, cols: defaultCols, defaultTimeout: defaultTimeout}
}

func resolveConsoleOptions(opts []ConsoleOption) (*consoleConfig, error) {
	cfg := &consoleConfig{ptyConfig: defaultPTYConfig()}
	for _, opt := range opts {
		if err := opt.applyConsole(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply console option: %w", err)
		}
	}
	if cfg.cmdName == "" {
		return nil, errors.New("no command specified: use WithCommand")
	}
	return cfg, nil
}

func resolveHarnessOptions(opts []HarnessOption) (*harnessConfig, error) {
	cfg := &harnessConfig{ptyConfig: defaultPTYConfig()}
	for _, opt := range opts {
		if err := opt.applyHarness(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply harness option: %w", err)
		}
	}
	return cfg, nil
}
