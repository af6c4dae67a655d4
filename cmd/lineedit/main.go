// Command lineedit is an interactive echo REPL: each submitted line is
// printed back, and the session ends on Ctrl+D or the exit command.
//
// When stdin is not a terminal, lines are read and echoed without editing.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joeycumines/go-lineedit"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// settings are the resolved flag and file values.
type settings struct {
	prefix      string
	historySize int
	pushEmpty   bool
	exitCommand string
	history     []string
	logFile     string
}

func parseSettings(args []string, stderr io.Writer) (*settings, error) {
	fs := flag.NewFlagSet("lineedit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML or YAML config file")
	prefix := fs.String("prefix", lineedit.DefaultPrefix, "prompt prefix")
	historySize := fs.Int("history-size", lineedit.DefaultHistoryCapacity, "maximum number of history entries")
	pushEmpty := fs.Bool("push-empty", true, "record empty lines in history")
	logFile := fs.String("log", "", "write a JSON session log to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	s := &settings{
		prefix:      lineedit.DefaultPrefix,
		historySize: lineedit.DefaultHistoryCapacity,
		pushEmpty:   true,
		exitCommand: lineedit.DefaultExitCommand,
	}

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if cfg.Prefix != "" {
			s.prefix = cfg.Prefix
		}
		if cfg.HistorySize != 0 {
			s.historySize = cfg.HistorySize
		}
		if cfg.PushEmpty != nil {
			s.pushEmpty = *cfg.PushEmpty
		}
		if cfg.ExitCommand != nil {
			s.exitCommand = *cfg.ExitCommand
		}
		s.history = cfg.History
		s.logFile = cfg.LogFile
	}

	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prefix":
			s.prefix = *prefix
		case "history-size":
			s.historySize = *historySize
		case "push-empty":
			s.pushEmpty = *pushEmpty
		case "log":
			s.logFile = *logFile
		}
	})

	if s.historySize <= 0 {
		return nil, fmt.Errorf("history size must be positive: %d", s.historySize)
	}

	return s, nil
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	s, err := parseSettings(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "lineedit:", err)
		return 2
	}

	var logger *logiface.Logger[logiface.Event]
	if s.logFile != "" {
		f, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(stderr, "lineedit:", err)
			return 1
		}
		defer f.Close()
		logger = stumpy.L.New(
			stumpy.L.WithStumpy(stumpy.WithWriter(f)),
			stumpy.L.WithLevel(logiface.LevelDebug),
		).Logger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !isatty.IsTerminal(stdin.Fd()) && !isatty.IsCygwinTerminal(stdin.Fd()) {
		if err := echoLines(stdin, stdout, s.exitCommand); err != nil {
			logger.Err().Err(err).Log("echo failed")
			fmt.Fprintln(stderr, "lineedit:", err)
			return 1
		}
		return 0
	}

	opts := []lineedit.Option{
		lineedit.WithPrefix(s.prefix),
		lineedit.WithHistoryCapacity(s.historySize),
		lineedit.WithHistory(s.history),
		lineedit.WithPushEmptyLines(s.pushEmpty),
		lineedit.WithExitCommand(s.exitCommand),
		lineedit.WithNoticeHandler(describeNotice),
	}
	if logger != nil {
		opts = append(opts, lineedit.WithLogger(logger))
	}

	p, err := lineedit.New(func(line string) {
		fmt.Fprintf(stdout, "Our buffer: %s\n", line)
	}, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "lineedit:", err)
		return 2
	}

	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "lineedit:", err)
		return 1
	}
	return 0
}

// echoLines is the REPL without a terminal: no editing, same submit and exit
// behaviour.
func echoLines(r io.Reader, w io.Writer, exitCommand string) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if exitCommand != "" && line == exitCommand {
			return nil
		}
		if _, err := fmt.Fprintf(w, "Our buffer: %s\n", line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func describeNotice(n lineedit.Notice) string {
	switch n.Kind {
	case lineedit.NoticePaste:
		return fmt.Sprintf("pasted %d bytes (not inserted)", len(n.Data))
	default:
		return ""
	}
}
