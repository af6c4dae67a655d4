package debug

import (
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

const (
	envEnableLog   = "LINEEDIT_ENABLE_LOG"
	envLogFile     = "LINEEDIT_LOG_FILE"
	defaultLogFile = "lineedit-debug.log"
)

var (
	logfile *os.File
	logger  *logiface.Logger[*stumpy.Event]
)

func loadLoggerEnv() {
	if !envTrue(envEnableLog) {
		return
	}
	path := os.Getenv(envLogFile)
	if path == "" {
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		_, _ = assertOutput.Write([]byte("[DEBUG] failed to open log file: " + err.Error() + "\n"))
		return
	}
	logfile = f
	logger = stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(f)),
		stumpy.L.WithLevel(logiface.LevelTrace),
	)
}

// Logger returns the debug logger, which is nil (disabled) unless
// LINEEDIT_ENABLE_LOG is set.
func Logger() *logiface.Logger[logiface.Event] {
	return logger.Logger()
}

// Log writes msg to the debug log, if enabled.
func Log(msg string) {
	logger.Debug().Log(msg)
}

// Close closes the debug log file, if any.
func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	logger = nil
}
