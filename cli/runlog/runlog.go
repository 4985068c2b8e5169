package runlog

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/multi"
	"github.com/apex/log/handlers/text"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOpts describes the run log options.
type LoggerOpts struct {
	// Filename is the name of log file.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int
}

// Logger duplicates log entries into a rotated log file.
type Logger struct {
	// ljLogger is an io.WriteCloser that writes to the specified filename.
	ljLogger *lumberjack.Logger
	// handler writes entries to ljLogger.
	handler log.Handler
	opts    LoggerOpts
}

// NewLogger creates a new object of Logger.
func NewLogger(opts LoggerOpts) *Logger {
	if opts.MaxSize == 0 {
		opts.MaxSize = 10
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	return &Logger{ljLogger: ljLogger, handler: text.New(ljLogger), opts: opts}
}

// Handler returns a handler writing entries to the log file.
func (logger *Logger) Handler() log.Handler {
	return logger.handler
}

// Tee returns a handler that passes entries both to the console handler and
// to the log file.
func (logger *Logger) Tee(console log.Handler) log.Handler {
	if console == nil {
		console = cli.Default
	}
	return multi.New(console, logger.handler)
}

// Rotate causes Logger to close the existing log file and immediately create a
// new one.
func (logger *Logger) Rotate() error {
	return logger.ljLogger.Rotate()
}

// GetOpts returns the parameters that were used to create the logger.
func (logger *Logger) GetOpts() LoggerOpts {
	return logger.opts
}

// Close implements io.Closer, and closes the current logfile.
func (logger *Logger) Close() error {
	return logger.ljLogger.Close()
}

// Setup installs a handler writing to both console and the file at filename as the
// default apex/log handler. Empty filename keeps console-only logging. The
// returned function restores console-only logging and closes the file.
func Setup(filename string) (func() error, error) {
	if filename == "" {
		return func() error { return nil }, nil
	}
	logger := NewLogger(LoggerOpts{Filename: filename})
	log.SetHandler(logger.Tee(cli.Default))
	log.Debugf("Run log is written to %s", filename)
	return func() error {
		log.SetHandler(cli.Default)
		return logger.Close()
	}, nil
}
