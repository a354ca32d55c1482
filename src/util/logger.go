package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/bensonms/ado-auto-review/src/config"
)

// LogLevel represents logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLogLevel maps a configured level string to a LogLevel. Unknown and
// empty values fall back to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "warn":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging for the review pipeline. With
// include_caller set, each line carries the file:line of the logging call,
// which makes per-detector log output traceable during a parallel run.
type Logger struct {
	level            LogLevel
	output           io.Writer
	includeTimestamp bool
	includeCaller    bool
}

// NewLogger creates a new logger from config
func NewLogger(cfg config.LoggingConfig) *Logger {
	output := io.Writer(os.Stderr)
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			output = f
		}
	}

	return &Logger{
		level:            ParseLogLevel(cfg.Level),
		output:           output,
		includeTimestamp: cfg.IncludeTimestamp,
		includeCaller:    cfg.IncludeCaller,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) { l.emit(LogLevelDebug, "DEBUG", msg, args...) }

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) { l.emit(LogLevelInfo, "INFO", msg, args...) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) { l.emit(LogLevelWarn, "WARN", msg, args...) }

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) { l.emit(LogLevelError, "ERROR", msg, args...) }

// emit must sit exactly one call below a public entry point so the caller
// annotation resolves to the code that logged, not to this package.
func (l *Logger) emit(level LogLevel, tag, msg string, args ...any) {
	if level < l.level {
		return
	}

	var prefix string
	if l.includeTimestamp {
		prefix = time.Now().Format("2006-01-02 15:04:05") + " "
	}
	prefix += "[" + tag + "] "
	if l.includeCaller {
		if _, file, line, ok := runtime.Caller(2); ok {
			prefix += filepath.Base(file) + ":" + strconv.Itoa(line) + " "
		}
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	fmt.Fprintln(l.output, prefix+msg)
}

// DefaultLogger is the package-level default logger
var DefaultLogger = NewLogger(config.LoggingConfig{
	Level:            "info",
	IncludeTimestamp: true,
})

// SetDefaultLogger updates the default logger with new configuration
func SetDefaultLogger(cfg config.LoggingConfig) {
	DefaultLogger = NewLogger(cfg)
}

// The package-level helpers call emit directly, keeping the call depth
// identical to the Logger methods so caller resolution stays correct.

// Debug logs using the default logger
func Debug(msg string, args ...any) { DefaultLogger.emit(LogLevelDebug, "DEBUG", msg, args...) }

// Info logs using the default logger
func Info(msg string, args ...any) { DefaultLogger.emit(LogLevelInfo, "INFO", msg, args...) }

// Warn logs using the default logger
func Warn(msg string, args ...any) { DefaultLogger.emit(LogLevelWarn, "WARN", msg, args...) }

// Error logs using the default logger
func Error(msg string, args ...any) { DefaultLogger.emit(LogLevelError, "ERROR", msg, args...) }
