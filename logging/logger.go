package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level defines the log severity levels.
type Level int32

// Enumeration of log levels from least to most severe.
const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

// String provides a string representation of the logging level.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		panic("invalid log level")
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return Info, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger is a leveled logger. It is safe for concurrent use; the level may
// be changed while the logger is in use.
type Logger struct {
	options options

	// The underlying standard logger.
	base *log.Logger

	// Exits the process after a fatal message. Replaced in tests.
	exit func(code int)

	mu sync.RWMutex
}

// NewLogger creates a new logger instance with the provided options.
// If no options are provided, default values are used.
func NewLogger(opts ...Option) (*Logger, error) {
	var options options
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}

	if options.writer == nil {
		options.writer = defaultWriter
	}
	if options.flag == 0 {
		options.flag = defaultFlag
	}
	if options.prefix == "" {
		options.prefix = defaultPrefix
	}
	if !options.levelSet {
		options.level = Info
	}

	return &Logger{
		options: options,
		base:    log.New(options.writer, options.prefix, options.flag),
		exit:    os.Exit,
	}, nil
}

// Level returns the current level of the logger.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.options.level
}

// SetLevel changes the level of the logger.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.options.level = level
}

// Debug logs a debug message with the given arguments.
func (l *Logger) Debug(args ...any) {
	l.log(Debug, args)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(Debug, format, args)
}

// Info logs an informational message.
func (l *Logger) Info(args ...any) {
	l.log(Info, args)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(Info, format, args)
}

// Warn logs a warning message.
func (l *Logger) Warn(args ...any) {
	l.log(Warn, args)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(Warn, format, args)
}

// Error logs an error message.
func (l *Logger) Error(args ...any) {
	l.log(Error, args)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(Error, format, args)
}

// Fatal logs a fatal error message and then terminates the program.
func (l *Logger) Fatal(args ...any) {
	if l.log(Fatal, args) {
		l.exit(1)
	}
}

// Fatalf logs a formatted fatal error message and then terminates the program.
func (l *Logger) Fatalf(format string, args ...any) {
	if l.logf(Fatal, format, args) {
		l.exit(1)
	}
}

func (l *Logger) enabled(level Level) bool {
	return l.Level() <= level
}

func (l *Logger) log(level Level, args []any) bool {
	if !l.enabled(level) {
		return false
	}
	l.base.Print(level.String() + ": " + fmt.Sprint(args...))
	return true
}

func (l *Logger) logf(level Level, format string, args []any) bool {
	if !l.enabled(level) {
		return false
	}
	l.base.Print(level.String() + ": " + fmt.Sprintf(format, args...))
	return true
}
