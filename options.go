package functional

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmsadair/functional/logging"
)

const (
	defaultTimeout   = time.Duration(5 * time.Second)
	defaultQueueSize = 64

	minTimeout   = time.Duration(1 * time.Millisecond)
	maxTimeout   = time.Duration(1 * time.Minute)
	minQueueSize = 1
	maxQueueSize = 4096
)

// Logger supports logging message at the debug, info, warn, error, and
// fatal level.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(args ...any)

	// Debugf logs a formatted message at debug level.
	Debugf(format string, args ...any)

	// Info logs a message at info level.
	Info(args ...any)

	// Infof logs a formatted message at info level.
	Infof(format string, args ...any)

	// Warn logs a message at warn level.
	Warn(args ...any)

	// Warnf logs a formatted message at warn level.
	Warnf(format string, args ...any)

	// Error logs a message at error level.
	Error(args ...any)

	// Errorf logs a formatted message at error level.
	Errorf(format string, args ...any)

	// Fatal logs a message at fatal level.
	Fatal(args ...any)

	// Fatalf logs a formatted message at fatal level.
	Fatalf(format string, args ...any)
}

type options struct {
	// The amount of time a future waits for offloaded work before
	// giving up with ErrTimeout.
	timeout time.Duration

	// The number of submissions that may be queued for the worker
	// before Offload blocks.
	queueSize int

	// The level of logged messages. Ignored if a logger is provided.
	logLevel logging.Level

	// Indicates if log level was set or not.
	levelSet bool

	// A logger for lifecycle events and failed work.
	logger Logger
}

// Option is a function that updates the options associated with an Executor.
type Option func(options *options) error

// WithTimeout sets how long a future waits for offloaded work to complete.
func WithTimeout(timeout time.Duration) Option {
	return func(options *options) error {
		if timeout < minTimeout || timeout > maxTimeout {
			return fmt.Errorf("timeout must be between %v and %v", minTimeout, maxTimeout)
		}
		options.timeout = timeout
		return nil
	}
}

// WithQueueSize sets the number of submissions that may wait for the worker.
func WithQueueSize(size int) Option {
	return func(options *options) error {
		if size < minQueueSize || size > maxQueueSize {
			return fmt.Errorf("queue size must be between %d and %d", minQueueSize, maxQueueSize)
		}
		options.queueSize = size
		return nil
	}
}

// WithLogLevel sets the level of the logger the executor creates when no
// logger is provided.
func WithLogLevel(level logging.Level) Option {
	return func(options *options) error {
		if level < logging.Debug || level > logging.Fatal {
			return fmt.Errorf("invalid log level: %d", level)
		}
		options.logLevel = level
		options.levelSet = true
		return nil
	}
}

// WithLogger sets the logger used by the executor.
func WithLogger(logger Logger) Option {
	return func(options *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		options.logger = logger
		return nil
	}
}

func newOptions(opts ...Option) (*options, error) {
	var options options
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}

	if options.timeout == 0 {
		options.timeout = defaultTimeout
	}
	if options.queueSize == 0 {
		options.queueSize = defaultQueueSize
	}
	if !options.levelSet {
		options.logLevel = logging.Info
	}
	if options.logger == nil {
		logger, err := logging.NewLogger(logging.WithLevel(options.logLevel))
		if err != nil {
			return nil, err
		}
		options.logger = logger
	}

	return &options, nil
}
