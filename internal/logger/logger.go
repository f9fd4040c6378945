package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger with a console writer on os.Stderr.
// It ensures that the logger is initialized only once.
func Init(debug bool) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}
		defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
	})
}

// Get returns the initialized default logger.
// It calls Init() to ensure the logger is ready before returning it.
func Get() zerolog.Logger {
	Init(false)
	return defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string) {
	l := Get()
	l.Info().Msg(msg)
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, args ...any) {
	l := Get()
	l.Info().Msgf(format, args...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, args ...any) {
	l := Get()
	l.Warn().Msgf(format, args...)
}

// Error logs an error message using the default logger.
func Error(msg string, err error) {
	l := Get()
	l.Error().Err(err).Msg(msg)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, args ...any) {
	l := Get()
	l.Debug().Msgf(format, args...)
}
