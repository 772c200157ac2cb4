package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// Level controls which messages the package logger emits
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).
	With().Timestamp().Logger()

// SetLevel sets the minimum level the package logger emits
func SetLevel(level Level) {
	switch level {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelInfo:
		logger = logger.Level(zerolog.InfoLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	}
}

// Debug logs a message at debug level
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

// Info logs a message at info level
func Info(msg string) {
	logger.Info().Msg(msg)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Warn logs a message at warn level
func Warn(msg string) {
	logger.Warn().Msg(msg)
}

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Error logs a message at error level
func Error(msg string) {
	logger.Error().Msg(msg)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// Fatal logs a message at fatal level and exits
func Fatal(msg string) {
	logger.Fatal().Msg(msg)
}

// Fatalf logs a formatted message at fatal level and exits
func Fatalf(format string, args ...any) {
	logger.Fatal().Msgf(format, args...)
}
