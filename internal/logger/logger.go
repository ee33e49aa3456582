package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the application logger with structured JSON output, or a
// pretty console writer when ENV=development.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	logLevel := zerolog.InfoLevel
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}

	if os.Getenv("ENV") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Str("service", "tourboard").
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "tourboard").
		Logger()
}
