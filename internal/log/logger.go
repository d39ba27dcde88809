package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Non-production environments log at debug
// with color; production logs at info, plain.
func New(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if environment != "production" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	return zerolog.New(writer).With().
		Timestamp().
		Str("service", "jobportal-api").
		Str("env", environment).
		Logger()
}
