package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared application logger. Jobs and startup code log through
// it; request logging stays on fiber's logger middleware.
var Logger zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	Logger = zerolog.New(output).With().Timestamp().Logger()
}
