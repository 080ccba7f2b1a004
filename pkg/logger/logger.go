package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

func L() *zerolog.Logger {
	return &l
}

// SetLevel adjusts the global log level ("debug", "info", "warn", "error").
func SetLevel(level string) {
	if lv, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lv)
	}
}
