package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultLevel = "warn"

// New returns a console logger writing to w at the named level.
// Unknown level names fall back to DefaultLevel.
func New(w io.Writer, level string) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Logger().Level(ParseLevel(level))
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	}
	return zerolog.WarnLevel
}
