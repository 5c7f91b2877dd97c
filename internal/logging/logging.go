// Package logging builds the stderr logger shared by the command and the scorer.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. Unknown names fall
// back to warn.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "camelcards",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a config level name onto a log level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
