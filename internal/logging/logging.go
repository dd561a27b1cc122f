// Package logging sets up the diagnostic logger written to stderr
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Level picks the log level from the verbosity flags.
// quiet wins over debug, debug over verbose.
func Level(verbose, debug, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case debug:
		return log.DebugLevel
	case verbose:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// New creates a logger writing to w
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "script-sleuth",
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
