package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. The level comes from LOG_LEVEL
// (debug, info, warn, error); anything unparsable falls back to info.
func NewLogger(prefix string) *log.Logger {
	return newLogger(os.Stderr, prefix, GetEnv("LOG_LEVEL", "info"))
}

func newLogger(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// NewLoggerTo is NewLogger writing to w.
func NewLoggerTo(w io.Writer, prefix string) *log.Logger {
	return newLogger(w, prefix, GetEnv("LOG_LEVEL", "info"))
}
