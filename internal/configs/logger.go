package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger from the log_level and log_format settings.
func NewLogger(cfg Config) *log.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(w io.Writer, cfg Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLogLevel(cfg.LogLevel),
		Formatter:       parseLogFormatter(cfg.LogFormat),
		ReportTimestamp: true,
		Prefix:          "task-list",
	})
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseLogFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
