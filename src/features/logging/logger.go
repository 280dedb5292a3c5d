package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/contre95/zenify/src/features/config"
)

// SetupLogger builds the application logger from the logger configuration.
func SetupLogger(cfg *config.Manager) *slog.Logger {
	return NewLogger(cfg.Get().Logger, os.Stderr)
}

// NewLogger builds a slog logger backed by a charmbracelet handler writing to w.
func NewLogger(cfg config.Logger, w io.Writer) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	if !cfg.Enabled {
		w = io.Discard
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "Zenify",
		Formatter:       formatter,
		Level:           level,
	})

	logger := slog.New(handler)
	logger.Info("Logger initialized", "time", time.Now().Format(time.RFC3339))
	return logger
}
