package main

import (
	"io"
	"log/slog"

	"github.com/osse101/ItemBuilder_Go/internal/config"
	"github.com/osse101/ItemBuilder_Go/internal/logger"
)

// initLogger initializes the logger from the app configuration. Logs go to
// w so that stdout stays reserved for built items.
func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	log := logger.InitLoggerWithWriter(cfg.LoggerConfig(version), w)

	for _, warning := range cfg.Warnings() {
		log.Warn("Configuration warning", "warning", warning)
	}
	return log
}
