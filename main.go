package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/mvail/pixpress/app"
	"github.com/mvail/pixpress/config"
	"github.com/mvail/pixpress/debug"
)

const configPath = "pixpress.json"

func main() {
	// Config from disk, defaults when absent.
	cfg, err := config.Load(configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
	}
	if cfg.Debug {
		debug.StartMemLogger(5*time.Second, logger)
		debug.StartGoroutineLogger(5*time.Second, logger)
	}

	container, err := app.BuildContainer(cfg, configPath, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}

	application := app.NewApp("PixPress", 1024, 768, container)
	application.Start()
}
