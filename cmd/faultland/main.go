// Package main is the entry point for the Faultland terrain viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/faultland/internal/config"
	"github.com/Faultbox/faultland/internal/engine/backend"
	"github.com/Faultbox/faultland/internal/game"
	"github.com/Faultbox/faultland/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	// os.Exit skips deferred calls, so the viewer runs in its own frame
	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	logger.Info("=== Faultland ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		if errors.Is(err, backend.ErrCompile) || errors.Is(err, backend.ErrLink) {
			logger.Error("shader pipeline failed", zap.Error(err))
		} else {
			logger.Error("failed to create viewer", zap.Error(err))
		}
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
