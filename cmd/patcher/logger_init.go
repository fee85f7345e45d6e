package main

import (
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/config"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// initLogger initializes the logger from the mod configuration
func initLogger(cfg *config.Config) {
	// Source info only while authoring items
	addSource := cfg.Environment == logger.EnvironmentDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ModName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
