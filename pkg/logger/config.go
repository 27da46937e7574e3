package logger

import (
	"github.com/example/gke-demo/internal/config"
)

// FromConfig derives a logger configuration from the application config.
// Production deployments log JSON for the platform's log collector; every
// other environment gets the human-readable console format.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	if cfg.LogLevel != "" {
		loggerConfig.Level = LogLevel(cfg.LogLevel)
	}

	if cfg.Environment == config.ValidEnvironmentProduction {
		loggerConfig.Format = "json"
	} else {
		loggerConfig.Format = "console"
	}

	loggerConfig.Output = "stdout"

	return loggerConfig
}

// InitFromConfig initializes the global logger from the application config.
func InitFromConfig(cfg *config.Config) error {
	loggerConfig := FromConfig(cfg)
	return Init(loggerConfig)
}
