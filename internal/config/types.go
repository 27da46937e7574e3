package config

// Config represents the main application configuration structure.
// It contains all runtime settings for the Go GKE Demo server. The service
// itself is stateless, so configuration is limited to how the HTTP server is
// exposed and how it logs.
type Config struct {
	// HTTP server port (e.g., "8080")
	Port string

	// Application environment (e.g., "development", "production")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string
}

// ServerConfig represents server-related configuration settings.
// It contains HTTP server configuration including port, environment,
// and logging settings that can be overridden by command-line flags.
type ServerConfig struct {
	// HTTP server port (e.g., "8080")
	Port string `yaml:"port"`

	// Application environment (e.g., "development", "production")
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`
}

// YAMLConfig represents the structure of the YAML configuration file.
// It defines the complete structure for configs/config.yaml and provides
// the root configuration object for the application.
type YAMLConfig struct {
	// Server configuration settings
	Server ServerConfig `yaml:"server"`
}
