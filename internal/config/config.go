package config

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// Cache for configuration to avoid repeated file reads
	configCache *Config
	configOnce  sync.Once
)

// Load creates a new Config instance using only YAML configuration.
// This is a convenience function that calls LoadWithFlags with nil flags,
// making it suitable for applications that don't use command-line flags.
//
// Returns a Config instance loaded from configs/config.yaml.
func Load() *Config {
	return LoadWithFlags(nil)
}

// LoadCached creates a cached Config instance using only YAML configuration.
// This function caches the configuration after the first load for better performance.
//
// Returns a cached Config instance loaded from configs/config.yaml.
func LoadCached() *Config {
	configOnce.Do(func() {
		configCache = LoadWithFlags(nil)
	})
	return configCache
}

// Flags defines the interface for command-line flag access.
// It provides methods to retrieve server configuration flags without tying
// this package to a specific flag implementation.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
}

// LoadWithFlags creates a new Config instance by loading configuration from
// the YAML file and applying environment-variable and command-line flag
// overrides where appropriate.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags
//  2. Environment variables (PORT, ENVIRONMENT, LOG_LEVEL)
//  3. YAML configuration file (configs/config.yaml)
//  4. Default values
//
// A missing YAML file is not an error; defaults apply. The returned Config is
// fully populated and ready for use.
//
// Parameters:
//   - flgs: Command-line flags interface (can be nil)
func LoadWithFlags(flgs Flags) *Config {
	yamlConfig := loadFromYAML()

	port := getEnv("PORT", yamlConfig.Server.Port)
	if port == "" {
		port = DefaultPort
	}
	if flgs != nil && flgs.GetPort() != "" {
		port = flgs.GetPort()
	}

	environment := getEnv("ENVIRONMENT", yamlConfig.Server.Environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	if flgs != nil && flgs.GetEnvironment() != "" {
		environment = flgs.GetEnvironment()
	}

	logLevel := getEnv("LOG_LEVEL", yamlConfig.Server.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if flgs != nil && flgs.GetLogLevel() != "" {
		logLevel = flgs.GetLogLevel()
	}

	return &Config{
		Port:        port,
		Environment: environment,
		LogLevel:    logLevel,
	}
}

func loadFromYAML() *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		return config
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
