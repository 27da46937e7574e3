package config

// Default configuration values
const (
	// DefaultPort is the HTTP port the service listens on when nothing
	// overrides it; 8080 matches the container port the GKE manifests expose.
	DefaultPort = "8080"

	// DefaultEnvironment selects the console log format and is what local
	// runs get without any configuration.
	DefaultEnvironment = "development"

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"
)

// Valid environment values
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)
