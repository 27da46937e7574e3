package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/example/gke-demo/internal/config"
	"github.com/example/gke-demo/internal/version"
)

// Default values for server configuration
const (
	DefaultPort        = config.DefaultPort
	DefaultEnvironment = config.DefaultEnvironment
	DefaultLogLevel    = config.DefaultLogLevel
)

// Valid values for validation
const (
	ValidEnvironmentDevelopment = config.ValidEnvironmentDevelopment
	ValidEnvironmentProduction  = config.ValidEnvironmentProduction

	ValidLogLevelDebug = config.ValidLogLevelDebug
	ValidLogLevelInfo  = config.ValidLogLevelInfo
	ValidLogLevelWarn  = config.ValidLogLevelWarn
	ValidLogLevelError = config.ValidLogLevelError
)

// Help and version text
const (
	AppName        = version.AppName
	AppDescription = "A minimal Go Fiber web service for Google Kubernetes Engine"
)

// ServerFlags holds all command-line flags for the Go GKE Demo server.
// It provides a structured way to parse and validate command-line arguments
// for server configuration. Flags left unset defer to environment variables,
// the YAML configuration file, and finally the built-in defaults.
type ServerFlags struct {
	// Server configuration flags
	// HTTP server port number
	Port string
	// Deployment environment (development/production)
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string

	// General flags
	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses command-line flags and returns a ServerFlags struct.
// String flags default to empty so that an unset flag falls through to the
// environment variable and YAML layers instead of masking them.
func parseFlags() *ServerFlags {
	f := &ServerFlags{}

	// Server configuration flags
	flag.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", DefaultPort))
	flag.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment: %s, %s (default: %s)",
			ValidEnvironmentDevelopment, ValidEnvironmentProduction, DefaultEnvironment))
	flag.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (default: %s)",
			ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError, DefaultLogLevel))

	// General flags
	flag.BoolVar(&f.Help, "help", false, "Show help information and exit")
	flag.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	flag.BoolVar(&f.Version, "version", false, "Show version information and exit")
	flag.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	// Parse command-line arguments
	flag.Parse()

	return f
}

// showHelp displays help information for the Go GKE Demo server.
// It documents all available command-line flags, the configuration layers,
// and the HTTP endpoints the server exposes.
func (f *ServerFlags) showHelp() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gke-demo [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  Server Configuration:")
	fmt.Println("    -port string")
	fmt.Printf("          Server port (default: %s)\n", DefaultPort)
	fmt.Println("    -env string")
	fmt.Printf("          Environment: %s, %s (default: %s)\n",
		ValidEnvironmentDevelopment, ValidEnvironmentProduction, DefaultEnvironment)
	fmt.Println("    -log-level string")
	fmt.Printf("          Log level: %s, %s, %s, %s (default: %s)\n",
		ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError, DefaultLogLevel)
	fmt.Println()
	fmt.Println("  General:")
	fmt.Println("    -help, -h")
	fmt.Println("          Show this help information")
	fmt.Println("    -version, -v")
	fmt.Println("          Show version information")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("  Precedence (highest to lowest): flags, environment variables, configs/config.yaml, defaults")
	fmt.Println("  Environment variables: PORT, ENVIRONMENT, LOG_LEVEL")
	fmt.Println()
	fmt.Println("ENDPOINTS:")
	fmt.Println("  GET /          Welcome message with version and timestamp")
	fmt.Println("  GET /health    Health status for Kubernetes probes")
	fmt.Println("  GET /api/info  Application, runtime, and framework details")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start with default settings")
	fmt.Println("  gke-demo")
	fmt.Println()
	fmt.Println("  # Start in production mode with custom log level")
	fmt.Println("  gke-demo -env production -log-level warn")
	fmt.Println()
	fmt.Println("  # Start on custom port")
	fmt.Println("  gke-demo -port 9090")
}

// showVersion displays version and endpoint information for the Go GKE Demo server.
func (f *ServerFlags) showVersion() {
	fmt.Printf("%s %s\n", AppName, version.GetVersion())
	fmt.Printf("Build info: %s\n", version.GetBuildInfo())
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println("Endpoints:")
	fmt.Println("  - GET /")
	fmt.Println("  - GET /health")
	fmt.Println("  - GET /api/info")
}

// validate checks that all explicitly provided flag values are valid.
// Empty values are skipped because they mean the flag was not set and the
// lower configuration layers supply the value.
//
// Returns an error with a descriptive message if any provided value is invalid.
func (f *ServerFlags) validate() error {
	// Validate environment
	if f.Environment != "" {
		validEnvs := []string{ValidEnvironmentDevelopment, ValidEnvironmentProduction}
		validEnv := false
		for _, env := range validEnvs {
			if f.Environment == env {
				validEnv = true
				break
			}
		}
		if !validEnv {
			return fmt.Errorf("invalid environment: %s (must be one of: %s)", f.Environment, strings.Join(validEnvs, ", "))
		}
	}

	// Validate log level
	if f.LogLevel != "" {
		validLevels := []string{ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError}
		validLevel := false
		for _, level := range validLevels {
			if f.LogLevel == level {
				validLevel = true
				break
			}
		}
		if !validLevel {
			return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// Interface methods for config package
// These methods implement the config.Flags interface to allow the config package
// to access flag values without depending on the specific flag implementation.

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}
