package main

import (
	"log"

	"github.com/example/gke-demo/internal/config"
	"github.com/example/gke-demo/internal/server"
	"github.com/example/gke-demo/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the Go GKE Demo server.
// It performs the following operations:
//  1. Parses command-line flags for server configuration
//  2. Loads environment variables from .env file if present
//  3. Loads configuration from the YAML file with flag overrides
//  4. Initializes the HTTP server with middleware and routes
//  5. Begins listening for HTTP requests
func main() {
	// Parse command-line flags
	flags := parseFlags()

	if flags.Help {
		flags.showHelp()
		return
	}

	if flags.Version {
		flags.showVersion()
		return
	}

	if err := flags.validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration from YAML and environment variables with flag overrides
	cfg := config.LoadWithFlags(flags)

	// Create and start server
	srv := server.New(cfg)

	logger.Infof("Starting %s on port %s", AppName, cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)

	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
