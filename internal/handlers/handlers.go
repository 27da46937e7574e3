package handlers

import (
	"github.com/example/gke-demo/apis/health"
	"github.com/example/gke-demo/apis/info"
	"github.com/example/gke-demo/apis/welcome"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes for the Go GKE Demo server.
// It is the service's complete route table: each API package binds its
// (method, path) pairs exactly once here, before the server starts listening,
// and the table never changes afterwards.
func SetupRoutes(app *fiber.App) {
	// Register all APIs here - just add one line per API
	welcome.RegisterRoutes(app)
	health.RegisterRoutes(app)
	info.RegisterRoutes(app)
}
