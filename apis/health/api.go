package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all health API routes with the Fiber application.
// The health check lives at the root path so orchestrator probe defaults can
// reach it without extra configuration.
func RegisterRoutes(app *fiber.App) {
	// Health check endpoint
	app.Get("/health", HealthHandler)
}
