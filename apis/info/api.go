package info

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all info API routes with the Fiber application.
// The report is grouped under the /api path.
func RegisterRoutes(app *fiber.App) {
	// Info API group
	api := app.Group("/api")

	// Application info endpoint
	api.Get("/info", InfoHandler)
}
