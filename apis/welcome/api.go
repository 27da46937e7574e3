package welcome

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the welcome API route with the Fiber application.
func RegisterRoutes(app *fiber.App) {
	// Root endpoint
	app.Get("/", WelcomeHandler)
}
