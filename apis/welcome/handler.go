package welcome

import (
	"time"

	"github.com/example/gke-demo/internal/version"

	"github.com/gofiber/fiber/v2"
)

// WelcomeHandler handles requests to the root endpoint ("/").
// It builds a fresh response per request; the timestamp is read from the wall
// clock inside the handler and is never cached across requests.
func WelcomeHandler(c *fiber.Ctx) error {
	response := WelcomeResponse{
		Message:   WelcomeMessage,
		Version:   version.GetShortVersion(),
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Status:    StatusRunning,
	}

	return c.JSON(response)
}
