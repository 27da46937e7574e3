package health

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests from the orchestrator's
// periodic liveness and readiness polling. It builds a fresh response per
// request and always reports StatusUp: reaching the handler is the check.
func HealthHandler(c *fiber.Ctx) error {
	response := HealthResponse{
		Status: StatusUp,
	}

	return c.JSON(response)
}
